package validate

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

type rule struct {
	name   string
	params []string
}

// Struct runs the rules declared in `validate` struct tags over v and
// returns the nested Result. An empty Result means v is valid. The error
// return is reserved for misuse (v is not a struct or a pointer to one);
// rule failures are never reported through it.
//
// Tag syntax follows the registry rule names, separated by semicolons,
// with parameters after a colon:
//
//	type SearchRequest struct {
//		Query    string `json:"query" validate:"required;min:2"`
//		Page     int    `json:"page" validate:"range:1"`
//		PageSize int    `json:"page_size" validate:"range:1,100"`
//	}
//
// Nested structs are validated recursively and attach as Nested outcomes.
// Slices of structs validate per element when the tag carries "dive",
// attaching a List outcome with one sub-result per failing index. The
// "omitempty" rule skips all remaining rules when the field holds its
// zero value. Fields tagged `validate:"-"` are ignored.
//
// Field names in the result resolve from the `json` tag first, then
// `form`, then `query`, falling back to the Go field name. This keeps
// reported paths aligned with what the client actually sent.
func Struct(v any) (Result, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("validate: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("validate: expected struct or pointer to struct, got %s", rv.Kind())
	}

	return validateStruct(rv), nil
}

func validateStruct(rv reflect.Value) Result {
	result := Result{}
	rt := rv.Type()

	for i := range rv.NumField() {
		structField := rt.Field(i)
		if !structField.IsExported() {
			continue
		}

		tag := structField.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		field := rv.Field(i)
		name := fieldName(structField)

		if outcome := validateField(field, parseRules(tag)); outcome != nil {
			result[name] = outcome
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// validateField returns the outcome for a single field, or nil when the
// field is valid. A field yields exactly one outcome variant: rule
// violations on the field itself win over nested results, matching the
// one-outcome-per-field shape of the tree.
func validateField(field reflect.Value, rules []rule) Outcome {
	// A nil pointer can only fail "required"; there is nothing to recurse into.
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			if hasRule(rules, "required") {
				return Leaf{*requiredRule(field, nil)}
			}
			return nil
		}
		field = field.Elem()
	}

	if hasRule(rules, "omitempty") && isZeroValue(field) {
		return nil
	}

	if leaf := applyRules(field, rules); len(leaf) > 0 {
		return leaf
	}

	switch field.Kind() {
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			return nil
		}
		if sub := validateStruct(field); len(sub) > 0 {
			return Nested(sub)
		}

	case reflect.Slice, reflect.Array:
		if !hasRule(rules, "dive") {
			return nil
		}
		list := List{}
		for i := range field.Len() {
			elem := field.Index(i)
			if elem.Kind() == reflect.Pointer {
				if elem.IsNil() {
					continue
				}
				elem = elem.Elem()
			}
			if elem.Kind() != reflect.Struct {
				continue
			}
			if sub := validateStruct(elem); len(sub) > 0 {
				list[i] = sub
			}
		}
		if len(list) > 0 {
			return list
		}
	}

	return nil
}

func applyRules(field reflect.Value, rules []rule) Leaf {
	var leaf Leaf
	for _, r := range rules {
		if r.name == "omitempty" || r.name == "dive" {
			continue
		}
		fn, ok := lookupRule(r.name)
		if !ok {
			continue
		}
		if v := fn(field, r.params); v != nil {
			leaf = append(leaf, *v)
		}
	}
	return leaf
}

func parseRules(tag string) []rule {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, ";")
	rules := make([]rule, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, rawParams, found := strings.Cut(part, ":")
		r := rule{name: name}
		if found {
			r.params = strings.Split(rawParams, ",")
		}
		rules = append(rules, r)
	}
	return rules
}

func hasRule(rules []rule, name string) bool {
	for _, r := range rules {
		if r.name == name {
			return true
		}
	}
	return false
}

func fieldName(field reflect.StructField) string {
	for _, tagName := range []string{"json", "form", "query"} {
		tag := field.Tag.Get(tagName)
		if tag == "" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
