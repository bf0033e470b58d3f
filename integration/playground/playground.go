package playground

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validbind/core/validate"
)

// Engine wraps a configured *validator.Validate so it can replace the
// built-in rule engine via extractor.WithValidateFunc. Rule failures
// come back as a validate.Result tree; engine misuse
// (validator.InvalidValidationError) surfaces through the error return.
//
//	v := validator.New()
//	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
//		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
//		if name == "" || name == "-" {
//			return fld.Name
//		}
//		return name
//	})
//
//	jsonReq := extractor.JSON[CreateUserRequest](
//		extractor.WithValidateFunc(playground.Engine(v)),
//	)
func Engine(v *validator.Validate) func(payload any) (validate.Result, error) {
	return func(payload any) (validate.Result, error) {
		err := v.Struct(payload)
		if err == nil {
			return nil, nil
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Convert(verrs), nil
		}
		return nil, err
	}
}

// Convert rebuilds go-playground/validator's flat, namespace-qualified
// error list into the nested result tree. Namespaces like
// "Request.Items[2].Name" become List and Nested outcomes so flattening
// and rendering behave exactly as with the built-in engine. The leading
// segment (the root struct's name) is dropped, since paths are relative
// to the payload root.
func Convert(verrs validator.ValidationErrors) validate.Result {
	root := validate.Result{}
	for _, fe := range verrs {
		segs := splitNamespace(fe.Namespace())
		if len(segs) > 1 {
			segs = segs[1:] // drop the root struct segment
		}
		insert(root, segs, violationOf(fe))
	}
	if len(root) == 0 {
		return nil
	}
	return root
}

type segment struct {
	name  string
	index int
	list  bool
}

func splitNamespace(ns string) []segment {
	parts := strings.Split(ns, ".")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		open := strings.IndexByte(part, '[')
		if open == -1 {
			segs = append(segs, segment{name: part})
			continue
		}
		end := strings.IndexByte(part, ']')
		if end < open {
			segs = append(segs, segment{name: part})
			continue
		}
		idx, err := strconv.Atoi(part[open+1 : end])
		if err != nil {
			// Map keys and multi-dimensional indices keep the raw
			// segment as a literal field name.
			segs = append(segs, segment{name: part})
			continue
		}
		segs = append(segs, segment{name: part[:open], index: idx, list: true})
	}
	return segs
}

// insert walks the tree along segs, materializing Nested and List nodes,
// and appends the violation at the final field. When an intermediate
// node already holds an incompatible outcome, the violation attaches at
// the current level under the remaining path so no error is ever
// dropped.
func insert(cur validate.Result, segs []segment, v validate.Violation) {
	for i, s := range segs {
		last := i == len(segs)-1

		if last {
			name := s.name
			if s.list {
				// A violation on the slice element itself (dive over
				// scalars) keys the leaf as "name[idx]".
				name = s.name + "[" + strconv.Itoa(s.index) + "]"
			}
			leaf, _ := cur[name].(validate.Leaf)
			cur[name] = append(leaf, v)
			return
		}

		next, ok := descend(cur, s)
		if !ok {
			rest := joinSegments(segs[i:])
			leaf, _ := cur[rest].(validate.Leaf)
			cur[rest] = append(leaf, v)
			return
		}
		cur = next
	}
}

func descend(cur validate.Result, s segment) (validate.Result, bool) {
	if s.list {
		list, ok := cur[s.name].(validate.List)
		if !ok {
			if _, exists := cur[s.name]; exists {
				return nil, false
			}
			list = validate.List{}
			cur[s.name] = list
		}
		sub, ok := list[s.index]
		if !ok {
			sub = validate.Result{}
			list[s.index] = sub
		}
		return sub, true
	}

	nested, ok := cur[s.name].(validate.Nested)
	if !ok {
		if _, exists := cur[s.name]; exists {
			return nil, false
		}
		nested = validate.Nested{}
		cur[s.name] = nested
	}
	return validate.Result(nested), true
}

func joinSegments(segs []segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.name)
		if s.list {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

func violationOf(fe validator.FieldError) validate.Violation {
	v := validate.Violation{
		Code:    fe.Tag(),
		Message: messageOf(fe),
	}
	if fe.Param() != "" {
		v.Params = map[string]any{"param": fe.Param()}
	}
	return v
}

func messageOf(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url", "uri":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed on the %s=%s rule", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}
