package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
)

// RuleFunc checks a single value against one rule and returns a Violation
// when the rule fails, or nil when it passes. Params are the colon-suffixed
// arguments from the validate tag, split on commas.
type RuleFunc func(value reflect.Value, params []string) *Violation

var (
	registryMu sync.RWMutex
	registry   = map[string]RuleFunc{
		"required": requiredRule,
		"min":      minRule,
		"max":      maxRule,
		"len":      lenRule,
		"between":  betweenRule,
		"range":    rangeRule,
		"email":    emailRule,
		"url":      urlRule,
		"uuid":     uuidRule,
		"alpha":    alphaRule,
		"alphanum": alphanumRule,
		"numeric":  numericRule,
		"in":       inRule,
		"contains": containsRule,
		"prefix":   prefixRule,
		"suffix":   suffixRule,
		"regex":    regexRule,
		"positive": positiveRule,
		"nonzero":  nonZeroRule,
	}
)

// RegisterRule adds a custom rule to the registry, replacing any rule
// already registered under the same name.
func RegisterRule(name string, fn RuleFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

func lookupRule(name string) (RuleFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

func requiredRule(value reflect.Value, _ []string) *Violation {
	if !isZeroValue(value) {
		return nil
	}
	return &Violation{
		Code:    "required",
		Message: "is required",
	}
}

func minRule(value reflect.Value, params []string) *Violation {
	if len(params) < 1 {
		return nil
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		if len(value.String()) >= min {
			return nil
		}
		return &Violation{
			Code:    "min",
			Message: fmt.Sprintf("must be at least %d characters", min),
			Params:  map[string]any{"min": min},
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		min, _ := strconv.Atoi(params[0])
		if value.Len() >= min {
			return nil
		}
		return &Violation{
			Code:    "min",
			Message: fmt.Sprintf("must have at least %d items", min),
			Params:  map[string]any{"min": min},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, _ := strconv.ParseInt(params[0], 10, 64)
		if value.Int() >= min {
			return nil
		}
		return &Violation{
			Code:    "min",
			Message: fmt.Sprintf("must be at least %d", min),
			Params:  map[string]any{"min": min},
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		min, _ := strconv.ParseUint(params[0], 10, 64)
		if value.Uint() >= min {
			return nil
		}
		return &Violation{
			Code:    "min",
			Message: fmt.Sprintf("must be at least %d", min),
			Params:  map[string]any{"min": min},
		}
	case reflect.Float32, reflect.Float64:
		min, _ := strconv.ParseFloat(params[0], 64)
		if value.Float() >= min {
			return nil
		}
		return &Violation{
			Code:    "min",
			Message: fmt.Sprintf("must be at least %v", min),
			Params:  map[string]any{"min": min},
		}
	default:
		return nil
	}
}

func maxRule(value reflect.Value, params []string) *Violation {
	if len(params) < 1 {
		return nil
	}

	switch value.Kind() {
	case reflect.String:
		max, _ := strconv.Atoi(params[0])
		if len(value.String()) <= max {
			return nil
		}
		return &Violation{
			Code:    "max",
			Message: fmt.Sprintf("must be at most %d characters", max),
			Params:  map[string]any{"max": max},
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		max, _ := strconv.Atoi(params[0])
		if value.Len() <= max {
			return nil
		}
		return &Violation{
			Code:    "max",
			Message: fmt.Sprintf("must have at most %d items", max),
			Params:  map[string]any{"max": max},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, _ := strconv.ParseInt(params[0], 10, 64)
		if value.Int() <= max {
			return nil
		}
		return &Violation{
			Code:    "max",
			Message: fmt.Sprintf("must be at most %d", max),
			Params:  map[string]any{"max": max},
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		max, _ := strconv.ParseUint(params[0], 10, 64)
		if value.Uint() <= max {
			return nil
		}
		return &Violation{
			Code:    "max",
			Message: fmt.Sprintf("must be at most %d", max),
			Params:  map[string]any{"max": max},
		}
	case reflect.Float32, reflect.Float64:
		max, _ := strconv.ParseFloat(params[0], 64)
		if value.Float() <= max {
			return nil
		}
		return &Violation{
			Code:    "max",
			Message: fmt.Sprintf("must be at most %v", max),
			Params:  map[string]any{"max": max},
		}
	default:
		return nil
	}
}

func lenRule(value reflect.Value, params []string) *Violation {
	if len(params) < 1 {
		return nil
	}
	expected, _ := strconv.Atoi(params[0])

	switch value.Kind() {
	case reflect.String:
		if len(value.String()) == expected {
			return nil
		}
		return &Violation{
			Code:    "len",
			Message: fmt.Sprintf("must be exactly %d characters", expected),
			Params:  map[string]any{"len": expected},
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		if value.Len() == expected {
			return nil
		}
		return &Violation{
			Code:    "len",
			Message: fmt.Sprintf("must have exactly %d items", expected),
			Params:  map[string]any{"len": expected},
		}
	default:
		return nil
	}
}

func betweenRule(value reflect.Value, params []string) *Violation {
	if len(params) < 2 {
		return nil
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		max, _ := strconv.Atoi(params[1])
		if l := len(value.String()); l >= min && l <= max {
			return nil
		}
		return &Violation{
			Code:    "between",
			Message: fmt.Sprintf("must be between %d and %d characters", min, max),
			Params:  map[string]any{"min": min, "max": max},
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		min, _ := strconv.Atoi(params[0])
		max, _ := strconv.Atoi(params[1])
		if l := value.Len(); l >= min && l <= max {
			return nil
		}
		return &Violation{
			Code:    "between",
			Message: fmt.Sprintf("must have between %d and %d items", min, max),
			Params:  map[string]any{"min": min, "max": max},
		}
	default:
		return rangeViolation(value, params, "between")
	}
}

// rangeRule bounds numeric values. One param sets the lower bound only
// ("range:1"); two params set both ("range:1,100").
func rangeRule(value reflect.Value, params []string) *Violation {
	if len(params) < 1 {
		return nil
	}
	return rangeViolation(value, params, "range")
}

func rangeViolation(value reflect.Value, params []string, code string) *Violation {
	num, ok := toFloat(value)
	if !ok {
		return nil
	}

	min, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return nil
	}

	hasMax := len(params) > 1 && params[1] != ""
	var max float64
	if hasMax {
		max, _ = strconv.ParseFloat(params[1], 64)
	}

	if num >= min && (!hasMax || num <= max) {
		return nil
	}

	v := &Violation{Code: code, Params: map[string]any{"min": min}}
	if hasMax {
		v.Message = fmt.Sprintf("must be between %v and %v", min, max)
		v.Params["max"] = max
	} else {
		v.Message = fmt.Sprintf("must be at least %v", min)
	}
	return v
}

func toFloat(value reflect.Value) (float64, bool) {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true
	case reflect.Float32, reflect.Float64:
		return value.Float(), true
	default:
		return 0, false
	}
}

func emailRule(value reflect.Value, _ []string) *Violation {
	if value.Kind() != reflect.String {
		return nil
	}
	addr, err := mail.ParseAddress(value.String())
	if err == nil && addr.Address == value.String() {
		return nil
	}
	return &Violation{
		Code:    "email",
		Message: "must be a valid email address",
	}
}

func urlRule(value reflect.Value, _ []string) *Violation {
	if value.Kind() != reflect.String {
		return nil
	}
	u, err := url.Parse(value.String())
	if err == nil && u.Scheme != "" && u.Host != "" {
		return nil
	}
	return &Violation{
		Code:    "url",
		Message: "must be a valid URL",
	}
}

func uuidRule(value reflect.Value, _ []string) *Violation {
	if value.Kind() != reflect.String {
		return nil
	}
	if _, err := uuid.Parse(value.String()); err == nil {
		return nil
	}
	return &Violation{
		Code:    "uuid",
		Message: "must be a valid UUID",
	}
}

func alphaRule(value reflect.Value, _ []string) *Violation {
	return charsetViolation(value, "alpha", "must contain only letters", func(r rune) bool {
		return unicode.IsLetter(r)
	})
}

func alphanumRule(value reflect.Value, _ []string) *Violation {
	return charsetViolation(value, "alphanum", "must contain only letters and digits", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

func numericRule(value reflect.Value, _ []string) *Violation {
	return charsetViolation(value, "numeric", "must contain only digits", func(r rune) bool {
		return unicode.IsDigit(r)
	})
}

func charsetViolation(value reflect.Value, code, message string, allowed func(rune) bool) *Violation {
	if value.Kind() != reflect.String {
		return nil
	}
	for _, r := range value.String() {
		if !allowed(r) {
			return &Violation{Code: code, Message: message}
		}
	}
	return nil
}

func inRule(value reflect.Value, params []string) *Violation {
	if len(params) == 0 {
		return nil
	}
	s := stringify(value)
	for _, p := range params {
		if s == p {
			return nil
		}
	}
	return &Violation{
		Code:    "in",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(params, ", ")),
		Params:  map[string]any{"allowed": params},
	}
}

func containsRule(value reflect.Value, params []string) *Violation {
	if value.Kind() != reflect.String || len(params) < 1 {
		return nil
	}
	if strings.Contains(value.String(), params[0]) {
		return nil
	}
	return &Violation{
		Code:    "contains",
		Message: fmt.Sprintf("must contain %q", params[0]),
		Params:  map[string]any{"substring": params[0]},
	}
}

func prefixRule(value reflect.Value, params []string) *Violation {
	if value.Kind() != reflect.String || len(params) < 1 {
		return nil
	}
	if strings.HasPrefix(value.String(), params[0]) {
		return nil
	}
	return &Violation{
		Code:    "prefix",
		Message: fmt.Sprintf("must start with %q", params[0]),
		Params:  map[string]any{"prefix": params[0]},
	}
}

func suffixRule(value reflect.Value, params []string) *Violation {
	if value.Kind() != reflect.String || len(params) < 1 {
		return nil
	}
	if strings.HasSuffix(value.String(), params[0]) {
		return nil
	}
	return &Violation{
		Code:    "suffix",
		Message: fmt.Sprintf("must end with %q", params[0]),
		Params:  map[string]any{"suffix": params[0]},
	}
}

func regexRule(value reflect.Value, params []string) *Violation {
	if value.Kind() != reflect.String || len(params) < 1 {
		return nil
	}
	re, err := regexp.Compile(params[0])
	if err != nil {
		return nil
	}
	if re.MatchString(value.String()) {
		return nil
	}
	return &Violation{
		Code:    "regex",
		Message: "has an invalid format",
		Params:  map[string]any{"pattern": params[0]},
	}
}

func positiveRule(value reflect.Value, _ []string) *Violation {
	num, ok := toFloat(value)
	if !ok || num > 0 {
		return nil
	}
	return &Violation{
		Code:    "positive",
		Message: "must be positive",
	}
}

func nonZeroRule(value reflect.Value, _ []string) *Violation {
	if !isZeroValue(value) {
		return nil
	}
	return &Violation{
		Code:    "nonzero",
		Message: "must not be zero",
	}
}

func stringify(value reflect.Value) string {
	switch value.Kind() {
	case reflect.String:
		return value.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(value.Bool())
	default:
		return fmt.Sprintf("%v", value.Interface())
	}
}

func isZeroValue(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.String:
		return value.String() == ""
	case reflect.Slice, reflect.Map:
		return value.IsNil() || value.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return value.IsNil()
	case reflect.Invalid:
		return true
	default:
		return value.IsZero()
	}
}
