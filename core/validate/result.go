package validate

import "strings"

// Violation describes a single failed rule on a single scalar field.
// Code is the machine-readable rule identifier (e.g. "required", "range",
// "url"), Message is an optional human-readable explanation, and Params
// carries the rule parameters for structured rendering or translation.
// Violations are value types: constructed once by the rule engine, read
// and rendered afterwards, never mutated.
type Violation struct {
	Code    string
	Message string
	Params  map[string]any
}

// Outcome is the per-field result variant. Exactly one of Leaf, List or
// Nested is attached to a field name inside a Result.
type Outcome interface {
	isOutcome()
}

// Leaf holds one or more independent violations for a single field.
// The order of violations matches the order in which rules were declared.
type Leaf []Violation

// List holds per-element results for a slice-valued field, keyed by the
// element index. Indices need not be contiguous: only failing elements
// are present.
type List map[int]Result

// Nested holds the result for an embedded struct field.
type Nested Result

func (Leaf) isOutcome()   {}
func (List) isOutcome()   {}
func (Nested) isOutcome() {}

// Result maps field names to their outcomes for one level of a validated
// payload. Field names are unique per level. An empty Result means the
// payload is valid. A Result is built once per request, read-only after
// construction, and safe for concurrent reads.
type Result map[string]Outcome

// IsValid reports whether the result carries no violations at any depth.
func (r Result) IsValid() bool {
	return len(r) == 0
}

// Errors wraps a non-empty Result so validation failures can travel
// through ordinary error returns. The glue layer unwraps it with
// errors.As to render a field-level report; everything else sees a
// regular error value.
type Errors struct {
	Result Result
}

// Error implements the error interface with the flattened report.
func (e *Errors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	if rendered := Render(e.Result); rendered != "" {
		b.WriteString(": ")
		b.WriteString(strings.ReplaceAll(rendered, "\n", "; "))
	}
	return b.String()
}

// Fields returns the flattened entries of the wrapped result.
func (e *Errors) Fields() []Entry {
	return Flatten(e.Result)
}
