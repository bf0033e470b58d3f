// Package validate checks request payloads against rules declared in
// struct tags and reports failures as a nested result tree that can be
// flattened into field-path-qualified messages.
//
// # Result Tree
//
// Validating a payload produces a Result: a map from field name to one of
// three outcomes. Leaf holds the violations for a scalar field, Nested
// holds the sub-result of an embedded struct, and List holds per-index
// sub-results for a slice of structs. An empty Result means the payload
// is valid.
//
//	type PageParams struct {
//		Page     int `json:"page" validate:"range:1"`
//		PageSize int `json:"page_size" validate:"range:1,100"`
//	}
//
//	type SearchRequest struct {
//		PageParams      PageParams `json:"page_params"`
//		RedirectResults string     `json:"redirect_results" validate:"url"`
//	}
//
//	result, err := validate.Struct(&req)
//	if err != nil {
//		// programming error: req is not a struct
//	}
//	if !result.IsValid() {
//		fmt.Println(validate.Render(result))
//		// page_params.page: range - must be at least 1
//		// page_params.page_size: range - must be between 1 and 100
//		// redirect_results: url - must be a valid URL
//	}
//
// # Flattening and Rendering
//
// Flatten linearizes the tree depth-first into (depth, path, violation)
// entries; paths join nested fields with "." and slice elements as
// "field[index]". Render produces the report in the fully flattened
// dotted-path form, one line per violation. Both render every violation
// a field carries; nothing is dropped when a field fails several rules.
//
// Because Go maps do not preserve insertion order, Flatten sorts field
// names at each level and slice indices ascending, so output is stable
// across runs. Violations within one field keep their declaration order.
//
// # Rules
//
// Rules are registered by name and referenced from the `validate` tag,
// separated by semicolons with parameters after a colon (for example
// `validate:"required;between:3,20"`). See RegisterRule for extending
// the registry with custom rules.
//
// Both Flatten and Render are pure functions over an immutable input and
// are safe to call concurrently from multiple request handlers.
package validate
