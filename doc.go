// Package validbind adds declarative payload validation to HTTP request
// extraction. It binds query strings, JSON bodies, form bodies, and
// path segments into typed structs, runs tag-declared rules over the
// result, and turns the nested failure tree into flat,
// field-path-qualified reports suitable for 400 responses.
//
// # Package Organization
//
//   - core/validate: the result tree (Leaf/List/Nested outcomes), the
//     tag-driven rule engine, and the Flatten/Render core that
//     linearizes nested failures into dotted paths.
//   - core/binder: per-source request deserialization with strict
//     parsing, size limits, and sentinel deserialization errors.
//   - core/sanitizer: tag-driven input normalization applied between
//     binding and validation.
//   - core/extractor: the typed extraction pipeline gluing the three
//     together, with per-extractor configuration and response mapping.
//   - integration/playground: go-playground/validator/v10 as a drop-in
//     validation engine for the extractor pipeline.
//
// # Quick Start
//
//	type CreateUserRequest struct {
//		Email string `json:"email" sanitize:"trim;email" validate:"required;email"`
//		Name  string `json:"name" sanitize:"trim" validate:"required;between:2,50"`
//		Age   int    `json:"age" validate:"range:18,120"`
//	}
//
//	var createUser = extractor.JSON[CreateUserRequest]()
//
//	http.HandleFunc("POST /users", extractor.Handle(createUser,
//		func(w http.ResponseWriter, r *http.Request, req *CreateUserRequest) {
//			// req is bound, sanitized, and valid
//		}))
//
// Validation failures and malformed payloads never reach the handler;
// both map to 400-class responses through a configurable error handler.
package validbind
