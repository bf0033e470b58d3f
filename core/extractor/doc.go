// Package extractor turns incoming HTTP requests into validated, typed
// payloads. It chains the binder (deserialization), sanitizer
// (normalization), and validate (rule checking) packages into one
// reusable pipeline per payload type.
//
// # Usage
//
//	type SearchRequest struct {
//		Query    string `query:"q" validate:"required" sanitize:"trim"`
//		Page     int    `query:"page" validate:"range:1"`
//		PageSize int    `query:"page_size" validate:"range:1,100"`
//	}
//
//	var searchQuery = extractor.Query[SearchRequest]()
//
//	http.HandleFunc("/search", extractor.Handle(searchQuery,
//		func(w http.ResponseWriter, r *http.Request, req *SearchRequest) {
//			// req is bound and valid here
//		}))
//
// A request that fails validation never reaches the handler: the
// configured error handler writes a 400 listing every violated field by
// its full path. A request whose body cannot be parsed at all fails
// earlier, before validation runs, and is reported with the binder's
// deserialization error instead.
//
// # Configuration
//
// Each extractor takes functional options: WithErrorHandler replaces
// the response mapping, WithMaxJSONBody bounds JSON bodies,
// WithValidateFunc swaps the validation engine (see
// integration/playground for a go-playground/validator backend),
// WithoutSanitize skips the sanitize-tag pass, and WithLogger emits a
// debug line on failed extractions.
//
// Handlers that need lower-level control can call Extract directly and
// map the returned error themselves; *validate.Errors exposes the full
// result tree for custom response shapes.
package extractor
