// Package binder deserializes HTTP request data into typed Go values.
// It is the deserialization half of the extraction pipeline: each binder
// maps one request source (query string, JSON body, form body, path
// segments) onto struct fields via tags, and reports failures through
// sentinel errors that stay distinct from rule-validation failures.
//
// # Binders
//
//	jsonBind := binder.JSON()                 // application/json bodies
//	formBind := binder.Form()                 // urlencoded + multipart bodies
//	queryBind := binder.Query()               // URL query parameters
//	pathBind := binder.Path(chi.URLParam)     // router path segments
//
// Binders compose: applying several in sequence fills one struct from
// multiple sources, since each binder only touches fields carrying its
// own tag.
//
//	type UpdateRequest struct {
//		ID    string `path:"id"`
//		Force bool   `query:"force"`
//		Name  string `form:"name"`
//	}
//
// # Error Handling
//
// Every returned error wraps one of the package sentinels
// (ErrDeserializeJSON, ErrDeserializeForm, ErrDeserializeQuery,
// ErrDeserializePath, ErrUnsupportedMediaType, ErrMissingContentType),
// so callers branch with errors.Is. These represent payloads that could
// not be parsed into the target shape at all; a payload that parses but
// breaks validation rules never surfaces here.
//
// # Hardening
//
// JSON bodies are size-limited (1 MB by default, see JSONLimited) and
// decoded strictly: unknown fields and trailing data are rejected.
// Multipart boundaries are checked before parsing, uploaded filenames
// are reduced to their base component, and bound strings are stripped
// of control characters to block CRLF and null-byte injection.
package binder
