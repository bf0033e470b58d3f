package binder

import "net/http"

// Query creates a binder for URL query parameters.
//
// Parameter names resolve from the `query` struct tag, falling back to
// the lowercased field name; `query:"-"` skips a field. Supported field
// types are strings, ints, uints, floats, bools, slices of those for
// multi-value parameters, and pointers for optional parameters.
//
//	type SearchRequest struct {
//		Query    string   `query:"q" validate:"required"`
//		Page     int      `query:"page"`
//		Tags     []string `query:"tags"`   // ?tags=go&tags=web or ?tags=go,web
//		Active   *bool    `query:"active"` // optional
//		Internal string   `query:"-"`
//	}
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindStruct(v, "query", r.URL.Query(), ErrDeserializeQuery)
	}
}
