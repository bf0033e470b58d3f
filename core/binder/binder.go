package binder

import "net/http"

// Binder deserializes one source of HTTP request data (query string, JSON
// body, form body, path segments) into a typed value. Binders report
// deserialization failures only; rule validation happens after binding,
// on the successfully populated value.
type Binder func(r *http.Request, v any) error
