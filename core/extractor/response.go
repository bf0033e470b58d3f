package extractor

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validbind/core/binder"
	"github.com/dmitrymomot/validbind/core/validate"
)

// DefaultErrorHandler maps extraction failures to plain-text responses.
//
// Rule failures produce a 400 whose body lists every violated field as
// "\t<path>: <code>" under a "Validation errors in fields:" header.
// Paths are fully qualified (nested fields dotted, slice elements
// indexed) and every violation per field is listed. Content-type
// problems produce a 415; other deserialization failures a 400 with the
// parse error.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var verrs *validate.Errors
	switch {
	case errors.As(err, &verrs):
		var b strings.Builder
		b.WriteString("Validation errors in fields:")
		for _, entry := range verrs.Fields() {
			b.WriteString("\n\t")
			b.WriteString(entry.Path)
			b.WriteString(": ")
			b.WriteString(entry.Violation.Code)
		}
		http.Error(w, b.String(), http.StatusBadRequest)

	case errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType):
		http.Error(w, err.Error(), http.StatusUnsupportedMediaType)

	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
