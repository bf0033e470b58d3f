package extractor

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validbind/core/binder"
	"github.com/dmitrymomot/validbind/core/sanitizer"
	"github.com/dmitrymomot/validbind/core/validate"
)

// Extractor deserializes one request source into T and validates the
// result. Construct one per payload type with Query, JSON, Form, or
// Path and reuse it across requests; extractors are immutable after
// construction and safe for concurrent use.
type Extractor[T any] struct {
	bind binder.Binder
	cfg  Config
}

// Query builds an extractor for URL query parameters.
func Query[T any](opts ...Option) *Extractor[T] {
	return newExtractor[T](func(Config) binder.Binder { return binder.Query() }, opts)
}

// JSON builds an extractor for JSON request bodies. The body size limit
// is configurable with WithMaxJSONBody.
func JSON[T any](opts ...Option) *Extractor[T] {
	return newExtractor[T](func(cfg Config) binder.Binder { return binder.JSONLimited(cfg.maxJSONBody) }, opts)
}

// Form builds an extractor for URL-encoded and multipart form bodies.
func Form[T any](opts ...Option) *Extractor[T] {
	return newExtractor[T](func(Config) binder.Binder { return binder.Form() }, opts)
}

// Path builds an extractor for URL path segments, using the router's
// parameter lookup (e.g. chi.URLParam or a wrapper over
// http.Request.PathValue).
func Path[T any](param binder.ParamFunc, opts ...Option) *Extractor[T] {
	return newExtractor[T](func(Config) binder.Binder { return binder.Path(param) }, opts)
}

func newExtractor[T any](build func(Config) binder.Binder, opts []Option) *Extractor[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Extractor[T]{bind: build(cfg), cfg: cfg}
}

// Extract runs the pipeline for one request: bind, sanitize, validate.
//
// On a deserialization failure it returns the binder's error untouched;
// validation never runs on a payload that failed to parse. On rule
// failures it returns a *validate.Errors carrying the result tree. A
// payload that binds and passes validation is returned as a non-nil *T.
func (e *Extractor[T]) Extract(r *http.Request) (*T, error) {
	v := new(T)

	if err := e.bind(r, v); err != nil {
		e.logFailure(r, err)
		return nil, err
	}

	if e.cfg.sanitize {
		if err := sanitizer.Apply(v); err != nil {
			return nil, err
		}
	}

	result, err := e.cfg.validateFn(v)
	if err != nil {
		return nil, err
	}
	if !result.IsValid() {
		verr := &validate.Errors{Result: result}
		e.logFailure(r, verr)
		return nil, verr
	}

	return v, nil
}

// Handle adapts a typed handler into an http.HandlerFunc. Failed
// extractions go to the configured error handler; the handler only runs
// with a fully bound and validated payload.
func Handle[T any](e *Extractor[T], fn func(w http.ResponseWriter, r *http.Request, payload *T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := e.Extract(r)
		if err != nil {
			e.cfg.errorHandler(w, r, err)
			return
		}
		fn(w, r, payload)
	}
}

func (e *Extractor[T]) logFailure(r *http.Request, err error) {
	if e.cfg.logger == nil {
		return
	}
	e.cfg.logger.DebugContext(r.Context(), "request extraction failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
}
