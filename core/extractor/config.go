package extractor

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validbind/core/binder"
	"github.com/dmitrymomot/validbind/core/validate"
)

// ValidateFunc runs validation over a bound payload and returns its
// result tree. The error return is for engine misuse (non-struct input),
// not for rule failures. The default engine is validate.Struct; the
// playground integration provides an alternative backed by
// go-playground/validator.
type ValidateFunc func(v any) (validate.Result, error)

// ErrorHandler turns a failed extraction into an HTTP response. It
// receives either a *validate.Errors (rule failures) or a binder
// sentinel wrap (deserialization failures).
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Config carries per-extractor settings. The zero value is not usable
// directly; constructors apply defaults before options.
type Config struct {
	errorHandler ErrorHandler
	validateFn   ValidateFunc
	maxJSONBody  int64
	sanitize     bool
	logger       *slog.Logger
}

// Option is a functional option for configuring an extractor.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		errorHandler: DefaultErrorHandler,
		validateFn:   validate.Struct,
		maxJSONBody:  binder.DefaultMaxJSONBody,
		sanitize:     true,
	}
}

// WithErrorHandler replaces the default 400-mapping error handler for
// handlers built with Handle.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithValidateFunc replaces the validation engine.
func WithValidateFunc(fn ValidateFunc) Option {
	return func(c *Config) {
		if fn != nil {
			c.validateFn = fn
		}
	}
}

// WithMaxJSONBody sets the JSON body size limit in bytes. It only
// affects JSON extractors.
func WithMaxJSONBody(limit int64) Option {
	return func(c *Config) {
		if limit > 0 {
			c.maxJSONBody = limit
		}
	}
}

// WithoutSanitize disables the sanitize-tag pass between binding and
// validation.
func WithoutSanitize() Option {
	return func(c *Config) {
		c.sanitize = false
	}
}

// WithLogger enables a debug log line on every failed extraction.
func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.logger = log
	}
}
