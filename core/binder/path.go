package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// ParamFunc returns the value of a named path parameter for a request.
// Routers provide compatible functions out of the box (chi.URLParam) or
// via a one-line adapter (gorilla/mux Vars, net/http PathValue).
type ParamFunc func(r *http.Request, name string) string

// Path creates a binder for URL path segments using the given ParamFunc.
//
// Parameter names resolve from the `path` struct tag, falling back to
// the lowercased field name; `path:"-"` skips a field. Missing
// parameters leave the field at its zero value so validation can decide
// whether that is acceptable.
//
//	type ProfileRequest struct {
//		UserID string `path:"id" validate:"required;uuid"`
//	}
//
//	bind := binder.Path(func(r *http.Request, name string) string {
//		return r.PathValue(name)
//	})
func Path(param ParamFunc) Binder {
	return func(r *http.Request, v any) error {
		if param == nil {
			return fmt.Errorf("%w: nil param function", ErrDeserializePath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrDeserializePath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrDeserializePath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}

			name, skip := paramName(rt.Field(i), "path")
			if skip {
				continue
			}

			value := param(r, name)
			if value == "" {
				continue
			}

			if err := setField(field, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrDeserializePath, rt.Field(i).Name, err)
			}
		}

		return nil
	}
}
