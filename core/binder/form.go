package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMultipartMemory is the in-memory ceiling for multipart form
// parsing; larger uploads spill to temporary files.
const DefaultMaxMultipartMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Form values resolve from the `form` struct tag and uploaded files from
// the `file` tag (`*multipart.FileHeader` for a single file,
// `[]*multipart.FileHeader` for several). Fields without either tag are
// left untouched so a struct can mix form fields with query or path
// fields.
//
//	type UploadRequest struct {
//		Title   string                `form:"title" validate:"required"`
//		Tags    []string              `form:"tags"`
//		Avatar  *multipart.FileHeader `file:"avatar"`
//		Private string                `form:"-"`
//	}
func Form() Binder {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		var values map[string][]string
		var files map[string][]*multipart.FileHeader

		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrDeserializeForm, err)
			}
			values = r.Form

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return fmt.Errorf("%w: malformed content type", ErrDeserializeForm)
			}
			if !validBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid multipart boundary", ErrDeserializeForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMultipartMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrDeserializeForm, err)
			}
			values = map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
				files = r.MultipartForm.File
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindForm(v, values, files)
	}
}

func bindForm(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrDeserializeForm)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrDeserializeForm)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		structField := rt.Field(i)

		if name, ok := tagValue(structField, "form"); ok {
			if fieldValues, exists := values[name]; exists && len(fieldValues) > 0 {
				if err := setField(field, fieldValues); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrDeserializeForm, structField.Name, err)
				}
			}
		}

		if name, ok := tagValue(structField, "file"); ok && files != nil {
			if headers, exists := files[name]; exists && len(headers) > 0 {
				if err := setFileField(field, headers); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrDeserializeForm, structField.Name, err)
				}
			}
		}
	}

	return nil
}

func tagValue(field reflect.StructField, tagName string) (string, bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" || tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return "", false
	}
	return name, true
}

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

func setFileField(field reflect.Value, headers []*multipart.FileHeader) error {
	for _, fh := range headers {
		fh.Filename = safeFilename(fh.Filename)
	}

	switch {
	case field.Type() == fileHeaderType:
		field.Set(reflect.ValueOf(headers[0]))

	case field.Kind() == reflect.Slice && field.Type().Elem() == fileHeaderType:
		slice := reflect.MakeSlice(field.Type(), len(headers), len(headers))
		for i, fh := range headers {
			slice.Index(i).Set(reflect.ValueOf(fh))
		}
		field.Set(slice)

	default:
		return fmt.Errorf("unsupported file field type %s", field.Type())
	}

	return nil
}

// validBoundary rejects boundary parameters that would break multipart
// parsing or enable request smuggling.
func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 100 {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}

// safeFilename reduces an uploaded filename to its base component so
// client-controlled paths cannot traverse directories.
func safeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		return "unnamed"
	}
	return filename
}
