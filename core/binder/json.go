package binder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONBody is the default size limit for JSON request bodies.
const DefaultMaxJSONBody = 1 << 20 // 1 MB

// JSON creates a binder for JSON request bodies with the default size
// limit. See JSONLimited.
func JSON() Binder {
	return JSONLimited(DefaultMaxJSONBody)
}

// JSONLimited creates a JSON body binder with an explicit size limit.
//
// The binder requires an application/json Content-Type (parameters such
// as charset are ignored), rejects bodies over the limit, decodes in
// strict mode so unknown fields and trailing data fail instead of being
// silently dropped, and strips control characters from decoded strings.
func JSONLimited(limit int64) Binder {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}
		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		// Read one byte past the limit so oversized bodies are detected
		// without buffering them whole.
		body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
		if err != nil {
			return fmt.Errorf("%w: reading body: %v", ErrDeserializeJSON, err)
		}
		if int64(len(body)) > limit {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrDeserializeJSON, limit)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: empty body", ErrDeserializeJSON)
			}
			return fmt.Errorf("%w: %v", ErrDeserializeJSON, err)
		}

		// Trailing content after the first JSON value is an error, not
		// ignorable garbage.
		var extra json.RawMessage
		if err := dec.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrDeserializeJSON)
		}

		cleanStrings(v)
		return nil
	}
}
