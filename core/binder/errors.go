package binder

import "errors"

// Sentinel errors for the binding failure modes. All errors returned by
// binders wrap one of these, so callers can discriminate with errors.Is
// without parsing messages. They represent deserialization failures and
// are distinct from validation failures, which are produced downstream
// once binding has succeeded.
var (
	// ErrUnsupportedMediaType indicates a Content-Type the binder does not
	// handle (e.g. text/plain sent to the JSON binder).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates the request carries no Content-Type
	// header although the binder requires one.
	ErrMissingContentType = errors.New("missing content type")

	// ErrDeserializeJSON indicates the body is not valid JSON for the
	// target shape, exceeds the size limit, or carries trailing data.
	ErrDeserializeJSON = errors.New("failed to deserialize JSON body")

	// ErrDeserializeForm indicates malformed URL-encoded or multipart
	// form data.
	ErrDeserializeForm = errors.New("failed to deserialize form data")

	// ErrDeserializeQuery indicates a query parameter could not be
	// converted to its target field type.
	ErrDeserializeQuery = errors.New("failed to deserialize query parameters")

	// ErrDeserializePath indicates a path segment could not be extracted
	// or converted to its target field type.
	ErrDeserializePath = errors.New("failed to deserialize path parameters")
)
