// Package playground adapts go-playground/validator/v10 as the
// validation engine for extractors. Services already invested in
// validator tags keep their rules and get this library's nested result
// tree, flattened paths, and response rendering in return.
//
// The adapter converts validator's flat namespace-qualified errors
// ("Request.Items[2].Name") back into List and Nested outcomes, so
// reports look identical regardless of which engine produced them.
// Register a tag name function on the *validator.Validate to report
// JSON field names instead of Go field names.
package playground
