// Package sanitizer normalizes bound request data before validation.
// Transforms are declared per field in the `sanitize` struct tag and run
// in order, so "trim;lower" trims first and lowercases second. The
// registry ships common transforms (case folding, whitespace collapsing,
// HTML escaping, email and URL normalization) and accepts custom ones
// via RegisterSanitizer.
//
// Sanitization is a normalization step, not a validation step: it never
// fails on content, only on misuse (non-struct input), and it runs
// between binding and validation so rules observe the cleaned value.
package sanitizer
