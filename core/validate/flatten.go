package validate

import (
	"sort"
	"strconv"
	"strings"
)

// Entry is a single flattened violation: the dotted path from the root of
// the payload to the offending field, the nesting depth (0 for top-level
// fields, +1 per nested struct or slice element descent), and the
// violation itself. Depth is informational for indented rendering; it is
// not used to build the path.
type Entry struct {
	Depth     int
	Path      string
	Violation Violation
}

// Flatten walks the result tree depth-first and returns one Entry per
// violation, in a deterministic order: field names sorted at each level,
// slice indices ascending, violations within one field in declaration
// order. Path segments are joined with "."; slice elements render as
// "field[index]" with no dot before the bracket.
//
// Go maps do not preserve insertion order, so sorting is what makes the
// output stable across runs. An empty result yields nil, never an entry
// with a missing violation.
func Flatten(root Result) []Entry {
	var entries []Entry
	flattenInto(&entries, root, "", 0)
	return entries
}

func flattenInto(entries *[]Entry, r Result, prefix string, depth int) {
	fields := make([]string, 0, len(r))
	for name := range r {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, name := range fields {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		switch outcome := r[name].(type) {
		case Leaf:
			for _, v := range outcome {
				*entries = append(*entries, Entry{Depth: depth, Path: path, Violation: v})
			}

		case Nested:
			flattenInto(entries, Result(outcome), path, depth+1)

		case List:
			indices := make([]int, 0, len(outcome))
			for i := range outcome {
				indices = append(indices, i)
			}
			sort.Ints(indices)
			for _, i := range indices {
				flattenInto(entries, outcome[i], path+"["+strconv.Itoa(i)+"]", depth+1)
			}
		}
	}
}

// Render produces the human-readable report for a result, in the fully
// flattened dotted-path form: one line per violation, formatted as
// "path: code" or "path: code - message" when a message is present.
//
// The alternative hierarchical rendering (field name once, first error
// only) silently drops additional violations per field, so every
// violation gets its own line here instead. An empty result renders to
// an empty string.
func Render(root Result) string {
	entries := Flatten(root)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Path)
		b.WriteString(": ")
		b.WriteString(e.Violation.Code)
		if e.Violation.Message != "" {
			b.WriteString(" - ")
			b.WriteString(e.Violation.Message)
		}
	}
	return b.String()
}
