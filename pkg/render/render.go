// Package render turns a final Value into output text: the plain text
// renderer (spec.md §6) and the JSON renderer, the two collaborators the
// CLI and the interactive shell both call into.
package render

import (
	"encoding/json"
	"strings"

	"tlang.dev/pkg/value"
)

// Text renders v per spec.md §6: a top-level string prints verbatim, a
// top-level Number prints via its own String method, and a top-level
// array prints one element per delim (the -D override, or "\n" by
// default), recursing into each element with the level-appropriate
// delimiter one level deeper than the root. In CSV mode (-c), fields
// needing it are double-quoted the same way S,/J, are (spec.md §6).
func Text(v value.Value, delim string, csv bool) string {
	switch x := v.(type) {
	case value.String:
		return string(x)
	case value.Number:
		return x.String()
	case value.Array:
		elems := x.Elements()
		parts := make([]string, len(elems))
		for i, el := range elems {
			parts[i] = value.Stringify(el, value.LevelAtDepth(1))
		}
		if csv {
			return value.JoinCSV(parts, delim)
		}
		return strings.Join(parts, delim)
	default:
		return ""
	}
}

// JSON renders v as standard JSON (spec.md §6): Numbers as JSON numbers,
// Strings as JSON strings, Arrays as JSON arrays, recursively. Number and
// Array implement json.Marshaler and String is a defined string type that
// encoding/json encodes natively, so a single json.Marshal call does the
// whole job.
func JSON(v value.Value) ([]byte, error) {
	return json.Marshal(v)
}
