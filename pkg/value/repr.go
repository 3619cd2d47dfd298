package value

import "strings"

// Stringify renders v the way filters (`/pat/`, `!/pat/`, `m/pat/`) see a
// candidate, per spec.md §4.6: a string stringifies to itself; an array
// stringifies by joining its elements' stringified forms, recursively,
// using the delimiter appropriate to its own level. level is the level of
// v itself (the level of the child a filter is examining, not the focused
// array it came from).
func Stringify(v Value, level Level) string {
	switch v := v.(type) {
	case String:
		return string(v)
	case Number:
		return v.String()
	case Array:
		next, ok := level.Next()
		if !ok {
			next = level
		}
		parts := make([]string, 0, v.Len())
		for _, e := range v.Elements() {
			parts = append(parts, Stringify(e, next))
		}
		return strings.Join(parts, JoinDelimiter(level))
	default:
		panic("value: unknown variant")
	}
}
