package value

import "strings"

// SplitCSV splits s on delim the way -c (CSV mode) requires (spec.md §6):
// a double-quoted field may contain delim or a newline verbatim, and ""
// inside a quoted field is a literal quote.
func SplitCSV(s, delim string) []string {
	var out []string
	var field strings.Builder
	runes := []rune(s)
	inQuotes := false
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case inQuotes:
			if r == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteRune(r)
			i++
		case r == '"' && field.Len() == 0:
			inQuotes = true
			i++
		case strings.HasPrefix(string(runes[i:]), delim):
			out = append(out, field.String())
			field.Reset()
			i += len([]rune(delim))
		default:
			field.WriteRune(r)
			i++
		}
	}
	out = append(out, field.String())
	return out
}

// JoinCSV joins fields with delim, quoting any field that contains delim,
// a double quote, or a newline, doubling embedded quotes.
func JoinCSV(fields []string, delim string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteCSVField(f, delim)
	}
	return strings.Join(quoted, delim)
}

func quoteCSVField(field, delim string) string {
	if !strings.ContainsAny(field, delim+"\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
