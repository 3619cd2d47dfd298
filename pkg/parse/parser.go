package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"tlang.dev/pkg/diag"
	"tlang.dev/pkg/eval/re"
	"tlang.dev/pkg/selection"
)

// parser maintains the mutable state of parsing: a single-pass,
// left-to-right scan over src (src, pos), narrowed to what this grammar
// needs (no warnings, no error accumulation — spec.md §4.1/§7 says the
// first malformed construct aborts parsing).
type parser struct {
	src string
	pos int
}

func (p *parser) errorf(from, to int, format string, args ...interface{}) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext("<program>", p.src, diag.Ranging{From: from, To: to}),
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() (rune, int) {
	if p.eof() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(p.src[p.pos:])
}

func (p *parser) parseProgram() ([]Op, error) {
	var ops []Op
	for !p.eof() {
		op, err := p.parseOp()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (p *parser) parseOp() (Op, error) {
	start := p.pos
	r, size := p.peek()

	mkOp := func(kind Kind) Op {
		return Op{Ranging: diag.Ranging{From: start, To: p.pos}, Kind: kind}
	}

	switch r {
	case 's':
		p.pos += size
		return mkOp(OpSplit), nil
	case 'j':
		p.pos += size
		return mkOp(OpJoinChildren), nil
	case 'f':
		p.pos += size
		return mkOp(OpFlatten), nil
	case 'l':
		p.pos += size
		return mkOp(OpLower), nil
	case 'u':
		p.pos += size
		return mkOp(OpUpper), nil
	case 'n':
		p.pos += size
		return mkOp(OpToNumber), nil
	case 't':
		p.pos += size
		return mkOp(OpTrim), nil
	case 'x':
		p.pos += size
		return mkOp(OpDeleteEmpty), nil
	case 'o':
		p.pos += size
		return mkOp(OpSortDesc), nil
	case 'O':
		p.pos += size
		return mkOp(OpSortAsc), nil
	case 'd':
		p.pos += size
		return mkOp(OpDedupe), nil
	case '#':
		p.pos += size
		return mkOp(OpCount), nil
	case '+':
		p.pos += size
		return mkOp(OpSum), nil
	case 'c':
		p.pos += size
		return mkOp(OpColumnate), nil
	case '@':
		p.pos += size
		return mkOp(OpFocusDown), nil
	case '^':
		p.pos += size
		return mkOp(OpFocusUp), nil
	case ';':
		p.pos += size
		return mkOp(OpNoop), nil

	case 'S':
		p.pos += size
		delim, err := p.parseDelimLiteral()
		if err != nil {
			return Op{}, err
		}
		op := mkOp(OpSplitDelim)
		op.Delim = delim
		return op, nil
	case 'J':
		p.pos += size
		delim, err := p.parseDelimLiteral()
		if err != nil {
			return Op{}, err
		}
		op := mkOp(OpJoinSelf)
		op.Delim = delim
		return op, nil

	case 'L', 'U', 'N', 'T', 'D', 'g', 'p':
		kind := map[rune]Kind{
			'L': OpLowerSel, 'U': OpUpperSel, 'N': OpToNumberSel, 'T': OpTrimSel,
			'D': OpDedupeSel, 'g': OpGroup, 'p': OpPartition,
		}[r]
		p.pos += size
		sel, err := p.parseSelectionRun(true)
		if err != nil {
			return Op{}, err
		}
		op := mkOp(kind)
		op.Sel = sel
		return op, nil

	case 'r':
		p.pos += size
		sel, err := p.parseSelectionRun(false)
		if err != nil {
			return Op{}, err
		}
		if err := p.expectRune('/'); err != nil {
			return Op{}, err
		}
		patSrc, err := p.scanEscaped('/', map[rune]rune{'/': '/'})
		if err != nil {
			return Op{}, err
		}
		repl, err := p.scanEscaped('/', map[rune]rune{'/': '/', 'n': '\n', 't': '\t', '\\': '\\'})
		if err != nil {
			return Op{}, err
		}
		pat, err := re.Compile(patSrc)
		if err != nil {
			return Op{}, p.errorf(start, p.pos, "invalid regex %q: %v", patSrc, err)
		}
		op := mkOp(OpReplace)
		op.Sel = sel
		op.Pattern = pat
		op.PatternSrc = patSrc
		op.Replacement = repl
		return op, nil

	case '/', 'm':
		var kind Kind
		if r == '/' {
			kind = OpFilterMatch
		} else {
			kind = OpMatchAll
			p.pos += size
		}
		if err := p.expectRune('/'); err != nil {
			return Op{}, err
		}
		patSrc, err := p.scanEscaped('/', map[rune]rune{'/': '/'})
		if err != nil {
			return Op{}, err
		}
		pat, err := re.Compile(patSrc)
		if err != nil {
			return Op{}, p.errorf(start, p.pos, "invalid regex %q: %v", patSrc, err)
		}
		op := mkOp(kind)
		op.Pattern = pat
		op.PatternSrc = patSrc
		return op, nil

	case '!':
		p.pos += size
		if err := p.expectRune('/'); err != nil {
			return Op{}, err
		}
		patSrc, err := p.scanEscaped('/', map[rune]rune{'/': '/'})
		if err != nil {
			return Op{}, err
		}
		pat, err := re.Compile(patSrc)
		if err != nil {
			return Op{}, p.errorf(start, p.pos, "invalid regex %q: %v", patSrc, err)
		}
		op := mkOp(OpFilterNotMatch)
		op.Pattern = pat
		op.PatternSrc = patSrc
		return op, nil

	default:
		if isSelectionRune(r) {
			sel, err := p.parseSelectionRun(true)
			if err != nil {
				return Op{}, err
			}
			op := mkOp(OpSelect)
			op.Sel = sel
			return op, nil
		}
		if r == utf8.RuneError && size == 0 {
			return Op{}, p.errorf(p.pos, p.pos, "unexpected end of input")
		}
		return Op{}, p.errorf(start, start+size, "unexpected character %q", r)
	}
}

func (p *parser) expectRune(want rune) error {
	r, size := p.peek()
	if r != want {
		return p.errorf(p.pos, p.pos+size, "expected %q", want)
	}
	p.pos += size
	return nil
}

// scanEscaped scans runes up to (and consuming) the first unescaped delim,
// applying the given escapes map (e.g. '/' -> '/', 'n' -> '\n'); any other
// backslash sequence is preserved verbatim, per spec.md §4.9: regex
// patterns pass all but \<delim> unchanged to the regex engine.
func (p *parser) scanEscaped(delim rune, escapes map[rune]rune) (string, error) {
	var b strings.Builder
	start := p.pos
	for {
		if p.eof() {
			return "", p.errorf(start, p.pos, "unterminated %q-delimited literal", delim)
		}
		r, size := p.peek()
		if r == delim {
			p.pos += size
			return b.String(), nil
		}
		if r == '\\' {
			next, nsize := utf8.DecodeRuneInString(p.src[p.pos+size:])
			if rep, ok := escapes[next]; ok && nsize > 0 {
				b.WriteRune(rep)
				p.pos += size + nsize
				continue
			}
			b.WriteRune(r)
			p.pos += size
			continue
		}
		b.WriteRune(r)
		p.pos += size
	}
}

// parseDelimLiteral parses the argument of S/J: either one literal scalar
// (bare, no escapes) or a quoted, multi-character delimiter with
// \n \t \\ \" escapes.
func (p *parser) parseDelimLiteral() (string, error) {
	start := p.pos
	r, size := p.peek()
	if size == 0 {
		return "", p.errorf(start, start, "expected a delimiter")
	}
	if r == '"' {
		p.pos += size
		delim, err := p.scanEscaped('"', map[rune]rune{'"': '"', 'n': '\n', 't': '\t', '\\': '\\'})
		if err != nil {
			return "", err
		}
		if delim == "" {
			return "", p.errorf(start, p.pos, "empty delimiter")
		}
		return delim, nil
	}
	p.pos += size
	return string(r), nil
}

func isSelectionRune(r rune) bool {
	return unicode.IsDigit(r) || r == '-' || r == ':' || r == ','
}

// parseSelectionRun consumes the maximal run of selection-grammar
// characters at the current position and parses it per spec.md §4.2's
// grammar. If required is true and no selection characters are present,
// it is a parse error — the shape L/U/N/T/D/g/p need. If required is
// false (r's optional leading selection), an absent selection returns the
// zero Selection with a nil error.
func (p *parser) parseSelectionRun(required bool) (selection.Selection, error) {
	start := p.pos
	for !p.eof() {
		r, size := p.peek()
		if !isSelectionRune(r) {
			break
		}
		p.pos += size
	}
	text := p.src[start:p.pos]
	if text == "" {
		if required {
			return selection.Selection{}, p.errorf(start, start, "expected a selection")
		}
		return selection.Selection{}, nil
	}
	return parseSelectionText(p, start, text)
}

func parseSelectionText(p *parser, base int, text string) (selection.Selection, error) {
	parts := strings.Split(text, ",")
	items := make([]selection.Item, len(parts))
	for i, part := range parts {
		item, err := parseSelectionItem(p, base, part)
		if err != nil {
			return selection.Selection{}, err
		}
		items[i] = item
	}
	return selection.Selection{Items: items, Scalar: len(items) == 1 && !items[0].IsSlice}, nil
}

func parseSelectionItem(p *parser, base int, part string) (selection.Item, error) {
	n := strings.Count(part, ":")
	if n == 0 {
		if part == "" {
			return selection.Item{}, p.errorf(base, base+len(part), "empty selection item")
		}
		idx, err := parseSignedInt(p, base, part)
		if err != nil {
			return selection.Item{}, err
		}
		return selection.Item{Index: idx}, nil
	}
	if n > 2 {
		return selection.Item{}, p.errorf(base, base+len(part), "too many colons in slice %q", part)
	}
	fields := strings.SplitN(part, ":", 3)
	for len(fields) < 3 {
		fields = append(fields, "")
	}
	sl := selection.Slice{}
	if fields[0] != "" {
		v, err := parseSignedInt(p, base, fields[0])
		if err != nil {
			return selection.Item{}, err
		}
		sl.Start = &v
	}
	if fields[1] != "" {
		v, err := parseSignedInt(p, base, fields[1])
		if err != nil {
			return selection.Item{}, err
		}
		sl.End = &v
	}
	if fields[2] != "" {
		v, err := parseSignedInt(p, base, fields[2])
		if err != nil {
			return selection.Item{}, err
		}
		if v == 0 {
			return selection.Item{}, p.errorf(base, base+len(part), "slice step cannot be 0")
		}
		sl.Step = &v
	}
	return selection.Item{IsSlice: true, Slice: sl}, nil
}

func parseSignedInt(p *parser, base int, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorf(base, base+len(s), "invalid index %q", s)
	}
	return v, nil
}
