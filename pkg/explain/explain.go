// Package explain renders a parsed program back out as a human-readable
// trace (-e) or a parse tree (-p), the two debugging views spec.md §6
// promises alongside running the program for real. The rendering idiom
// ("one line per node, quote the source excerpt") is adapted from a
// recursive-AST pretty printer to t's flat Op list, where every op acts
// in sequence and there is no tree to descend.
package explain

import (
	"fmt"
	"strconv"
	"strings"

	"tlang.dev/pkg/parse"
	"tlang.dev/pkg/selection"
)

const maxExcerpt = 24

// ParseTree renders prog as one line per op: its index, its kind, and its
// source excerpt, the -p view.
func ParseTree(prog parse.Program) string {
	var b strings.Builder
	for i, op := range prog.Ops {
		fmt.Fprintf(&b, "%2d  %-16s %s\n", i, op.Kind, compactQuote(prog.Source[op.From:op.To]))
	}
	return b.String()
}

// Explain renders prog as a human-readable description of what each op
// does: short, imperative, one line per op.
func Explain(prog parse.Program) string {
	var b strings.Builder
	for _, op := range prog.Ops {
		fmt.Fprintf(&b, "%-10s %s\n", compactQuote(prog.Source[op.From:op.To]), describe(op))
	}
	return b.String()
}

func describe(op parse.Op) string {
	switch op.Kind {
	case parse.OpSplit:
		return "split each line into words (or each word into chars one level deeper)"
	case parse.OpSplitDelim:
		return fmt.Sprintf("split on the literal delimiter %q", op.Delim)
	case parse.OpJoinChildren:
		return "join each child array into a single string"
	case parse.OpJoinSelf:
		return fmt.Sprintf("join the focused array's own elements with %q", op.Delim)
	case parse.OpFlatten:
		return "splice every array child's elements into the parent"
	case parse.OpLower:
		return "lowercase every string leaf"
	case parse.OpUpper:
		return "uppercase every string leaf"
	case parse.OpLowerSel:
		return "lowercase the elements named by " + describeSel(op.Sel)
	case parse.OpUpperSel:
		return "uppercase the elements named by " + describeSel(op.Sel)
	case parse.OpToNumber:
		return "parse every string leaf as a number"
	case parse.OpToNumberSel:
		return "parse the elements named by " + describeSel(op.Sel) + " as numbers"
	case parse.OpTrim:
		return "trim surrounding whitespace from every string leaf"
	case parse.OpTrimSel:
		return "trim the elements named by " + describeSel(op.Sel)
	case parse.OpReplace:
		desc := fmt.Sprintf("replace %q with %q", op.PatternSrc, op.Replacement)
		if len(op.Sel.Items) > 0 {
			desc += " in the elements named by " + describeSel(op.Sel)
		}
		return desc
	case parse.OpFilterMatch:
		return fmt.Sprintf("keep children matching /%s/", op.PatternSrc)
	case parse.OpFilterNotMatch:
		return fmt.Sprintf("drop children matching /%s/", op.PatternSrc)
	case parse.OpMatchAll:
		return fmt.Sprintf("replace each child with all its matches of /%s/", op.PatternSrc)
	case parse.OpDeleteEmpty:
		return "drop empty string/array children"
	case parse.OpSelect:
		return "select " + describeSel(op.Sel)
	case parse.OpSortDesc:
		return "sort children descending"
	case parse.OpSortAsc:
		return "sort children ascending"
	case parse.OpGroup:
		return "group children by " + describeSel(op.Sel)
	case parse.OpDedupe:
		return "count distinct children, most frequent first"
	case parse.OpDedupeSel:
		return "count children distinct by " + describeSel(op.Sel) + ", most frequent first"
	case parse.OpCount:
		return "replace the focused array with its length"
	case parse.OpSum:
		return "sum every numeric leaf"
	case parse.OpColumnate:
		return "render as a left-aligned table"
	case parse.OpPartition:
		return "partition into chunks starting at " + describeSel(op.Sel)
	case parse.OpFocusDown:
		return "descend the focus one level"
	case parse.OpFocusUp:
		return "return the focus up one level"
	case parse.OpNoop:
		return "(no-op separator)"
	default:
		return "?"
	}
}

func describeSel(sel selection.Selection) string {
	parts := make([]string, len(sel.Items))
	for i, it := range sel.Items {
		if !it.IsSlice {
			parts[i] = strconv.Itoa(it.Index)
			continue
		}
		parts[i] = describeSlice(it.Slice)
	}
	return strings.Join(parts, ", ")
}

func describeSlice(sl selection.Slice) string {
	start, end := "", ""
	if sl.Start != nil {
		start = strconv.Itoa(*sl.Start)
	}
	if sl.End != nil {
		end = strconv.Itoa(*sl.End)
	}
	if sl.Step != nil {
		return start + ":" + end + ":" + strconv.Itoa(*sl.Step)
	}
	return start + ":" + end
}

func compactQuote(s string) string {
	if len(s) > maxExcerpt {
		s = s[:maxExcerpt-3] + "..."
	}
	return strconv.Quote(s)
}
