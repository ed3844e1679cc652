// Package parser turns a lex.Word stream into the loose, fault-tolerant
// frontend tree: Enclosure, Ident, String and InvalidToken nodes. It never
// constructs a Tag — promoting an Ident plus its following Enclosure into a
// callable Tag is normalization's job, not the parser's.
package parser

import (
	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/lex"
	"github.com/subscript-lang/subscript/position"
)

// frame is one entry on the opening-bracket stack. The bottommost frame is
// a synthetic root: it has no open lexeme and is never closed, only drained
// at EOF into its accumulated children.
type frame struct {
	isRoot    bool
	open      string
	openRange position.Range
	children  []ast.Node
}

func (f *frame) addChild(n ast.Node) {
	f.children = append(f.children, n)
}

// Parse consumes source in full and returns the top-level node sequence.
// Parsing never fails: unbalanced closes become InvalidToken nodes in
// place, and frames still open at EOF become Error enclosures wrapping
// whatever they had accumulated. The returned ranges cover [0, len(source))
// exactly once.
func Parse(source string) []ast.Node {
	words := lex.Scan(source)
	end := endOfInput(source, words)

	stack := []frame{{isRoot: true}}
	pos := 0
	for pos < len(words) {
		current := words[pos]
		top := &stack[len(stack)-1]

		switch {
		case current.Slice == `\`:
			nextIdx := nextNonWhitespace(words, pos+1)
			if nextIdx != -1 && words[nextIdx].Slice == "{" {
				top.addChild(&ast.Ident{
					Name:  ast.InlineMathTag,
					Range: current.Range,
				})
				pos++
				continue
			}
			if nextIdx != -1 && isIdentifierLike(words[nextIdx]) {
				name := words[nextIdx].Slice
				span := position.Span(current.Range.Start, words[nextIdx].Range.End)
				top.addChild(&ast.Ident{Name: name, Range: span})
				pos = nextIdx + 1
				continue
			}
			top.addChild(&ast.String{Text: current.Slice, Range: current.Range})
			pos++

		case isCloseDelimiter(current.Slice):
			stack = closeEnclosure(stack, current)
			pos++

		case openKindExists(current.Slice):
			stack = append(stack, frame{
				open:      current.Slice,
				openRange: current.Range,
			})
			pos++

		default:
			top.addChild(&ast.String{Text: current.Slice, Range: current.Range})
			pos++
		}
	}

	return drainAll(stack, end)
}

func openKindExists(slice string) bool {
	_, ok := openKind(slice)
	return ok
}

// nextNonWhitespace returns the index of the first non-whitespace word at
// or after from, or -1 if every remaining word is whitespace.
func nextNonWhitespace(words []lex.Word, from int) int {
	for i := from; i < len(words); i++ {
		if !words[i].IsWhitespace() {
			return i
		}
	}
	return -1
}

// isIdentifierLike reports whether w can follow a backslash as an
// identifier name: anything but a break delimiter or whitespace.
func isIdentifierLike(w lex.Word) bool {
	return !w.IsWhitespace() && !lex.IsBreakWord(w.Slice)
}

// closeEnclosure matches close against the innermost open frame. A frame
// always closes on any of the three closing delimiters; whether the result
// is the expected kind or an Error enclosure depends on whether close
// actually pairs with that frame's open lexeme. Closing with no open frame
// (only the root sentinel on the stack) yields an InvalidToken instead.
func closeEnclosure(stack []frame, close lex.Word) []frame {
	if len(stack) == 1 {
		root := &stack[0]
		root.addChild(&ast.InvalidToken{Text: close.Slice, Range: close.Range})
		return stack
	}

	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]

	kind, ok := closeKind(top.open, close.Slice)
	enc := &ast.Enclosure{
		Kind:     kind,
		Open:     top.open,
		Close:    close.Slice,
		HasClose: true,
		Children: top.children,
		Range:    position.Span(top.openRange.Start, close.Range.End),
	}
	if !ok {
		enc.Kind = ast.ErrorEnclosure
	}

	parent := &stack[len(stack)-1]
	parent.addChild(enc)
	return stack
}

// drainAll closes every frame still open at EOF, innermost first, nesting
// each as an Error enclosure inside its parent so the result stays a proper
// tree instead of a flat list of siblings.
func drainAll(stack []frame, end position.Position) []ast.Node {
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		enc := &ast.Enclosure{
			Kind:     ast.ErrorEnclosure,
			Open:     top.open,
			HasClose: false,
			Children: top.children,
			Range:    position.Span(top.openRange.Start, end),
		}
		parent := &stack[len(stack)-1]
		parent.addChild(enc)
	}
	return stack[0].children
}

// endOfInput returns the position just past the last character of source,
// falling back to the zero position for empty input.
func endOfInput(source string, words []lex.Word) position.Position {
	if len(words) == 0 {
		return position.Position{}
	}
	return words[len(words)-1].Range.End
}
