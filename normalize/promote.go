// Package normalize turns a raw parse tree into the normalized tree
// canonicalization expects: identifiers followed by brackets promoted into
// Tag calls, !where siblings bound onto the rewrite rules of the tag before
// them, and tag parameter lists re-split on whitespace.
package normalize

import (
	"unicode"

	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/position"
	"github.com/subscript-lang/subscript/subscripterr"
)

// Normalize runs the three sub-passes in the order they must run in:
// promotion first (it is the only pass that creates Tag nodes), then
// !where binding (which needs Tag siblings to attach rules to), then
// parameter splitting (which needs final Tag.Parameters lists).
func Normalize(nodes []ast.Node) []ast.Node {
	return NormalizeDiagnosed(nodes, nil)
}

// NormalizeDiagnosed is Normalize plus a diagnostic bag threaded through to
// the sub-passes that can encounter recoverable oddities. Pass nil to
// discard diagnostics, the same as Normalize.
func NormalizeDiagnosed(nodes []ast.Node, bag *subscripterr.Bag) []ast.Node {
	nodes = Promote(nodes)
	nodes = BindWhereRulesDiagnosed(nodes, bag)
	nodes = SplitParameters(nodes)
	return nodes
}

// Promote implements the promotion sub-pass: an Ident followed by a
// SquareParen enclosure becomes a parameterized Tag, an Ident or Tag
// followed by a CurlyBrace enclosure gains that brace as a body. Everything
// else passes through after its own children are recursively promoted.
// InvalidToken is coerced to String here, per the parser/normalization
// boundary: invalid tokens are only ever interesting to the highlighter,
// which runs on the pre-normalized tree directly.
func Promote(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		enc, isEnclosure := n.(*ast.Enclosure)
		if isEnclosure && enc.Kind == ast.SquareParen {
			if i := lastNonWhitespace(out); i != -1 {
				if ident, ok := out[i].(*ast.Ident); ok {
					out[i] = &ast.Tag{
						Name:       ident.Name,
						Parameters: Promote(enc.Children),
						Range:      position.Span(ident.Range.Start, enc.Range.End),
					}
					continue
				}
			}
			out = append(out, promoteOther(n))
			continue
		}
		if isEnclosure && enc.Kind == ast.CurlyBrace {
			if i := lastNonWhitespace(out); i != -1 {
				body := &ast.Enclosure{
					Kind:     ast.CurlyBrace,
					Open:     enc.Open,
					Close:    enc.Close,
					HasClose: enc.HasClose,
					Children: Promote(enc.Children),
					Range:    enc.Range,
				}
				switch sibling := out[i].(type) {
				case *ast.Ident:
					out[i] = &ast.Tag{
						Name:     sibling.Name,
						Children: []ast.Node{body},
						Range:    position.Span(sibling.Range.Start, enc.Range.End),
					}
					continue
				case *ast.Tag:
					sibling.Children = append(sibling.Children, body)
					sibling.Range = position.Span(sibling.Range.Start, enc.Range.End)
					continue
				}
			}
			out = append(out, promoteOther(n))
			continue
		}
		out = append(out, promoteOther(n))
	}
	return out
}

// promoteOther recursively promotes the children of a node that is not
// itself being spliced into a preceding sibling.
func promoteOther(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.InvalidToken:
		return &ast.String{Text: v.Text, Range: v.Range}
	case *ast.Enclosure:
		return &ast.Enclosure{
			Kind:     v.Kind,
			Open:     v.Open,
			Close:    v.Close,
			HasClose: v.HasClose,
			Children: Promote(v.Children),
			Range:    v.Range,
		}
	default:
		return n
	}
}

// lastNonWhitespace returns the index of the last element of nodes that is
// not a whitespace-only String, or -1 if there is none. Whitespace between
// an identifier and its bracket does not prevent promotion; it is simply
// left in place as a trailing sibling of the promoted Tag.
func lastNonWhitespace(nodes []ast.Node) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if s, ok := nodes[i].(*ast.String); ok && isWhitespaceText(s.Text) {
			continue
		}
		return i
	}
	return -1
}

func isWhitespaceText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
