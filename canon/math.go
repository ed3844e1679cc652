package canon

import (
	"strings"

	"github.com/subscript-lang/subscript/ast"
)

// collapseMath walks nodes top-down, replacing every block-math tag (any
// name in blockMathTags) or "[inline-math]" tag with a single linearized
// String node. It runs after canonicalizeTag's combined flatten/rewrite/
// rename pass, so both tags already have their own top-level body unwrapped
// out of its CurlyBrace wrapping (flatten applies to a math tag's own body
// exactly like any other tag's — the math environment only starts at its
// descendants) and any rewrite rules already spliced in. It must still run
// before merge.go's text-merge pass: once math content becomes one opaque
// String, a `^` token that was a distinct sibling during linearization can
// never be told apart from its neighbor again, so linearization needs to
// see it standalone.
//
// It does not recurse into a tag it just replaced: mathLinearizeAll walks
// that subtree itself, special-casing nested LatexEnvironmentNames tags as
// `\begin{name}...\end{name}` rather than independently re-collapsing them.
func collapseMath(nodes []ast.Node, blockMathTags map[string]bool) []ast.Node {
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		out[i] = collapseMathOne(n, blockMathTags)
	}
	return out
}

func collapseMathOne(n ast.Node, blockMathTags map[string]bool) ast.Node {
	tag, ok := n.(*ast.Tag)
	if !ok {
		if enc, ok := n.(*ast.Enclosure); ok {
			return &ast.Enclosure{
				Kind:     enc.Kind,
				Open:     enc.Open,
				Close:    enc.Close,
				HasClose: enc.HasClose,
				Children: collapseMath(enc.Children, blockMathTags),
				Range:    enc.Range,
			}
		}
		return n
	}

	switch {
	case blockMathTags[tag.Name]:
		inner := mathLinearizeAll(tag.Children)
		text := `\[\begin{equation}\begin{split}` + inner + `\end{split}\end{equation}\]`
		return &ast.String{Text: text, Range: tag.Range}
	case tag.Name == ast.InlineMathTag:
		inner := mathLinearizeAll(tag.Children)
		return &ast.String{Text: `\(` + inner + `\)`, Range: tag.Range}
	default:
		return &ast.Tag{
			Name:       tag.Name,
			Parameters: collapseMath(tag.Parameters, blockMathTags),
			Children:   collapseMath(tag.Children, blockMathTags),
			Range:      tag.Range,
		}
	}
}

// unblockOnce unwraps direct CurlyBrace children by one level. Used only
// inside math linearization, independent of the ambient (non-math) flatten
// pass: a tag nested inside math never gets that generic flatten (its
// structure needs to stay intact for LatexEnvironmentNames rendering), so
// mathLinearizeOne unwraps a LatexEnvironmentNames tag's curly body itself;
// any other tag keeps its braces.
func unblockOnce(children []ast.Node) []ast.Node {
	var out []ast.Node
	for _, c := range children {
		if enc, ok := c.(*ast.Enclosure); ok && enc.Kind == ast.CurlyBrace {
			out = append(out, enc.Children...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// mathLinearizeAll renders a math body back to LaTeX source text. It
// differs from the general-purpose Linearize in two ways: a tag whose name
// is in LatexEnvironmentNames renders as `\begin{name}...\end{name}`
// instead of `\name{...}`, and a `^` or `_` token immediately followed by a
// bare String sibling braces that sibling (`x^2` linearizes as `x^{2}`) so
// the emitted LaTeX is unambiguous even when the author left the exponent
// or subscript unbraced.
func mathLinearizeAll(nodes []ast.Node) string {
	var b strings.Builder
	i := 0
	for i < len(nodes) {
		if op, ok := nodes[i].(*ast.String); ok && (op.Text == "^" || op.Text == "_") && i+1 < len(nodes) {
			if arg, ok := nodes[i+1].(*ast.String); ok {
				b.WriteString(op.Text)
				b.WriteString("{")
				b.WriteString(arg.Text)
				b.WriteString("}")
				i += 2
				continue
			}
		}
		b.WriteString(mathLinearizeOne(nodes[i]))
		i++
	}
	return b.String()
}

func mathLinearizeOne(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Tag:
		if LatexEnvironmentNames[v.Name] {
			return `\begin{` + v.Name + `}` + mathLinearizeAll(unblockOnce(v.Children)) + `\end{` + v.Name + `}`
		}
		return `\` + v.Name + mathLinearizeAll(v.Children)
	case *ast.Enclosure:
		open, close := enclosureDelims(v)
		return open + mathLinearizeAll(v.Children) + close
	default:
		return Linearize(n)
	}
}
