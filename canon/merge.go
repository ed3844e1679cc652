package canon

import (
	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/position"
)

// mergeText coalesces adjacent String siblings into one owned String, once
// per enclosure/tag child list, after every node-level rewrite and math
// collapse has run. barrier excludes a rewrite rule's replacement nodes from
// this coalescing: splicing `{Z}` in for `{b}` inside `\foo{a b c}` must
// leave `Z` standing apart from the surrounding " " runs it replaced, not
// fused into one "a Z c" string, so the pieces on either side of a
// replacement still merge with each other but never across it. Tag
// parameter lists are left as they are: each parameter stays its own String.
func mergeText(nodes []ast.Node, barrier rewriteBarrier) []ast.Node {
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		switch v := n.(type) {
		case *ast.Tag:
			out[i] = &ast.Tag{Name: v.Name, Parameters: v.Parameters, Children: mergeText(v.Children, barrier),
				RewriteRules: v.RewriteRules, Range: v.Range}
		case *ast.Enclosure:
			out[i] = &ast.Enclosure{Kind: v.Kind, Open: v.Open, Close: v.Close, HasClose: v.HasClose,
				Children: mergeText(v.Children, barrier), Range: v.Range}
		default:
			out[i] = n
		}
	}
	return mergeAdjacentStrings(out, barrier)
}

func mergeAdjacentStrings(children []ast.Node, barrier rewriteBarrier) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	for _, c := range children {
		s, ok := c.(*ast.String)
		if !ok || barrier[c] {
			out = append(out, c)
			continue
		}
		if len(out) > 0 && !barrier[out[len(out)-1]] {
			if prev, ok := out[len(out)-1].(*ast.String); ok {
				out[len(out)-1] = &ast.String{
					Text:  prev.Text + s.Text,
					Range: position.Span(prev.Range.Start, s.Range.End),
				}
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
