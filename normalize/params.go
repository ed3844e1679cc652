package normalize

import (
	"strings"

	"github.com/subscript-lang/subscript/ast"
)

// SplitParameters re-splits every tag's parameter list on whitespace: the
// string leaves of the (already promoted) parameter list are concatenated,
// then re-split on ASCII whitespace into one owned String per non-empty
// token. This is what turns `\img[src=x.png width=10]`, which the parser
// and promotion leave as a run of break-delimited leaves, into a parameter
// list a consumer can read as `key=value` pairs.
func SplitParameters(nodes []ast.Node) []ast.Node {
	return ast.Transform(nodes, ast.Environment{}, func(_ ast.Environment, n ast.Node) ast.Node {
		tag, ok := n.(*ast.Tag)
		if !ok || tag.Parameters == nil {
			return n
		}
		tag.Parameters = splitParameterList(tag.Parameters)
		return tag
	})
}

func splitParameterList(params []ast.Node) []ast.Node {
	var text strings.Builder
	for _, p := range params {
		if s, ok := p.(*ast.String); ok {
			text.WriteString(s.Text)
		}
	}
	fields := strings.Fields(text.String())
	out := make([]ast.Node, len(fields))
	for i, f := range fields {
		out[i] = &ast.String{Text: f}
	}
	return out
}
