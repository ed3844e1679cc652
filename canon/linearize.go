package canon

import "github.com/subscript-lang/subscript/ast"

// Linearize is the inverse of parsing: a tag becomes `\name` followed by
// its linearized children, an enclosure becomes its delimiters surrounding
// linearized children, an Ident becomes `\` plus its name, and String or
// InvalidToken become their literal text. Fragments concatenate without
// delimiters. Used by TOC heading-id/title synthesis; math linearization
// uses the LaTeX-aware variant in math.go instead.
func Linearize(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Tag:
		return `\` + v.Name + LinearizeAll(v.Children)
	case *ast.Enclosure:
		open, close := enclosureDelims(v)
		return open + LinearizeAll(v.Children) + close
	case *ast.Ident:
		return `\` + v.Name
	case *ast.String:
		return v.Text
	case *ast.InvalidToken:
		return v.Text
	default:
		return ""
	}
}

// LinearizeAll linearizes and concatenates a sibling list in order.
func LinearizeAll(nodes []ast.Node) string {
	var out string
	for _, n := range nodes {
		out += Linearize(n)
	}
	return out
}

func enclosureDelims(e *ast.Enclosure) (open, close string) {
	switch e.Kind {
	case ast.CurlyBrace:
		return "{", closeDelim(e, "}")
	case ast.SquareParen:
		return "[", closeDelim(e, "]")
	case ast.Parens:
		return "(", closeDelim(e, ")")
	case ast.Fragment:
		return "", ""
	default: // ErrorEnclosure: whatever delimiters were actually seen
		return e.Open, closeDelim(e, e.Close)
	}
}

func closeDelim(e *ast.Enclosure, want string) string {
	if !e.HasClose {
		return ""
	}
	return want
}
