// Package highlight walks a raw parse tree (the parser's direct output,
// before any normalization) and emits one syntax-highlighting record per
// enclosure open, identifier, and invalid token, in document order.
package highlight

import (
	"unicode"

	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/position"
)

// Kind discriminates what a Highlight describes.
type Kind int

const (
	CurlyBrace Kind = iota
	SquareParen
	Parens
	Fragment
	Error
	Ident
	InvalidToken
)

// Highlight is one emitted record. Name holds the identifier name for an
// Ident highlight or the literal text for an InvalidToken highlight, and is
// empty otherwise. Open/Close record the delimiters actually seen for an
// Error highlight (Close is empty when the enclosure never closed).
type Highlight struct {
	Range   position.Range
	Kind    Kind
	Name    string
	Open    string
	Close   string
	Binder  string
	Nesting []string
}

// Walk emits one Highlight per enclosure open, identifier, and invalid
// token in nodes, in document order. nodes is the raw parser output — this
// never runs on a normalized tree, since normalization has already erased
// the Ident/Tag distinction and the InvalidToken/String distinction this
// depends on.
//
// The root node list is treated as an implicit Fragment enclosure, per
// spec: its own Fragment highlight is elided (one would cover the whole
// file), but its children still see an empty starting nesting stack and
// binder.
func Walk(nodes []ast.Node) []Highlight {
	var out []Highlight
	walkList(nodes, "", nil, &out)
	return out
}

func walkList(nodes []ast.Node, binder string, nesting []string, out *[]Highlight) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *ast.Ident:
			*out = append(*out, Highlight{
				Range:   v.Range,
				Kind:    Ident,
				Name:    v.Name,
				Binder:  binder,
				Nesting: nesting,
			})
			binder = v.Name
		case *ast.Enclosure:
			kind, isError := enclosureKind(v.Kind)
			h := Highlight{
				Range:   openDelimiterRange(v),
				Kind:    kind,
				Binder:  binder,
				Nesting: nesting,
			}
			if isError {
				h.Open = v.Open
				if v.HasClose {
					h.Close = v.Close
				}
			}
			*out = append(*out, h)
			walkList(v.Children, "", append(append([]string{}, nesting...), binder), out)
		case *ast.InvalidToken:
			*out = append(*out, Highlight{
				Range:   v.Range,
				Kind:    InvalidToken,
				Name:    v.Text,
				Binder:  binder,
				Nesting: nesting,
			})
		case *ast.String:
			if !isWhitespaceText(v.Text) {
				binder = ""
			}
		}
	}
}

func enclosureKind(k ast.EnclosureKind) (kind Kind, isError bool) {
	switch k {
	case ast.CurlyBrace:
		return CurlyBrace, false
	case ast.SquareParen:
		return SquareParen, false
	case ast.Parens:
		return Parens, false
	case ast.Fragment:
		return Fragment, false
	default:
		return Error, true
	}
}

// openDelimiterRange returns the range of just the open delimiter, not the
// whole enclosure: every open lexeme the parser produces (`{`, `[`, `(`) is
// a single ASCII byte/character, so its range is always exactly one
// position past the enclosure's own start.
func openDelimiterRange(e *ast.Enclosure) position.Range {
	start := e.Range.Start
	end := position.Position{Byte: start.Byte + len(e.Open), Char: start.Char + len(e.Open)}
	return position.Span(start, end)
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
