package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subscript-lang/subscript/ast"
)

// coverage reports whether the ranges of nodes, concatenated in order,
// exactly cover [0, len(source)) with no gaps or overlaps. Nested ranges are
// not re-checked here: each node's own Pos() already spans its children.
func coverage(t *testing.T, source string, nodes []ast.Node) {
	t.Helper()
	pos := 0
	for _, n := range nodes {
		r := n.Pos()
		require.Equal(t, pos, r.Start.Byte, "gap or overlap before node %#v", n)
		pos = r.End.Byte
	}
	require.Equal(t, len(source), pos, "trailing bytes not covered")
}

func TestParse_Empty(t *testing.T) {
	nodes := Parse("")
	require.Empty(t, nodes)
}

func TestParse_PlainText(t *testing.T) {
	nodes := Parse("hello world")
	coverage(t, "hello world", nodes)
	require.Len(t, nodes, 3)
	require.IsType(t, &ast.String{}, nodes[0])
	require.Equal(t, "hello", nodes[0].(*ast.String).Text)
	require.Equal(t, " ", nodes[1].(*ast.String).Text)
	require.Equal(t, "world", nodes[2].(*ast.String).Text)
}

func TestParse_Identifier(t *testing.T) {
	nodes := Parse(`\foo`)
	coverage(t, `\foo`, nodes)
	require.Len(t, nodes, 1)
	id, ok := nodes[0].(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "foo", id.Name)
}

func TestParse_IdentifierAbsorbsInterveningWhitespace(t *testing.T) {
	nodes := Parse("\\  foo")
	coverage(t, "\\  foo", nodes)
	require.Len(t, nodes, 1)
	id, ok := nodes[0].(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "foo", id.Name)
	require.Equal(t, 0, id.Range.Start.Byte)
	require.Equal(t, len("\\  foo"), id.Range.End.Byte)
}

func TestParse_BackslashAloneIsString(t *testing.T) {
	nodes := Parse(`\`)
	coverage(t, `\`, nodes)
	require.Len(t, nodes, 1)
	require.IsType(t, &ast.String{}, nodes[0])
	require.Equal(t, `\`, nodes[0].(*ast.String).Text)
}

func TestParse_BackslashBeforeBreakCharIsString(t *testing.T) {
	nodes := Parse(`\}`)
	coverage(t, `\}`, nodes)
	require.Len(t, nodes, 2)
	require.IsType(t, &ast.String{}, nodes[0])
	require.Equal(t, `\`, nodes[0].(*ast.String).Text)
	require.IsType(t, &ast.InvalidToken{}, nodes[1])
}

func TestParse_InlineMath(t *testing.T) {
	nodes := Parse(`\{x}`)
	coverage(t, `\{x}`, nodes)
	require.Len(t, nodes, 2)

	ident, ok := nodes[0].(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, ast.InlineMathTag, ident.Name)
	require.Equal(t, 0, ident.Range.Start.Byte)
	require.Equal(t, 1, ident.Range.End.Byte)

	enc, ok := nodes[1].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.CurlyBrace, enc.Kind)
	require.True(t, enc.HasClose)
	require.Len(t, enc.Children, 1)
}

func TestParse_MatchedEnclosure(t *testing.T) {
	nodes := Parse(`{hi}`)
	coverage(t, `{hi}`, nodes)
	require.Len(t, nodes, 1)
	enc, ok := nodes[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.CurlyBrace, enc.Kind)
	require.Equal(t, "{", enc.Open)
	require.Equal(t, "}", enc.Close)
	require.True(t, enc.HasClose)
	require.Len(t, enc.Children, 1)
}

func TestParse_MismatchedDelimiterYieldsErrorEnclosure(t *testing.T) {
	nodes := Parse(`{hi)`)
	coverage(t, `{hi)`, nodes)
	require.Len(t, nodes, 1)
	enc, ok := nodes[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.ErrorEnclosure, enc.Kind)
	require.Equal(t, "{", enc.Open)
	require.Equal(t, ")", enc.Close)
	require.True(t, enc.HasClose)
}

func TestParse_OrphanCloseIsInvalidToken(t *testing.T) {
	nodes := Parse(`hi}`)
	coverage(t, `hi}`, nodes)
	require.Len(t, nodes, 2)
	require.IsType(t, &ast.String{}, nodes[0])
	invalid, ok := nodes[1].(*ast.InvalidToken)
	require.True(t, ok)
	require.Equal(t, "}", invalid.Text)
}

func TestParse_UnterminatedEnclosureDrainsToError(t *testing.T) {
	nodes := Parse(`{hi`)
	coverage(t, `{hi`, nodes)
	require.Len(t, nodes, 1)
	enc, ok := nodes[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.ErrorEnclosure, enc.Kind)
	require.False(t, enc.HasClose)
	require.Len(t, enc.Children, 1)
	require.Equal(t, len(`{hi`), enc.Range.End.Byte)
}

func TestParse_NestedUnterminatedEnclosuresStayNested(t *testing.T) {
	nodes := Parse(`{[hi`)
	coverage(t, `{[hi`, nodes)
	require.Len(t, nodes, 1)

	outer, ok := nodes[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.ErrorEnclosure, outer.Kind)
	require.Equal(t, "{", outer.Open)
	require.False(t, outer.HasClose)
	require.Len(t, outer.Children, 1)

	inner, ok := outer.Children[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.ErrorEnclosure, inner.Kind)
	require.Equal(t, "[", inner.Open)
	require.False(t, inner.HasClose)
	require.Len(t, inner.Children, 1)
}

func TestParse_NestedEnclosures(t *testing.T) {
	nodes := Parse(`{[a]b}`)
	coverage(t, `{[a]b}`, nodes)
	require.Len(t, nodes, 1)

	outer, ok := nodes[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.CurlyBrace, outer.Kind)
	require.Len(t, outer.Children, 2)

	inner, ok := outer.Children[0].(*ast.Enclosure)
	require.True(t, ok)
	require.Equal(t, ast.SquareParen, inner.Kind)
	require.Len(t, inner.Children, 1)
}
