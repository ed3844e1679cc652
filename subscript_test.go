package subscript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/internal/config"
)

func TestCompile_BuildsTOCAndAnnotatesBody(t *testing.T) {
	doc := Compile(`\h1{Hello world}`, config.Default().Silent())

	require.Equal(t, "ul", doc.TOCTree.Name)
	require.Len(t, doc.TOCTree.Children, 1)

	require.Len(t, doc.BodyTree, 1)
	heading, ok := doc.BodyTree[0].(*ast.Tag)
	require.True(t, ok)
	require.Equal(t, "h1", heading.Name)

	found := false
	for _, p := range heading.Parameters {
		if s, ok := p.(*ast.String); ok && s.Text == "id=Hello%20world" {
			found = true
		}
	}
	require.True(t, found)
}

func TestCompile_CollectsDiagnosticsWithoutFailing(t *testing.T) {
	doc := Compile(`\img[src=x.png width=huge]`, config.Default().Silent())
	require.Len(t, doc.BodyTree, 1)
	require.Len(t, doc.Diagnostics, 1)
	require.Equal(t, "invalid_image_width", string(doc.Diagnostics[0].Type))
}

func TestHighlight_ReturnsRecordsWithoutNormalizing(t *testing.T) {
	highlights := Highlight(`\foo{bar}`)
	require.Len(t, highlights, 2)
}

func TestParse_ReturnsPreNormalizedTree(t *testing.T) {
	nodes := Parse(`\h1{Hello}`)
	require.Len(t, nodes, 2)
	_, isIdent := nodes[0].(*ast.Ident)
	require.True(t, isIdent)
}
