package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/subscript-lang/subscript/position"
)

// ignoreRanges drops every node variant's Range field from a go-cmp
// comparison, so a whole-tree diff can assert structural equality the same
// way SyntacticallyEqual does: without caring where in the source (or
// whether at all) each node came from.
var ignoreRanges = cmp.Options{
	cmpopts.IgnoreFields(Tag{}, "Range"),
	cmpopts.IgnoreFields(Enclosure{}, "Range"),
	cmpopts.IgnoreFields(Ident{}, "Range"),
	cmpopts.IgnoreFields(String{}, "Range"),
	cmpopts.IgnoreFields(InvalidToken{}, "Range"),
	// Transform always allocates a RewriteRules slice (even a nil input
	// yields a zero-length one), so nil and empty must compare equal here.
	cmpopts.EquateEmpty(),
}

func sampleTree(startByte int) []Node {
	return []Node{
		&Tag{
			Name:       "img",
			Parameters: []Node{&String{Text: "src=x.png", Range: position.Span(position.Position{Byte: startByte}, position.Position{Byte: startByte + 1})}},
			Children: []Node{
				&Enclosure{Kind: CurlyBrace, Open: "{", Close: "}", HasClose: true, Children: []Node{
					&String{Text: "caption"},
				}},
			},
		},
		&Ident{Name: "note"},
		&InvalidToken{Text: "}"},
	}
}

func TestTransform_IdentityVisitorPreservesTreeStructurally(t *testing.T) {
	before := sampleTree(0)
	identity := func(_ Environment, n Node) Node { return n }
	after := Transform(before, Environment{}, identity)

	if diff := cmp.Diff(before, after, ignoreRanges); diff != "" {
		t.Fatalf("identity transform changed tree (-before +after):\n%s", diff)
	}
}

func TestSyntacticallyEqual_AgreesWithStructuralDiff(t *testing.T) {
	a := sampleTree(0)
	b := sampleTree(100) // same shape, disjoint source ranges

	require.Empty(t, cmp.Diff(a, b, ignoreRanges))
	for i := range a {
		require.True(t, SyntacticallyEqual(a[i], b[i]))
	}
}

func TestSyntacticallyEqual_DetectsStructuralDifference(t *testing.T) {
	a := sampleTree(0)
	b := sampleTree(0)
	b[0].(*Tag).Name = "video"

	require.NotEmpty(t, cmp.Diff(a, b, ignoreRanges))
	require.False(t, SyntacticallyEqual(a[0], b[0]))
}

func TestTransform_RewritingVisitorProducesExpectedTree(t *testing.T) {
	before := []Node{&Tag{Name: "note", Children: []Node{&String{Text: "hi"}}}}
	rename := func(_ Environment, n Node) Node {
		if tag, ok := n.(*Tag); ok && tag.Name == "note" {
			return &Tag{Name: "div", Children: tag.Children}
		}
		return n
	}
	after := Transform(before, Environment{}, rename)

	want := []Node{&Tag{Name: "div", Children: []Node{&String{Text: "hi"}}}}
	if diff := cmp.Diff(want, after, ignoreRanges); diff != "" {
		t.Fatalf("unexpected tree after rewrite (-want +got):\n%s", diff)
	}
}
