package canon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/internal/testhelper"
	"github.com/subscript-lang/subscript/parser"
)

// fuseWhitespace merges every run of adjacent String siblings (text and
// whitespace alike) into one String, recursing into enclosures, so
// round-trip comparisons can ignore where the lexer happened to split text.
func fuseWhitespace(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		if enc, ok := n.(*ast.Enclosure); ok {
			out = append(out, &ast.Enclosure{
				Kind: enc.Kind, Open: enc.Open, Close: enc.Close, HasClose: enc.HasClose,
				Children: fuseWhitespace(enc.Children),
			})
			continue
		}
		s, isStr := n.(*ast.String)
		if isStr && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*ast.String); ok {
				out[len(out)-1] = &ast.String{Text: prev.Text + s.Text}
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func linearizeRoundTrips(t *testing.T, source string) {
	t.Helper()
	first := fuseWhitespace(parser.Parse(source))
	linearized := LinearizeAll(first)
	second := fuseWhitespace(parser.Parse(linearized))

	if len(first) != len(second) {
		diff, _ := testhelper.UnifiedDiff(source, linearized)
		t.Fatalf("round trip changed node count: %d vs %d\n%s", len(first), len(second), diff)
	}
	for i := range first {
		if !ast.SyntacticallyEqual(first[i], second[i]) {
			diff, _ := testhelper.UnifiedDiff(source, linearized)
			t.Fatalf("round trip diverged at node %d\n%s", i, diff)
		}
	}
}

func TestLinearize_RoundTripsPlainText(t *testing.T) {
	linearizeRoundTrips(t, `hello world`)
}

func TestLinearize_RoundTripsTagWithParametersAndBody(t *testing.T) {
	linearizeRoundTrips(t, `\img[src=x.png width=10]{caption}`)
}

func TestLinearize_RoundTripsUnbalancedEnclosure(t *testing.T) {
	linearizeRoundTrips(t, `{unterminated`)
}

func TestLinearize_RoundTripsNestedEnclosures(t *testing.T) {
	linearizeRoundTrips(t, `\foo{\bar{baz}}`)
}
