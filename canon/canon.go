// Package canon canonicalizes a normalized tree into the HTML-shaped tree
// the renderer and TOC builder consume: rewrite rules applied, markup tag
// names rewritten to HTML equivalents, math bodies linearized to LaTeX, and
// adjacent text runs merged.
package canon

import (
	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/subscripterr"
)

// Canonicalize runs the full pipeline in the order each stage depends on the
// last:
//
//  1. flatten + rewrite + rename, bottom-up, one combined pass per tag
//     (html.go's canonicalizeTag) — flatten has to precede rewrite so a
//     rewrite pattern can match a tag's unwrapped body, and rename doesn't
//     care about ordering relative to either.
//  2. math collapsing, top-down (math.go's collapseMath) — consumes the
//     flattened, rewritten equation/[inline-math] subtrees into linear
//     LaTeX strings, so nothing downstream ever sees them as tags.
//  3. one final text-merge pass (merge.go's mergeText), barrier-aware so a
//     rewrite rule's spliced-in replacement doesn't fuse with its
//     neighbors. This runs last, after math collapsing, because merging
//     earlier would erase the sibling boundaries math linearization
//     depends on (a bare `^` has to stay a distinct node until then).
func Canonicalize(nodes []ast.Node, blockMathTags map[string]bool) []ast.Node {
	return CanonicalizeDiagnosed(nodes, blockMathTags, nil)
}

// CanonicalizeDiagnosed is Canonicalize plus a diagnostic bag threaded
// through to canonicalizeTag, which reports a non-numeric img width= value
// (the tag is left without a synthesized style= parameter, but the
// oddity is also surfaced here instead of only being visible as an absent
// parameter in the tree). Pass nil to discard diagnostics, as Canonicalize
// does.
func CanonicalizeDiagnosed(nodes []ast.Node, blockMathTags map[string]bool, bag *subscripterr.Bag) []ast.Node {
	barrier := rewriteBarrier{}
	nodes = ast.Transform(nodes, ast.Environment{}, canonicalizeTag(barrier, blockMathTags, bag))
	nodes = collapseMath(nodes, blockMathTags)
	nodes = mergeText(nodes, barrier)
	return nodes
}
