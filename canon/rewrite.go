package canon

import "github.com/subscript-lang/subscript/ast"

// rewriteBarrier marks nodes that were spliced in by a rewrite-rule
// replacement, by identity. The final text-merge pass (merge.go) must not
// fuse a replacement node with its neighbors even though both may be
// Strings: the replacement is foreign content, not a continuation of
// whatever surrounded the pattern it replaced.
type rewriteBarrier map[ast.Node]bool

// applyOneRule scans children left to right with a sliding window the width
// of the pattern, replacing each non-overlapping match with the
// replacement's children and marking those replacement nodes in barrier.
// children must already be flattened: a pattern like `{b}` can only match a
// tag's body once the CurlyBrace wrapping promotion left around it has been
// unwrapped, so this always runs after html.go's flatten step, not before.
func applyOneRule(children []ast.Node, rule ast.RewriteRule, barrier rewriteBarrier) []ast.Node {
	fromEnc, ok := rule.From.(*ast.Enclosure)
	if !ok || len(fromEnc.Children) == 0 {
		return children
	}
	pattern := fromEnc.Children

	var replacement []ast.Node
	if toEnc, ok := rule.To.(*ast.Enclosure); ok {
		replacement = toEnc.Children
	}

	out := make([]ast.Node, 0, len(children))
	i := 0
	for i < len(children) {
		if i+len(pattern) <= len(children) && windowMatches(children[i:i+len(pattern)], pattern) {
			for _, r := range replacement {
				barrier[r] = true
			}
			out = append(out, replacement...)
			i += len(pattern)
			continue
		}
		out = append(out, children[i])
		i++
	}
	return out
}

func windowMatches(window, pattern []ast.Node) bool {
	for i := range pattern {
		if !ast.SyntacticallyEqual(window[i], pattern[i]) {
			return false
		}
	}
	return true
}
