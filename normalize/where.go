package normalize

import (
	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/subscripterr"
)

// BindWhereRules scans every sibling list in nodes for tags named "!where"
// and drains each one's body into rewrite rules attached to the nearest
// tag sibling before it (non-tag siblings in between are skipped), removing the !where node once its body is fully
// consumed. A !where with no preceding tag is left untouched; one whose
// body only partially parses keeps whatever triples it could not parse as
// its remaining children, so the malformed fragment stays visible in the
// tree instead of vanishing.
func BindWhereRules(nodes []ast.Node) []ast.Node {
	return BindWhereRulesDiagnosed(nodes, nil)
}

// BindWhereRulesDiagnosed is BindWhereRules plus side-channel reporting: an
// unbound !where (no preceding tag) or a !where with leftover unparsed
// triples is also recorded in bag, for tooling that wants a flat
// diagnostic list instead of walking the tree for the markers this pass
// already leaves behind (the retained !where node, the leftover children).
func BindWhereRulesDiagnosed(nodes []ast.Node, bag *subscripterr.Bag) []ast.Node {
	return ast.TransformChildren(nodes, func(children []ast.Node) []ast.Node {
		return bindWhereInList(children, bag)
	})
}

func bindWhereInList(children []ast.Node, bag *subscripterr.Bag) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	for _, n := range children {
		tag, ok := n.(*ast.Tag)
		if !ok || tag.Name != "!where" {
			out = append(out, n)
			continue
		}

		prevIdx := lastTagIndex(out)
		if prevIdx == -1 {
			bag.Add(subscripterr.New(subscripterr.TypeUnboundWhere,
				"!where has no preceding tag to attach its rules to", tag.Range))
			out = append(out, n)
			continue
		}

		rules, leftover := parseWhereBody(flattenBody(tag.Children))
		prevTag := out[prevIdx].(*ast.Tag)
		prevTag.RewriteRules = append(prevTag.RewriteRules, rules...)

		if len(leftover) == 0 {
			continue
		}
		bag.Add(subscripterr.New(subscripterr.TypeMalformedRewriteRule,
			"!where body contains content that does not parse as a {from} => {to} triple", tag.Range))
		out = append(out, &ast.Tag{
			Name:         tag.Name,
			Parameters:   tag.Parameters,
			Children:     leftover,
			RewriteRules: tag.RewriteRules,
			Range:        tag.Range,
		})
	}
	return out
}

// flattenBody unwraps a tag's curly-brace body children by one level, the
// same way canonicalization's flattening does for ordinary tags, so a
// !where written as `\!where{{a} => {b}}` exposes its triples directly
// instead of hiding them behind the single outer CurlyBrace promotion
// wraps every body in.
func flattenBody(children []ast.Node) []ast.Node {
	var out []ast.Node
	for _, c := range children {
		if enc, ok := c.(*ast.Enclosure); ok && enc.Kind == ast.CurlyBrace {
			out = append(out, enc.Children...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func lastTagIndex(nodes []ast.Node) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if _, ok := nodes[i].(*ast.Tag); ok {
			return i
		}
	}
	return -1
}

// parseWhereBody walks a !where tag's body looking for `{from} => {to}`
// triples. A triple that fails to match at some position contributes its
// leading node to leftover and resumes scanning one node later, so one
// malformed triple does not hide the valid ones around it.
func parseWhereBody(children []ast.Node) (rules []ast.RewriteRule, leftover []ast.Node) {
	i := 0
	for i < len(children) {
		from, j, ok := matchCurlyBrace(children, i)
		if !ok {
			leftover = append(leftover, children[i])
			i++
			continue
		}
		j = skipWhitespace(children, j)
		if !matchesArrow(children, j) {
			leftover = append(leftover, children[i])
			i++
			continue
		}
		j += 2
		j = skipWhitespace(children, j)
		to, j, ok := matchCurlyBrace(children, j)
		if !ok {
			leftover = append(leftover, children[i])
			i++
			continue
		}
		rules = append(rules, ast.RewriteRule{From: from, To: to})
		i = j
	}
	return rules, leftover
}

func skipWhitespace(nodes []ast.Node, i int) int {
	for i < len(nodes) {
		s, ok := nodes[i].(*ast.String)
		if !ok || !isWhitespaceText(s.Text) {
			break
		}
		i++
	}
	return i
}

func matchCurlyBrace(nodes []ast.Node, i int) (ast.Node, int, bool) {
	i = skipWhitespace(nodes, i)
	if i >= len(nodes) {
		return nil, i, false
	}
	enc, ok := nodes[i].(*ast.Enclosure)
	if !ok || enc.Kind != ast.CurlyBrace {
		return nil, i, false
	}
	return enc, i + 1, true
}

func matchesArrow(nodes []ast.Node, i int) bool {
	if i+1 >= len(nodes) {
		return false
	}
	a, ok := nodes[i].(*ast.String)
	if !ok || a.Text != "=" {
		return false
	}
	b, ok := nodes[i+1].(*ast.String)
	return ok && b.Text == ">"
}
