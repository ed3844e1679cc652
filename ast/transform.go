package ast

// Environment is the stack of ancestor tag names carried by the bottom-up
// walkers, innermost last.
type Environment struct {
	ancestors []string
}

// Push returns a new Environment with name appended as the innermost
// ancestor. The receiver is left unmodified.
func (e Environment) Push(name string) Environment {
	next := make([]string, len(e.ancestors), len(e.ancestors)+1)
	copy(next, e.ancestors)
	next = append(next, name)
	return Environment{ancestors: next}
}

// Ancestors returns the ancestor tag names from root to innermost.
func (e Environment) Ancestors() []string {
	return e.ancestors
}

// InlineMathTag is the sentinel tag name Environment.InMath always treats
// as math, regardless of the caller-supplied blockMathTags set.
const InlineMathTag = "[inline-math]"

// InMath reports whether any ancestor in e is the inline math tag or one of
// blockMathTags.
func (e Environment) InMath(blockMathTags map[string]bool) bool {
	for _, name := range e.ancestors {
		if name == InlineMathTag || blockMathTags[name] {
			return true
		}
	}
	return false
}

// Visitor is invoked once per node, after its children (and, for a Tag, its
// rewrite rules) have already been transformed. The returned Node replaces
// the visited one.
type Visitor func(env Environment, n Node) Node

// Transform performs a pure bottom-up node-to-node map over nodes, passing
// each visited node's ambient Environment (the ancestor tag stack) to
// visit.
func Transform(nodes []Node, env Environment, visit Visitor) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = transformOne(n, env, visit)
	}
	return out
}

func transformOne(n Node, env Environment, visit Visitor) Node {
	switch v := n.(type) {
	case *Tag:
		childEnv := env.Push(v.Name)
		var params []Node
		if v.Parameters != nil {
			params = Transform(v.Parameters, childEnv, visit)
		}
		children := Transform(v.Children, childEnv, visit)
		rules := make([]RewriteRule, len(v.RewriteRules))
		for i, rule := range v.RewriteRules {
			rules[i] = RewriteRule{
				From: transformOne(rule.From, childEnv, visit),
				To:   transformOne(rule.To, childEnv, visit),
			}
		}
		next := &Tag{
			Name:         v.Name,
			Parameters:   params,
			Children:     children,
			RewriteRules: rules,
			Range:        v.Range,
		}
		return visit(env, next)
	case *Enclosure:
		children := Transform(v.Children, env, visit)
		next := &Enclosure{
			Kind:     v.Kind,
			Open:     v.Open,
			Close:    v.Close,
			HasClose: v.HasClose,
			Children: children,
			Range:    v.Range,
		}
		return visit(env, next)
	default:
		return visit(env, n)
	}
}

// ChildListVisitor rewrites a whole child sequence at once, rather than
// visiting individual nodes. Used for passes that merge or splice siblings
// (text merging, pattern expansion) where the replacement for one child can
// depend on its neighbors.
type ChildListVisitor func(children []Node) []Node

// TransformChildren applies visit bottom-up to every enclosure/tag child
// list in nodes, then once more to nodes itself (as the root child list).
func TransformChildren(nodes []Node, visit ChildListVisitor) []Node {
	rewritten := make([]Node, len(nodes))
	for i, n := range nodes {
		rewritten[i] = transformChildrenOne(n, visit)
	}
	return visit(rewritten)
}

func transformChildrenOne(n Node, visit ChildListVisitor) Node {
	switch v := n.(type) {
	case *Tag:
		var params []Node
		if v.Parameters != nil {
			params = TransformChildren(v.Parameters, visit)
		}
		children := TransformChildren(v.Children, visit)
		rules := make([]RewriteRule, len(v.RewriteRules))
		for i, rule := range v.RewriteRules {
			rules[i] = RewriteRule{
				From: transformChildrenOne(rule.From, visit),
				To:   transformChildrenOne(rule.To, visit),
			}
		}
		return &Tag{
			Name:         v.Name,
			Parameters:   params,
			Children:     children,
			RewriteRules: rules,
			Range:        v.Range,
		}
	case *Enclosure:
		children := TransformChildren(v.Children, visit)
		return &Enclosure{
			Kind:     v.Kind,
			Open:     v.Open,
			Close:    v.Close,
			HasClose: v.HasClose,
			Children: children,
			Range:    v.Range,
		}
	default:
		return n
	}
}
