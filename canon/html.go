package canon

import (
	"strconv"
	"strings"

	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/subscripterr"
)

// canonicalizeTag returns the combined bottom-up visitor that flattens a
// tag's CurlyBrace-wrapped body, applies its rewrite rules, and renames it,
// in that order, for every tag in the tree (math tags included — their own
// top-level body gets flattened here too, same as any other tag, since the
// math environment only starts at their *descendants*; math.go's collapseMath
// runs afterward and consumes whatever flattened, rewritten children this
// step leaves behind).
//
// Flatten has to run before rewrite: promotion leaves a single-curly-bodied
// tag's Children as one Enclosure wrapping the real content
// (`[Enclosure(CurlyBrace, [...])]`), and a rewrite pattern like `{b}`
// can never match a one-element window whose sole element is an Enclosure.
// Text merging runs later still, as the one pass in merge.go, after
// collapseMath — merging here would fuse a `^` token into its neighbor
// before math linearization ever sees it as a separate node.
func canonicalizeTag(barrier rewriteBarrier, blockMathTags map[string]bool, bag *subscripterr.Bag) ast.Visitor {
	return func(env ast.Environment, n ast.Node) ast.Node {
		tag, ok := n.(*ast.Tag)
		if !ok {
			return n
		}

		if !env.InMath(blockMathTags) {
			tag.Children = flattenOnce(tag.Children)
		}

		for _, rule := range tag.RewriteRules {
			tag.Children = applyOneRule(tag.Children, rule, barrier)
		}
		tag.RewriteRules = nil

		if renamed, ok := htmlRenames[tag.Name]; ok {
			tag.Parameters = append(tag.Parameters, &ast.String{Text: "macro=" + tag.Name})
			tag.Name = renamed
		}

		if tag.Name == "img" {
			if width, ok, rawVal, present := findWidthParamDiagnosed(tag.Parameters); ok {
				tag.Parameters = append(tag.Parameters, &ast.String{Text: "style='width:" + width + ";'"})
			} else if present {
				bag.Add(subscripterr.New(subscripterr.TypeInvalidImageWidth,
					"img width= value \""+rawVal+"\" is not numeric", tag.Range))
			}
		}

		return tag
	}
}

func flattenOnce(children []ast.Node) []ast.Node {
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

// findWidthParamDiagnosed reports (value, true, _, _) when an img's width=
// parameter is numeric, or ("", false, rawValue, true) when a width=
// parameter exists but isn't numeric, so the caller can tell "no width
// parameter at all" apart from "a malformed one" for diagnostic purposes.
func findWidthParamDiagnosed(params []ast.Node) (value string, ok bool, rawVal string, present bool) {
	for _, p := range params {
		s, isStr := p.(*ast.String)
		if !isStr {
			continue
		}
		val, hasPrefix := strings.CutPrefix(s.Text, "width=")
		if !hasPrefix {
			continue
		}
		if !isNumeric(val) {
			return "", false, val, true
		}
		return val, true, "", false
	}
	return "", false, "", false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.Atoi(s); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
