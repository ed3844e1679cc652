// Package toc builds a table of contents from a canonicalized tree and
// annotates that tree's headings with stable anchor ids.
package toc

import (
	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/canon"
)

// Heading is a heading tag's kind and linearized text, without the
// HTML-shaped `<ul>`/`<li>`/`<a>` wrapper Build produces. Exposed for
// callers (e.g. a search index) that want headings without building the
// full TOC tree.
type Heading struct {
	Kind string // "h1".."h6"
	Text string
}

type headingInfo struct {
	tag  *ast.Tag
	text string
	id   string
}

// Headings walks a canonicalized tree in document order and returns every
// h1..h6 tag's kind and linearized text. It does not look for headings
// nested inside a heading it already matched.
func Headings(nodes []ast.Node) []Heading {
	var out []Heading
	for _, info := range collectHeadings(nodes) {
		out = append(out, Heading{Kind: info.tag.Name, Text: info.text})
	}
	return out
}

// Build produces the TOC tree: an outer `ul id=toc` whose children are one
// `li type=h{n}` per heading, in document order, each containing an `a
// href=#{id}` whose child is the heading's linearized text. Nesting by
// heading level is not performed.
func Build(nodes []ast.Node) *ast.Tag {
	headings := collectHeadings(nodes)
	items := make([]ast.Node, len(headings))
	for i, info := range headings {
		a := &ast.Tag{
			Name:       "a",
			Parameters: []ast.Node{&ast.String{Text: "href=#" + info.id}},
			Children:   []ast.Node{&ast.String{Text: info.text}},
		}
		items[i] = &ast.Tag{
			Name:       "li",
			Parameters: []ast.Node{&ast.String{Text: "type=" + info.tag.Name}},
			Children:   []ast.Node{a},
		}
	}
	return &ast.Tag{
		Name:       "ul",
		Parameters: []ast.Node{&ast.String{Text: "id=toc"}},
		Children:   items,
	}
}

// Annotate walks nodes bottom-up and adds an `id={synth_id}` parameter to
// every h1..h6 tag, including headings nested inside other tags or inside
// each other — unlike Headings/Build, annotation does not stop descending
// once it finds a heading, since every heading in the tree needs its id
// regardless of nesting.
func Annotate(nodes []ast.Node) []ast.Node {
	return ast.Transform(nodes, ast.Environment{}, func(env ast.Environment, n ast.Node) ast.Node {
		tag, ok := n.(*ast.Tag)
		if !ok || !canon.HeadingTags[tag.Name] {
			return n
		}
		id := synthesizeID(tag)
		tag.Parameters = append(tag.Parameters, &ast.String{Text: "id=" + id})
		return tag
	})
}

func synthesizeID(tag *ast.Tag) string {
	return percentEncode(canon.LinearizeAll(tag.Children))
}

// collectHeadings walks nodes in document order, collecting every h1..h6
// tag without recursing into one it already matched (a heading's own
// children are not searched for further headings).
func collectHeadings(nodes []ast.Node) []headingInfo {
	var out []headingInfo
	for _, n := range nodes {
		out = append(out, collectHeadingsOne(n)...)
	}
	return out
}

func collectHeadingsOne(n ast.Node) []headingInfo {
	switch v := n.(type) {
	case *ast.Tag:
		if canon.HeadingTags[v.Name] {
			text := canon.LinearizeAll(v.Children)
			return []headingInfo{{tag: v, text: text, id: percentEncode(text)}}
		}
		return collectHeadings(v.Children)
	case *ast.Enclosure:
		return collectHeadings(v.Children)
	default:
		return nil
	}
}
