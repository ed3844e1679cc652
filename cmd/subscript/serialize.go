package main

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/subscript-lang/subscript/ast"
)

// serializeAll renders a sequence of canonicalized nodes to an HTML
// fragment, the collaborator §1 scopes out of the core: the core produces
// trees, this turns a tree into bytes.
func serializeAll(nodes []ast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		serializeOne(&b, n)
	}
	return b.String()
}

// serializeTag renders a single Tag (the TOC root, e.g.) to an HTML
// fragment.
func serializeTag(tag *ast.Tag) string {
	var b strings.Builder
	serializeOne(&b, tag)
	return b.String()
}

func serializeOne(b *strings.Builder, n ast.Node) {
	switch v := n.(type) {
	case *ast.Tag:
		b.WriteString("<")
		b.WriteString(v.Name)
		for _, p := range v.Parameters {
			writeAttribute(b, p)
		}
		b.WriteString(">")
		for _, c := range v.Children {
			serializeOne(b, c)
		}
		b.WriteString("</")
		b.WriteString(v.Name)
		b.WriteString(">")
	case *ast.Enclosure:
		b.WriteString(v.Open)
		for _, c := range v.Children {
			serializeOne(b, c)
		}
		if v.HasClose {
			b.WriteString(v.Close)
		}
	case *ast.String:
		b.WriteString(html.EscapeString(v.Text))
	case *ast.Ident:
		b.WriteString(html.EscapeString(`\` + v.Name))
	case *ast.InvalidToken:
		b.WriteString(html.EscapeString(v.Text))
	}
}

// writeAttribute turns a "key=value" parameter String into a rendered
// ` key="value"` HTML attribute. A value's leading/trailing single or
// double quotes are trimmed once before emission, per §6; whitespace
// inside the value is left alone. A parameter with no "=" is emitted as a
// bare boolean attribute.
func writeAttribute(b *strings.Builder, p ast.Node) {
	s, ok := p.(*ast.String)
	if !ok {
		return
	}
	key, value, hasValue := strings.Cut(s.Text, "=")
	if !hasValue {
		b.WriteString(" ")
		b.WriteString(key)
		return
	}
	value = trimOneQuote(value)
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}

// trimOneQuote removes one matching leading/trailing single or double quote
// pair, if present; it does not re-escape whatever whitespace is left.
func trimOneQuote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
