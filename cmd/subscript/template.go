package main

import (
	"strings"
	"text/template"
)

// pageTemplate is the fixed HTML template §6 describes: one substitution
// point for the dependency <head> fragment (which also carries the
// stylesheet link), one for the TOC body, one for the main body.
//
// text/template, not html/template: the TOC and body strings are already
// serialized (and escaped per serializeOne) HTML fragments, not untrusted
// text needing html/template's contextual auto-escaping — re-escaping them
// here would double-escape entities the serializer already produced.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
{{.Head}}
</head>
<body>
<nav class="toc">
{{.TOC}}
</nav>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// headFragment is the dependency fragment substituted into <head>: the
// stylesheet link plus the MathJax dependency the embedded LaTeX (§6)
// needs to render in a browser.
const headFragment = `<link rel="stylesheet" href="subscript.css">
<script src="https://polyfill.io/v3/polyfill.min.js?features=es6"></script>
<script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>`

// renderPage substitutes the head fragment, TOC body, and main body into
// pageTemplate and returns the complete document.
func renderPage(tocHTML, bodyHTML string) (string, error) {
	var b strings.Builder
	err := pageTemplate.Execute(&b, struct {
		Head string
		TOC  string
		Body string
	}{Head: headFragment, TOC: tocHTML, Body: bodyHTML})
	return b.String(), err
}
