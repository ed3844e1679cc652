// Package subscript compiles Subscript source — a LaTeX-flavored
// lightweight markup language with embedded math — to an HTML-shaped
// tree pair (table of contents and document body), or exposes its
// pre-normalized parse tree and syntax-highlighting stream to tooling
// that wants those instead.
//
// The core never fails (see subscripterr): recoverable oddities are
// encoded in the tree per the error handling design and also collected
// as Diagnostics for tooling that wants a flat list.
package subscript

import (
	"github.com/subscript-lang/subscript/ast"
	"github.com/subscript-lang/subscript/canon"
	"github.com/subscript-lang/subscript/highlight"
	"github.com/subscript-lang/subscript/internal/config"
	"github.com/subscript-lang/subscript/normalize"
	"github.com/subscript-lang/subscript/parser"
	"github.com/subscript-lang/subscript/subscripterr"
	"github.com/subscript-lang/subscript/toc"
)

// HTMLDocument is the canonical compile pipeline's output: a table of
// contents tree and a body tree, each ready for a serializer collaborator
// to render and substitute into a template.
type HTMLDocument struct {
	TOCTree  *ast.Tag
	BodyTree []ast.Node

	// Diagnostics lists every recoverable oddity found while compiling,
	// in the order the passes that found them ran. Compiling never fails,
	// so this is purely informational.
	Diagnostics []*subscripterr.Diagnostic
}

// Compile runs the canonical pipeline: parse, normalize, canonicalize,
// annotate headings with stable ids, and build the table of contents.
// cfg supplies the compiler-wide knobs (currently just which tag name is
// treated as block math) and the logger non-fatal diagnostics are written
// to; pass config.Default() for the built-in behavior.
func Compile(source string, cfg *config.Config) HTMLDocument {
	bag := &subscripterr.Bag{}

	nodes := parser.Parse(source)
	nodes = normalize.NormalizeDiagnosed(nodes, bag)
	nodes = canon.CanonicalizeDiagnosed(nodes, cfg.BlockMathTags(), bag)

	tocTree := toc.Build(nodes)
	bodyTree := toc.Annotate(nodes)

	for _, d := range bag.All() {
		cfg.Log.Printf("%s", d.Error())
	}

	return HTMLDocument{
		TOCTree:     tocTree,
		BodyTree:    bodyTree,
		Diagnostics: bag.All(),
	}
}

// Highlight bypasses normalization entirely and returns one
// highlight.Highlight per enclosure open, identifier, and invalid token in
// source, in document order — the IDE-facing entry point.
func Highlight(source string) []highlight.Highlight {
	return highlight.Walk(parser.Parse(source))
}

// Parse returns the pre-normalized parse tree, for tooling that wants the
// raw fault-tolerant structure without any of the canonical pipeline's
// promotion, rewrite, or rename passes applied.
func Parse(source string) []ast.Node {
	return parser.Parse(source)
}
