package canon

// HeadingTags names the tags §4.7 treats as document headings.
var HeadingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// LatexEnvironmentNames are tag names that, when found nested inside a math
// body, render as `\begin{name}...\end{name}` instead of `\name{...}`.
var LatexEnvironmentNames = map[string]bool{
	"equation": true,
	"split":    true,
}

// DefaultBlockMathTags is the configurable set of tag names math handling
// treats as block (as opposed to inline) math. "equation" is the only
// built-in member; embedders may extend or replace this set.
var DefaultBlockMathTags = map[string]bool{
	"equation": true,
}

// htmlRenames are markup tag names rewritten to an HTML element name plus a
// marker parameter recording the original name.
var htmlRenames = map[string]string{
	"note":   "div",
	"layout": "div",
}
