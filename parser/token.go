package parser

import "github.com/subscript-lang/subscript/ast"

// openKind maps an opening delimiter's lexeme to the enclosure kind it
// starts, and reports whether the lexeme opens anything at all.
func openKind(slice string) (ast.EnclosureKind, bool) {
	switch slice {
	case "{":
		return ast.CurlyBrace, true
	case "[":
		return ast.SquareParen, true
	case "(":
		return ast.Parens, true
	default:
		return 0, false
	}
}

// closeKind reports whether closeSlice is the closing delimiter for the
// enclosure kind opened by openSlice. A mismatched pair (e.g. "{" closed by
// ")") still closes the frame, just as an Error enclosure instead of the
// kind openSlice would otherwise produce.
func closeKind(openSlice, closeSlice string) (ast.EnclosureKind, bool) {
	want, ok := openKind(openSlice)
	if !ok {
		return ast.ErrorEnclosure, false
	}
	matches := (openSlice == "{" && closeSlice == "}") ||
		(openSlice == "[" && closeSlice == "]") ||
		(openSlice == "(" && closeSlice == ")")
	if !matches {
		return ast.ErrorEnclosure, false
	}
	return want, true
}

// isCloseDelimiter reports whether slice is one of the three closing
// brackets the parser tracks.
func isCloseDelimiter(slice string) bool {
	switch slice {
	case "}", "]", ")":
		return true
	default:
		return false
	}
}
