// Package lex turns raw source text into the word stream the parser
// consumes. It is the only layer that looks at individual characters; every
// later phase only ever sees Word values.
package lex

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/subscript-lang/subscript/position"
)

// Character is a single grapheme cluster and the range it occupies.
type Character struct {
	Range position.Range
	Glyph string
}

// IsWhitespace reports whether the character's glyph is whitespace.
func (c Character) IsWhitespace() bool {
	for _, r := range c.Glyph {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return c.Glyph != ""
}

// breakChars terminate a word run and are always emitted as their own
// one-glyph word, per spec.md section 4.2.
var breakChars = map[string]bool{
	`\`: true, `{`: true, `}`: true, `[`: true, `]`: true,
	`(`: true, `)`: true, `=`: true, `>`: true, `_`: true,
	`.`: true, `^`: true,
}

func isBreak(glyph string) bool {
	return breakChars[glyph]
}

// IsBreakWord reports whether slice is one of the single-glyph break
// characters that terminates a word run. Used by the parser to tell an
// identifier name apart from a delimiter it should not have swallowed.
func IsBreakWord(slice string) bool {
	return breakChars[slice]
}

// Characters grapheme-iterates source into a flat Character slice. The
// final character's range end is always the total byte length of source.
func Characters(source string) []Character {
	var chars []Character
	byteIndex, charIndex := 0, 0
	state := -1
	remaining := source
	for len(remaining) > 0 {
		var glyph string
		var nextState int
		glyph, remaining, _, nextState = uniseg.FirstGraphemeClusterInString(remaining, state)
		state = nextState
		start := position.Position{Byte: byteIndex, Char: charIndex}
		byteIndex += len(glyph)
		charIndex++
		end := position.Position{Byte: byteIndex, Char: charIndex}
		chars = append(chars, Character{
			Range: position.Span(start, end),
			Glyph: glyph,
		})
	}
	return chars
}

// Word is either a single break/whitespace character or a maximal run of
// characters that are neither.
type Word struct {
	Range position.Range
	Slice string
}

// IsWhitespace reports whether the word is a single whitespace glyph.
func (w Word) IsWhitespace() bool {
	if w.Slice == "" {
		return false
	}
	for _, r := range w.Slice {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Words folds a Character sequence into Word runs. Empty input yields no
// words.
func Words(source string, chars []Character) []Word {
	var words []Word
	i := 0
	for i < len(chars) {
		c := chars[i]
		if isBreak(c.Glyph) || c.IsWhitespace() {
			words = append(words, Word{Range: c.Range, Slice: c.Glyph})
			i++
			continue
		}
		start := i
		for i < len(chars) && !isBreak(chars[i].Glyph) && !chars[i].IsWhitespace() {
			i++
		}
		run := chars[start:i]
		span := position.Span(run[0].Range.Start, run[len(run)-1].Range.End)
		words = append(words, Word{Range: span, Slice: span.Slice(source)})
	}
	return words
}

// Scan is the entry point: grapheme-iterate then fold into words in one
// call.
func Scan(source string) []Word {
	return Words(source, Characters(source))
}
