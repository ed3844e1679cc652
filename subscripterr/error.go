// Package subscripterr collects recoverable diagnostics raised by passes
// that keep going after finding something wrong rather than aborting —
// a malformed !where triple, a non-numeric img width — so tooling that
// wants a flat list can have one instead of walking the tree for markers.
package subscripterr

import (
	"fmt"

	"github.com/subscript-lang/subscript/position"
)

// Type discriminates what kind of recoverable oddity a Diagnostic reports.
type Type string

const (
	// TypeMalformedRewriteRule marks a !where triple that didn't parse as
	// `{from} => {to}`.
	TypeMalformedRewriteRule Type = "malformed_rewrite_rule"

	// TypeInvalidImageWidth marks an img tag's width= parameter whose value
	// wasn't numeric.
	TypeInvalidImageWidth Type = "invalid_image_width"

	// TypeUnboundWhere marks a !where tag with no preceding tag sibling to
	// attach its rules to.
	TypeUnboundWhere Type = "unbound_where"
)

// Diagnostic is one recoverable oddity found during normalization or
// canonicalization. It implements error and Unwrap the same way
// org.ParseError does, so callers can use errors.Is/errors.As against a
// wrapped Cause.
type Diagnostic struct {
	Type    Type
	Message string
	Range   position.Range
	Cause   error
}

// New builds a Diagnostic without a wrapped cause.
func New(typ Type, message string, rng position.Range) *Diagnostic {
	return &Diagnostic{Type: typ, Message: message, Range: rng}
}

// Wrap builds a Diagnostic around an underlying error.
func Wrap(typ Type, message string, rng position.Range, cause error) *Diagnostic {
	return &Diagnostic{Type: typ, Message: message, Range: rng, Cause: cause}
}

func (d *Diagnostic) Error() string {
	loc := fmt.Sprintf("%d:%d", d.Range.Start.Char, d.Range.End.Char)
	if d.Cause != nil {
		return fmt.Sprintf("%s at %s: %s: %v", d.Type, loc, d.Message, d.Cause)
	}
	return fmt.Sprintf("%s at %s: %s", d.Type, loc, d.Message)
}

func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// Bag accumulates Diagnostics on the side as passes run. It's not an
// error itself — passes that use it keep producing a tree even when
// Diagnostics pile up, the same way org.Document keeps parsing after
// Document.AddError.
type Bag struct {
	diagnostics []*Diagnostic
}

// Add appends a Diagnostic to the bag. Add is a no-op on a nil *Bag, so
// passes that take an optional bag can be called with one left nil by
// callers that don't care to collect diagnostics.
func (b *Bag) Add(d *Diagnostic) {
	if b == nil {
		return
	}
	b.diagnostics = append(b.diagnostics, d)
}

// All returns every Diagnostic added so far, in order.
func (b *Bag) All() []*Diagnostic {
	return b.diagnostics
}

// Empty reports whether no Diagnostic has been added.
func (b *Bag) Empty() bool {
	return len(b.diagnostics) == 0
}
