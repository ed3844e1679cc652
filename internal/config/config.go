// Package config holds the compiler-wide knobs every pass reads from: which
// tag name is treated as block math, and where non-fatal notices get
// logged. Heading tags, LaTeX environment names, and HTML rename targets
// are spec-fixed (§9 calls them compile-time constants) and live as static
// tables in the canon package rather than here.
package config

import (
	"io"
	"log"
	"os"
)

// Config carries the settings shared across every compilation pass. It
// follows go-org's Configuration shape: a struct of named knobs plus a
// *log.Logger for non-fatal notices, built by Default() and handed to
// every pass by the caller rather than read from package-level state.
type Config struct {
	// DefaultBlockMathTag is the tag name, besides "[inline-math]", treated
	// as math by default (spec.md section 3: "the default name is
	// equation").
	DefaultBlockMathTag string

	// Log receives non-fatal notices (a malformed !where triple, a
	// non-numeric img width) the same way go-org's Configuration.Log does.
	Log *log.Logger
}

// Default returns a Config with the spec's built-in knobs: "equation" as
// the default block math tag and a stderr logger.
func Default() *Config {
	return &Config{
		DefaultBlockMathTag: "equation",
		Log:                 log.New(os.Stderr, "subscript: ", 0),
	}
}

// Silent disables all logging of non-fatal notices, for embedders (such as
// test harnesses) that want a clean run without the stderr chatter.
func (c *Config) Silent() *Config {
	c.Log = log.New(io.Discard, "", 0)
	return c
}

// BlockMathTags returns the set of tag names treated as block math: just
// DefaultBlockMathTag, wrapped as the map shape canon.Canonicalize expects.
func (c *Config) BlockMathTags() map[string]bool {
	return map[string]bool{c.DefaultBlockMathTag: true}
}
