// Package glyph maps timeline message kinds to the symbols the terminal
// printers use, and carries a few ANSI helpers.
package glyph

import (
	"fmt"

	"tableflip.dev/huddle/pkg/chat"
)

type Glyph struct {
	Kind    chat.Kind
	Symbol  string
	Meaning string
	Order   int
}

const (
	escape    = "\x1b"
	resetCode = 0
	boldCode  = 1
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

// DefaultGlyphs lists one glyph per message kind, in display order.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Kind:    chat.KindUser,
		Symbol:  "●",
		Meaning: "message",
		Order:   0,
	}, {
		Kind:    chat.KindSystem,
		Symbol:  "○",
		Meaning: "system notice",
		Order:   1,
	}, {
		Kind:    chat.KindEvent,
		Symbol:  "◷",
		Meaning: "meeting announcement",
		Order:   2,
	}}
}

// For returns the glyph for kind; unknown kinds get a blank symbol.
func For(kind chat.Kind) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Kind == kind {
			return g
		}
	}
	return Glyph{Kind: kind, Symbol: " ", Meaning: string(kind), Order: 99}
}

func (g Glyph) String() string {
	return g.Symbol
}

type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
