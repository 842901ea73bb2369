// Package key provides CLI helpers to display the timeline legend.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/huddle/pkg/glyph"
)

// Key prints a glyph legend describing message kinds.
type Key struct {
	Out io.Writer
}

// Do renders the legend to Out.
func (k *Key) Do(ctx context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}

	glyfs := glyph.DefaultGlyphs()
	sort.Sort(glyph.ByOrder(glyfs))

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, "")
	_, err := fmt.Fprintln(w, tbl)
	return err
}
