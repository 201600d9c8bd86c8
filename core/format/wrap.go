package format

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Placement selects where anchor reference lines appear in the
// output.
type Placement int

const (
	// EndOfDocument appends the whole anchor table after the last
	// line, one reference per line.
	EndOfDocument Placement = iota
	// AfterFirstUse emits each reference directly beneath the logical
	// line that first used it.
	AfterFirstUse
)

// Render wraps every logical line to the fixed column width and
// interleaves or appends the anchor table per the placement mode. The
// result is newline-terminated per line.
func Render(lines []Line, refs *Refs, mode Placement) string {
	var out []string
	lastCont := ""
	emitted := 0

	for _, ln := range lines {
		out = append(out, wrapLine(ln, Width)...)
		lastCont = ln.Cont
		if mode == AfterFirstUse {
			for emitted < ln.Refs {
				emitted++
				out = append(out, refLine(ln.Cont, emitted, refs))
			}
		}
	}

	if mode == EndOfDocument && refs.Len() > 0 {
		out = append(out, "")
		for n := 1; n <= refs.Len(); n++ {
			out = append(out, refLine(lastCont, n, refs))
		}
	}

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func refLine(prefix string, n int, refs *Refs) string {
	return fmt.Sprintf("%s[%d]: %s", prefix, n, refs.Target(n))
}

// wrapLine greedily packs the line's words to the column width, the
// first-line prefix on the first physical line and the continuation
// prefix on the rest. Words are never broken, so an overlong word
// overflows rather than splits. An empty line triple yields one blank
// physical line.
func wrapLine(ln Line, width int) []string {
	words := strings.Fields(ln.Text)
	if len(words) == 0 {
		return []string{strings.TrimRight(ln.First, " ")}
	}

	var phys []string
	cur := ln.First + words[0]
	for _, word := range words[1:] {
		if ansi.PrintableRuneWidth(cur)+1+ansi.PrintableRuneWidth(word) > width {
			phys = append(phys, cur)
			cur = ln.Cont + word
			continue
		}
		cur += " " + word
	}
	return append(phys, cur)
}
