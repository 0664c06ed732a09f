package utils

import (
	"github.com/rivo/uniseg"
)

// WrapLine splits text into chunks of at most width terminal cells, breaking
// on grapheme cluster boundaries so combining marks and emoji stay intact.
// Wide runes count as two cells. An empty string still yields one row so the
// line keeps its place on screen.
func WrapLine(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	if text == "" {
		return []string{""}
	}

	var (
		rows     []string
		rowStart int
		rowWidth int
		pos      int
		state    = -1
		cluster  string
	)

	rest := text
	for len(rest) > 0 {
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		clusterWidth := boundaries >> uniseg.ShiftWidth

		if rowWidth+clusterWidth > width && rowWidth > 0 {
			rows = append(rows, text[rowStart:pos])
			rowStart = pos
			rowWidth = 0
		}

		pos += len(cluster)
		rowWidth += clusterWidth
	}

	return append(rows, text[rowStart:])
}
