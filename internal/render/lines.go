package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/threadlet/threadlet/internal/thread"
)

// DepthColors cycles through these for nested thread connectors.
var DepthColors = []lipgloss.Color{
	"#5FAFFF", // blue
	"#87D787", // green
	"#FFD75F", // gold
	"#FF87AF", // pink
	"#AF87FF", // purple
	"#5FD7D7", // teal
}

// Connector glyphs are box-drawing half lines: a start drops down toward
// the children, an end joins only upward, a full bar passes through, and a
// stub is an isolated mark with no continuation.
var connectorGlyphs = map[thread.LineState]string{
	thread.LineStart: "╷",
	thread.LineEnd:   "╵",
	thread.LineFull:  "│",
	thread.LineStub:  "╶",
}

// continuationGlyphs draw the same columns on a node's wrapped body lines:
// only columns whose connector keeps running downward stay visible.
var continuationGlyphs = map[thread.LineState]string{
	thread.LineStart: "│",
	thread.LineEnd:   " ",
	thread.LineFull:  "│",
	thread.LineStub:  " ",
}

// LinePrefix renders the connector columns for a node's first display row.
// Rendering is capped at the node's visual depth: when the thread nests
// deeper, the outermost columns are dropped and the caller shows a depth
// badge instead.
func LinePrefix(fn thread.FlatNode) string {
	return renderColumns(fn, connectorGlyphs)
}

// ContinuationPrefix renders the columns for the node's subsequent body
// lines, keeping vertical bars running through multi-line comments.
func ContinuationPrefix(fn thread.FlatNode) string {
	return renderColumns(fn, continuationGlyphs)
}

func renderColumns(fn thread.FlatNode, glyphs map[thread.LineState]string) string {
	states := fn.LineStates
	offset := 0
	if len(states) > fn.VisualDepth {
		offset = len(states) - fn.VisualDepth
		states = states[offset:]
	}

	var sb strings.Builder
	for i, state := range states {
		color := DepthColors[(offset+i)%len(DepthColors)]
		style := lipgloss.NewStyle().Foreground(color)
		sb.WriteString(style.Render(glyphs[state]))
		sb.WriteString(" ")
	}
	return sb.String()
}
