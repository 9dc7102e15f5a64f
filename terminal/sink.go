// Package terminal renders the typewriter's output onto a tcell screen.
package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// LineSink displays the current text on a single row of a tcell screen,
// replacing whatever the previous render drew there. An optional block
// cursor cell trails the text.
type LineSink struct {
	screen tcell.Screen
	x, y   int
	style  tcell.Style
	cursor bool
	prev   int // cells occupied by the previous render, cursor included
}

// NewLineSink creates a sink drawing at (x, y) with the given style.
func NewLineSink(screen tcell.Screen, x, y int, style tcell.Style) *LineSink {
	return &LineSink{screen: screen, x: x, y: y, style: style}
}

// ShowCursor toggles the trailing block cursor cell.
func (s *LineSink) ShowCursor(on bool) {
	s.cursor = on
}

// Move repositions the sink, e.g. after a resize. The caller clears the
// screen if the old position should not stay visible.
func (s *LineSink) Move(x, y int) {
	s.x = x
	s.y = y
	s.prev = 0
}

// Render draws text at the sink position, erases any tail left over from a
// longer previous render, and flushes the screen.
func (s *LineSink) Render(text string) {
	col := s.x
	for _, r := range text {
		s.screen.SetContent(col, s.y, r, nil, s.style)
		col++
	}
	if s.cursor {
		s.screen.SetContent(col, s.y, ' ', nil, s.style.Reverse(true))
		col++
	}
	for c := col; c < s.x+s.prev; c++ {
		s.screen.SetContent(c, s.y, ' ', nil, tcell.StyleDefault)
	}
	s.prev = col - s.x
	s.screen.Show()
}
