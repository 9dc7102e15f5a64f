package audio

import "github.com/lixenwraith/typewriter"

// clickingSink wraps a render sink so each character step produces a key
// click: growth in the rendered text is a keystroke, shrink is a rubout.
// The engine itself stays audio-free.
type clickingSink struct {
	next    typewriter.Sink
	clicker *Clicker
	prev    int
}

// Clicking decorates next with key clicks from clicker.
func Clicking(next typewriter.Sink, clicker *Clicker) typewriter.Sink {
	return &clickingSink{next: next, clicker: clicker}
}

func (s *clickingSink) Render(text string) {
	n := len([]rune(text))
	switch {
	case n > s.prev:
		s.clicker.Write()
	case n < s.prev:
		s.clicker.Delete()
	}
	s.prev = n

	if s.next != nil {
		s.next.Render(text)
	}
}
