package typewriter

// Sink receives the current partial line on every engine step. Each call
// replaces whatever the previous call displayed. The text is passed verbatim;
// escaping for markup-aware sinks is the caller's responsibility.
type Sink interface {
	Render(text string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(text string)

// Render calls f(text).
func (f SinkFunc) Render(text string) { f(text) }
