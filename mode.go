package typewriter

// Mode identifies the engine's animation phase
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeWriting
	ModeDeleting
)
