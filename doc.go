// Package typewriter animates text the way a typewriter would: characters of
// a line are revealed one by one, optionally erased backward, then the engine
// advances to the next line in the list.
//
// The engine owns all mutable animation state and drives itself through an
// injected clock (see the clock subpackage), pushing the current partial line
// to a Sink on every step. Terminal output lives in the terminal subpackage;
// optional key-click sounds in the audio subpackage.
package typewriter
