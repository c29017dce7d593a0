package core

// GameState summarizes a running game for the platform.
type GameState struct {
	Score    int  // Pairs matched so far
	GameOver bool // Board cleared or time ran out
	Paused   bool // Timer frozen
}
