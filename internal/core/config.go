package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // 0 means the platform picks one

	// Difficulty is a preset name ("easy", "normal", "hard", "fixed").
	// Empty keeps whatever the game was configured with.
	Difficulty string

	Audio  AudioSink   // nil plays nothing
	Logger *log.Logger // nil discards
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Sink returns the configured audio sink or a NopSink.
func (c RuntimeConfig) Sink() AudioSink {
	if c.Audio == nil {
		return NopSink{}
	}
	return c.Audio
}

// Log returns the configured logger or one that discards everything.
func (c RuntimeConfig) Log() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
