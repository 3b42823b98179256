package core

// Cue names a sound effect raised by the simulation.
type Cue string

// Cues raised by games.
const (
	CueWall   Cue = "wall"
	CuePaddle Cue = "paddle"
	CueBreak  Cue = "break"
	CueMiss   Cue = "miss"
	CuePause  Cue = "pause"
)

// AudioSink plays cues. Play must return immediately; games never wait on
// playback.
type AudioSink interface {
	Play(cue Cue)
}

// NopSink discards every cue.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Cue) {}

// CueRecorder collects cues in the order they were raised.
type CueRecorder struct {
	Cues []Cue
}

// Play records cue.
func (r *CueRecorder) Play(cue Cue) {
	r.Cues = append(r.Cues, cue)
}
