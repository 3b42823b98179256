// Package sfx plays game cues through the system speaker. Every sound is
// synthesized on the fly, so there are no assets to ship.
package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// cues maps each cue to the notes it plays, in order.
var cues = map[core.Cue][]note{
	core.CueWall:   {{freq: 660, dur: 35 * time.Millisecond, wave: WaveSine}},
	core.CuePaddle: {{freq: 440, dur: 60 * time.Millisecond, wave: WaveSquare}},
	core.CueBreak: {
		{freq: 880, dur: 30 * time.Millisecond, wave: WaveSquare},
		{freq: 1320, dur: 45 * time.Millisecond, wave: WaveSquare},
	},
	core.CueMiss: {
		{freq: 220, dur: 120 * time.Millisecond, wave: WaveSaw},
		{freq: 110, dur: 240 * time.Millisecond, wave: WaveSaw},
	},
	core.CuePause: {{freq: 520, dur: 25 * time.Millisecond, wave: WaveSine}},
}

// Player is a core.AudioSink backed by the speaker. Until Init succeeds,
// Play does nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // log2 gain applied to every cue
	log         *log.Logger
	initialized bool
}

// New creates a player. volume is in [0, 1]; 0 mutes.
func New(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger.WithPrefix("sfx"),
	}
}

// Init opens the speaker. A player that fails to initialize stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx: open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer and returns immediately.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume <= 0 {
		return
	}
	s := Streamer(cue)
	if s == nil {
		p.log.Debug("no sound for cue", "cue", cue)
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Streamer returns the sound for cue, or nil for an unknown cue.
func Streamer(cue core.Cue) beep.Streamer {
	notes, ok := cues[cue]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newTone(n.freq, n.dur, n.wave, sampleRate)
	}
	return beep.Seq(parts...)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a single decaying oscillator note.
type tone struct {
	freq  float64
	phase float64
	n     int
	pos   int
	wave  Wave
	rate  beep.SampleRate
}

func newTone(freq float64, dur time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, n: rate.N(dur), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.n {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.n {
			return i, true
		}

		var v float64
		switch t.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		// Short attack, linear release.
		env := min(float64(t.pos)/float64(t.rate.N(2*time.Millisecond)), 1)
		env *= 1 - float64(t.pos)/float64(t.n)
		v *= 0.25 * env

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
