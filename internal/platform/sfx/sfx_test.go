package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestStreamerLengths(t *testing.T) {
	tests := []struct {
		cue  core.Cue
		want time.Duration
	}{
		{core.CueWall, 35 * time.Millisecond},
		{core.CuePaddle, 60 * time.Millisecond},
		{core.CueBreak, 75 * time.Millisecond},
		{core.CueMiss, 360 * time.Millisecond},
		{core.CuePause, 25 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.cue), func(t *testing.T) {
			s := Streamer(tc.cue)
			if s == nil {
				t.Fatal("Streamer() = nil")
			}
			total, peak := drain(s)

			// Each note is rounded to whole samples on its own.
			want := sampleRate.N(tc.want)
			if total < want-2 || total > want+2 {
				t.Errorf("samples = %d, expected about %d", total, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestStreamerUnknownCue(t *testing.T) {
	if s := Streamer(core.Cue("nope")); s != nil {
		t.Errorf("Streamer(unknown) = %v, expected nil", s)
	}
}

func TestToneWaves(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		tn := newTone(440, 10*time.Millisecond, w, sampleRate)
		total, peak := drain(tn)
		if total != sampleRate.N(10*time.Millisecond) {
			t.Errorf("wave %d: samples = %d", w, total)
		}
		if peak > 0.25 {
			t.Errorf("wave %d: peak = %v, expected at most 0.25", w, peak)
		}
		if tn.Err() != nil {
			t.Errorf("wave %d: Err() = %v", w, tn.Err())
		}
	}
}

func TestPlayerUninitializedIsSilent(t *testing.T) {
	p := New(nil, 1)
	p.Play(core.CueBreak)
	p.Close()

	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected 0", p.mixer.Len())
	}
}

var _ core.AudioSink = (*Player)(nil)
