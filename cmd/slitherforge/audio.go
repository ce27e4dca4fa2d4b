package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const audioSampleRate = beep.SampleRate(44100)

// sounds plays short feedback tones for editor actions. A failed speaker
// init leaves it silent rather than aborting the editor.
type sounds struct {
	ready bool
}

func newSounds(enabled bool) *sounds {
	s := &sounds{}
	if !enabled {
		return s
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err == nil {
		s.ready = true
	}
	return s
}

func (s *sounds) playTone(freq float64, d time.Duration) {
	if !s.ready {
		return
	}
	sine, err := generators.SineTone(audioSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(d), sine))
}

// commit is the bright tick on a successful edit.
func (s *sounds) commit() { s.playTone(880, 50*time.Millisecond) }

// reject is the low buzz on a refused edit.
func (s *sounds) reject() { s.playTone(220, 80*time.Millisecond) }

func (s *sounds) close() {
	if s.ready {
		speaker.Close()
	}
}
