// Package audio plays a short chime when the grid is cleared or reseeded.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// SampleRate is the rate the speaker is opened at.
const SampleRate = beep.SampleRate(44100)

// NoteLength is the duration of each chime note.
const NoteLength = 60 * time.Millisecond

var chimeNotes = []float64{660, 880}

// Player owns the speaker. A nil or disabled Player is silent.
type Player struct {
	rate  beep.SampleRate
	ready bool
}

// Open initialises the speaker. A failure is returned alongside a silent
// Player so callers can log it and carry on.
func Open() (*Player, error) {
	p := &Player{rate: SampleRate}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return p, errors.Wrap(err, "init speaker")
	}
	p.ready = true
	return p, nil
}

// Enabled reports whether the speaker is live.
func (p *Player) Enabled() bool { return p != nil && p.ready }

// Chime queues the reset chime.
func (p *Player) Chime() {
	if !p.Enabled() {
		return
	}
	s, err := Chime(p.rate)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Close()
	p.ready = false
}

// Chime builds the rising two-note streamer played on reset, at half volume.
func Chime(rate beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, freq := range chimeNotes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, errors.Wrapf(err, "tone %.0fHz", freq)
		}
		notes = append(notes, beep.Take(rate.N(NoteLength), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   -1,
	}, nil
}
