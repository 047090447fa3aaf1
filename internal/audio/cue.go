// Package audio plays short tones for scene events. Sound is optional: if the speaker cannot be
// opened the cue stays silent and the scene runs as before.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Event selects which tone a cue plays.
type Event int

const (
	EventHit Event = iota
	EventLaunch
)

type tone struct {
	freq   float64
	length time.Duration
	volume float64
}

var tones = map[Event]tone{
	EventHit:    {freq: 880, length: 50 * time.Millisecond, volume: 0.6},
	EventLaunch: {freq: 330, length: 80 * time.Millisecond, volume: 0.4},
}

// Cue plays event tones through the default speaker.
type Cue struct {
	mu    sync.Mutex
	ready bool
}

// NewCue opens the speaker. On error the returned cue is still usable and silent.
func NewCue() (*Cue, error) {
	c := &Cue{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.ready = true
	return c, nil
}

// Ready reports whether the speaker was opened.
func (c *Cue) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Play queues the tone for e. Unknown events and a silent cue are no-ops.
func (c *Cue) Play(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	s, err := streamer(e)
	if err != nil || s == nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.ready = false
}

func streamer(e Event) (beep.Streamer, error) {
	t, ok := tones[e]
	if !ok {
		return nil, nil
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.length), sine),
		Base:     2,
		Volume:   math.Log2(t.volume),
	}, nil
}
