package ambient

import (
	"time"

	"go.uber.org/zap"
)

// Player controls playback of a single looping audio source.
type Player interface {
	// Play starts or resumes playback. It may fail, for example when audio
	// asset cannot be decoded or output device is not available.
	Play() error
	Pause()
	// SetVolume accepts values in [0, 1].
	SetVolume(v float64)
	Close() error
}

// Backend creates players for audio references.
type Backend interface {
	Open(src string) (Player, error)
}

// Resolver maps context (room id) to audio reference. Rooms catalog is the
// natural implementation.
type Resolver interface {
	AudioSource(id string) (string, bool)
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is wall clock.
var SystemClock Clock = systemClock{}

// SilentBackend produces players which only log what would have been done.
// Server uses it: it has no audio output of its own, but keeps engine state
// for the presentation layer.
type SilentBackend struct {
	Log *zap.Logger
}

func (b SilentBackend) Open(src string) (Player, error) {
	return &silentPlayer{src: src, log: b.Log}, nil
}

type silentPlayer struct {
	src    string
	log    *zap.Logger
	volume float64
}

func (p *silentPlayer) Play() error {
	p.log.Debug("Play", zap.String("source", p.src))
	return nil
}

func (p *silentPlayer) Pause() {
	p.log.Debug("Pause", zap.String("source", p.src))
}

func (p *silentPlayer) SetVolume(v float64) {
	p.volume = v
}

func (p *silentPlayer) Close() error {
	return nil
}
