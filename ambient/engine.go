package ambient

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"storyroom/common"
	"storyroom/config"
)

var ErrUnknownCommand = errors.New("unknown ambient command")

// Engine keeps at most one ambient track audible at steady state. Tracks are
// keyed by context (room id), created lazily and reused on return, so a room
// never gets a second player. All operations are serialized, volume changes
// are applied by Tick which Run calls once per frame.
//
// Engine starts muted: nothing plays until the first Unmute. Metrics are
// process wide, only Mute and Unmute report muted state, so with several
// engines the gauge follows whichever changed last.
type Engine struct {
	cfg      config.AmbientConfig
	resolver Resolver
	backend  Backend
	clock    Clock
	log      *zap.Logger

	mu       sync.Mutex
	tracks   map[string]*track
	order    []string
	active   *track
	context  *string
	muted    bool
	silenced bool
	closed   bool
}

// New creates engine. Resolver may be nil, then every context plays default
// track.
func New(cfg *config.AmbientConfig, resolver Resolver, backend Backend, clock Clock, log *zap.Logger) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	return &Engine{
		cfg:      *cfg,
		resolver: resolver,
		backend:  backend,
		clock:    clock,
		log:      log.Named("ambient"),
		tracks:   make(map[string]*track),
		muted:    true,
	}
}

// trackFor returns track for the context creating it when necessary. Nil
// context and contexts without audio of their own share default track.
func (e *Engine) trackFor(ctx *string) *track {
	key, src := DefaultTrack, e.cfg.DefaultSource
	if ctx != nil && e.resolver != nil {
		if s, ok := e.resolver.AudioSource(*ctx); ok && len(s) > 0 {
			key, src = *ctx, s
		}
	}
	if t, ok := e.tracks[key]; ok {
		return t
	}
	t := &track{key: key, src: src, state: common.TrackStateIdle}
	e.tracks[key] = t
	e.order = append(e.order, key)
	return t
}

func (e *Engine) target() float64 {
	if e.silenced {
		return e.cfg.SilenceVolume
	}
	return e.cfg.SteadyVolume
}

// start opens player if needed and starts playback at zero volume.
func (e *Engine) start(t *track) error {
	if t.playing {
		return nil
	}
	if t.player == nil {
		p, err := e.backend.Open(t.src)
		if err != nil {
			return fmt.Errorf("unable to open ambient source %q: %w", t.src, err)
		}
		t.player = p
	}
	t.fade = nil
	t.setVolume(0)
	if err := t.player.Play(); err != nil {
		return fmt.Errorf("unable to play ambient source %q: %w", t.src, err)
	}
	t.playing = true
	return nil
}

// animate replaces whatever fade is running on the track with a new one
// starting from the current interpolated volume.
func (e *Engine) animate(t *track, to float64, d time.Duration, easing Easing, release bool) {
	now := e.clock.Now()
	if t.fade != nil {
		supersededFades.Inc()
	}
	from := t.current(now)
	t.fade = nil
	t.setVolume(from)

	if to > from {
		t.state = common.TrackStateFadingIn
	} else {
		t.state = common.TrackStateFadingOut
	}
	f := &fade{from: from, to: to, start: now, duration: d, easing: easing, release: release}
	if from == to || d <= 0 {
		e.complete(t, f)
		return
	}
	t.fade = f
}

// complete applies final volume of the fade and settles track state.
func (e *Engine) complete(t *track, f *fade) {
	t.fade = nil
	t.setVolume(f.to)
	if !f.release {
		t.state = common.TrackStateSteady
		return
	}
	if t.player != nil && t.playing {
		t.player.Pause()
	}
	t.playing = false
	t.state = common.TrackStatePaused
}

func (e *Engine) fadeOut(t *track, d time.Duration) {
	if !t.playing {
		return
	}
	e.animate(t, 0, d, EaseInOutCubic, true)
}

// SwitchContext makes ambience follow the given context, nil means default.
// While muted the context is only remembered. Switching to the context whose
// track is already playing does nothing.
func (e *Engine) SwitchContext(ctx *string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if ctx != nil {
		c := *ctx
		ctx = &c
	}
	e.context = ctx

	if e.muted {
		e.log.Debug("Muted, remembering context", zap.Stringp("context", ctx))
		return
	}

	t := e.trackFor(ctx)
	if t == e.active && t.playing {
		return
	}

	prev := e.active
	e.active = t
	if prev != nil && prev != t {
		e.fadeOut(prev, e.cfg.Crossfade)
	}
	if err := e.start(t); err != nil {
		playFailures.Inc()
		e.log.Warn("Unable to start ambient track", zap.String("track", t.key), zap.Error(err))
		return
	}
	switchCount.Inc()
	e.log.Debug("Switching ambient track", zap.Stringp("context", ctx), zap.String("track", t.key))
	e.animate(t, e.target(), e.cfg.Crossfade, EaseInOutCubic, false)
}

// Mute fades every audible track out. Muting twice is the same as muting once.
func (e *Engine) Mute() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.muted {
		return
	}
	e.muted = true
	mutedGauge.Set(1)
	for _, key := range e.order {
		e.fadeOut(e.tracks[key], e.cfg.Mute)
	}
	e.log.Debug("Ambient muted")
}

// Unmute resumes playback of the track for the last remembered context. When
// playback could not be started engine stays muted, so the next call retries.
func (e *Engine) Unmute() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.muted {
		return
	}

	t := e.trackFor(e.context)
	if err := e.start(t); err != nil {
		playFailures.Inc()
		e.log.Warn("Unable to start ambient playback, staying muted", zap.String("track", t.key), zap.Error(err))
		return
	}
	e.muted = false
	mutedGauge.Set(0)
	e.active = t
	e.animate(t, e.target(), e.cfg.FirstPlay, EaseInOutCubic, false)
	e.log.Debug("Ambient unmuted", zap.String("track", t.key))
}

func (e *Engine) Toggle() {
	if e.Muted() {
		e.Unmute()
		return
	}
	e.Mute()
}

// RequestSilence lowers active track to silence floor. Target is remembered,
// so tracks started later settle at the floor too.
func (e *Engine) RequestSilence() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.silenced = true
	if e.muted || e.active == nil || !e.active.playing {
		return
	}
	e.animate(e.active, e.cfg.SilenceVolume, e.cfg.SilenceFade, EaseOutExpo, false)
}

// RequestNormal brings active track back to steady volume.
func (e *Engine) RequestNormal() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.silenced = false
	if e.muted || e.active == nil || !e.active.playing {
		return
	}
	e.animate(e.active, e.cfg.SteadyVolume, e.cfg.FirstPlay, EaseInOutCubic, false)
}

// Execute dispatches control command, context command takes an optional
// argument.
func (e *Engine) Execute(cmd common.AmbientCommand, arg *string) error {
	switch cmd {
	case common.AmbientCommandContext:
		e.SwitchContext(arg)
	case common.AmbientCommandMute:
		e.Mute()
	case common.AmbientCommandUnmute:
		e.Unmute()
	case common.AmbientCommandToggle:
		e.Toggle()
	case common.AmbientCommandSilence:
		e.RequestSilence()
	case common.AmbientCommandNormal:
		e.RequestNormal()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return nil
}

// Tick advances every running fade to the given moment.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	for _, key := range e.order {
		t := e.tracks[key]
		if t.fade == nil {
			continue
		}
		v, done := t.fade.at(now)
		if done {
			e.complete(t, t.fade)
			continue
		}
		t.setVolume(v)
	}
}

// Run drives fades until context is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			e.Tick(e.clock.Now())
		}
	}
}

func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Playing reports whether ambience is audible or about to become audible.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.muted && e.active != nil && e.active.playing
}

// ActiveContext returns last requested context, nil means default.
func (e *Engine) ActiveContext() *string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.context == nil {
		return nil
	}
	c := *e.context
	return &c
}

// Snapshot is engine state suitable for presentation.
type Snapshot struct {
	Muted    bool            `json:"muted"`
	Playing  bool            `json:"playing"`
	Silenced bool            `json:"silenced"`
	Context  *string         `json:"context"`
	Active   string          `json:"active,omitempty"`
	Tracks   []TrackSnapshot `json:"tracks"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Muted:    e.muted,
		Playing:  !e.muted && e.active != nil && e.active.playing,
		Silenced: e.silenced,
		Tracks:   make([]TrackSnapshot, 0, len(e.order)),
	}
	if e.context != nil {
		c := *e.context
		s.Context = &c
	}
	if e.active != nil {
		s.Active = e.active.key
	}
	for _, key := range e.order {
		s.Tracks = append(s.Tracks, e.tracks[key].snapshot())
	}
	return s
}

// Audible returns keys of tracks currently playing, in creation order.
func (e *Engine) Audible() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.DeleteFunc(slices.Clone(e.order), func(key string) bool {
		return !e.tracks[key].playing
	})
}

// Close stops and releases every player. Engine ignores all requests after
// that.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	var err error
	for _, key := range e.order {
		t := e.tracks[key]
		t.fade = nil
		if t.player == nil {
			continue
		}
		if t.playing {
			t.player.Pause()
			t.playing = false
		}
		err = multierr.Append(err, t.player.Close())
		t.player = nil
	}
	return err
}
