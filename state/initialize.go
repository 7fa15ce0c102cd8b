package state

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"storyroom/ambient"
	"storyroom/content"
	"storyroom/library"
	"storyroom/rooms"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// Assemble builds story library, room catalog and ambient engine from loaded
// configuration. Backend decides where ambient audio goes, nil means nowhere.
func (e *LocalEnv) Assemble(backend ambient.Backend) (err error) {
	if e.Cfg == nil || e.Log == nil {
		return errors.New("configuration and logging must be prepared first")
	}

	if e.Rooms, err = rooms.New(e.Cfg.Rooms); err != nil {
		return fmt.Errorf("unable to build rooms catalog: %w", err)
	}

	classifier := content.NewClassifier(e.Cfg.Content.Emotion)
	e.Library = library.New(&e.Cfg.Content, classifier, e.Log)

	if backend == nil {
		backend = ambient.SilentBackend{Log: e.Log.Named("silent")}
	}
	e.Ambient = ambient.New(&e.Cfg.Ambient, e.Rooms, backend, ambient.SystemClock, e.Log)

	e.Log.Debug("Environment assembled",
		zap.Int("rooms", len(e.Rooms.All())),
		zap.Stringer("emotion", classifier.Mode()),
		zap.String("source", e.Cfg.Content.Source))
	return nil
}

// Release stops ambient playback.
func (e *LocalEnv) Release() error {
	if e.Ambient == nil {
		return nil
	}
	return e.Ambient.Close()
}
