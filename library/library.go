// Package library keeps parsed stories in memory. Content is loaded once on
// first access and shared read-only afterwards.
package library

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"storyroom/config"
	"storyroom/content"
)

var ErrStoryNotFound = errors.New("story not found")

// LoadReport describes what happened during the last load.
type LoadReport struct {
	Source   string
	Loaded   int
	Skipped  int
	Duration time.Duration
	// Err aggregates problems with individual files, it never means load
	// failed as a whole.
	Err error
}

type index struct {
	stories  []*content.Story
	byID     map[string]*content.Story
	metadata []content.StoryMetadata
	report   LoadReport
}

// Library is the story repository.
type Library struct {
	cfg        *config.ContentConfig
	classifier *content.Classifier
	parser     *content.Parser
	log        *zap.Logger

	group   singleflight.Group
	current atomic.Pointer[index]
	loads   atomic.Int64

	// guards publishing of loaded index against Reset
	mu  sync.Mutex
	gen uint64
	// called after content is loaded and before it is published, tests only
	loaded func()
}

// New creates library, nothing is read until first access. When classifier
// is nil one is created for configured emotion mode.
func New(cfg *config.ContentConfig, classifier *content.Classifier, log *zap.Logger) *Library {
	log = log.Named("library")
	if classifier == nil {
		classifier = content.NewClassifier(cfg.Emotion)
	}
	return &Library{
		cfg:        cfg,
		classifier: classifier,
		parser:     content.NewParser(log),
		log:        log,
	}
}

func (l *Library) get() *index {
	if idx := l.current.Load(); idx != nil {
		return idx
	}
	v, _, _ := l.group.Do("load", func() (any, error) {
		if idx := l.current.Load(); idx != nil {
			return idx, nil
		}
		l.mu.Lock()
		gen := l.gen
		l.mu.Unlock()

		idx := l.load()
		if l.loaded != nil {
			l.loaded()
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.gen == gen {
			l.current.Store(idx)
		}
		return idx, nil
	})
	return v.(*index)
}

func (l *Library) load() *index {
	l.loads.Add(1)
	start := time.Now()

	idx := &index{
		stories:  make([]*content.Story, 0),
		metadata: make([]content.StoryMetadata, 0),
		byID:     make(map[string]*content.Story),
		report:   LoadReport{Source: l.cfg.Source},
	}

	exts := l.cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".txt"}
	}
	sc := &scanner{extensions: exts, log: l.log}
	if err := sc.scan(l.cfg.Source); err != nil {
		l.log.Warn("Unable to scan content source, no stories will be available", zap.String("source", l.cfg.Source), zap.Error(err))
		sc.err = multierr.Append(sc.err, err)
	}
	errs := sc.err

	for _, f := range sc.files {
		story, err := l.build(f, len(idx.stories))
		if err == nil {
			if _, exists := idx.byID[story.ID]; exists {
				err = fmt.Errorf("duplicate story id %q", story.ID)
			}
		}
		if err != nil {
			l.log.Warn("Skipping story file", zap.String("file", f.name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.name, err))
			idx.report.Skipped++
			continue
		}
		idx.stories = append(idx.stories, story)
		idx.byID[story.ID] = story
		idx.metadata = append(idx.metadata, story.Metadata(l.cfg.ExcerptLength))
	}

	idx.report.Loaded = len(idx.stories)
	idx.report.Skipped += sc.skipped
	idx.report.Duration = time.Since(start)
	idx.report.Err = errs

	storiesLoaded.Set(float64(idx.report.Loaded))
	storiesSkipped.Set(float64(idx.report.Skipped))
	loadDuration.Observe(idx.report.Duration.Seconds())

	l.log.Info("Stories loaded",
		zap.String("source", l.cfg.Source),
		zap.Int("loaded", idx.report.Loaded),
		zap.Int("skipped", idx.report.Skipped),
		zap.Duration("elapsed", idx.report.Duration))
	return idx
}

// build parses single file. Panics in parser are turned into errors so one
// bad file cannot take the whole load down.
func (l *Library) build(f sourceFile, position int) (story *content.Story, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unable to parse story: %v", r)
		}
	}()

	text, err := decode(f.data)
	if err != nil {
		return nil, err
	}

	story = l.parser.Parse(text)
	story.ID = strings.TrimSuffix(f.name, filepath.Ext(f.name))
	if len(story.Title) == 0 {
		story.Title = content.HumanizeID(story.ID)
	}
	story.Emotion = l.classifier.Classify(position, story)
	return story, nil
}

// Stories returns all stories in load order. Slice must not be modified.
func (l *Library) Stories() []*content.Story {
	return l.get().stories
}

// Metadata returns listing projections in load order.
func (l *Library) Metadata() []content.StoryMetadata {
	return l.get().metadata
}

func (l *Library) ByID(id string) (*content.Story, error) {
	if s, ok := l.get().byID[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
}

// InRoom returns metadata of stories placed into the room.
func (l *Library) InRoom(roomID string) []content.StoryMetadata {
	res := make([]content.StoryMetadata, 0)
	for _, md := range l.get().metadata {
		if md.RoomID == roomID {
			res = append(res, md)
		}
	}
	return res
}

// Report describes the load, triggering it if necessary.
func (l *Library) Report() LoadReport {
	return l.get().report
}

// Reset drops cached content, next access loads it again. A load already
// running when Reset is called is not cached.
func (l *Library) Reset() {
	l.mu.Lock()
	l.gen++
	l.current.Store(nil)
	l.mu.Unlock()
	l.group.Forget("load")
}
