// Package speaker plays ambient tracks on the local audio device.
package speaker

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"

	"storyroom/ambient"
	"storyroom/config"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// stream is what every ebiten decoder returns.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// Backend decodes audio assets and loops them forever. Audio context is
// created on first use, ebiten allows only one per process.
type Backend struct {
	assets     string
	sampleRate int
	log        *zap.Logger

	once sync.Once
	ctx  *audio.Context
}

var _ ambient.Backend = (*Backend)(nil)

func New(cfg *config.AmbientConfig, log *zap.Logger) *Backend {
	return &Backend{
		assets:     cfg.AssetsDir,
		sampleRate: cfg.SampleRate,
		log:        log.Named("speaker"),
	}
}

func (b *Backend) context() *audio.Context {
	b.once.Do(func() {
		if b.ctx = audio.CurrentContext(); b.ctx == nil {
			b.ctx = audio.NewContext(b.sampleRate)
		}
	})
	return b.ctx
}

// Resolve maps audio reference (site absolute path like "/audio/x.mp3") to a
// file under assets directory.
func (b *Backend) Resolve(src string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(src, "/")))
	if len(rel) == 0 || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("bad audio reference %q", src)
	}
	return filepath.Join(b.assets, rel), nil
}

func (b *Backend) Open(src string) (ambient.Player, error) {
	path, err := b.Resolve(src)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read audio asset: %w", err)
	}
	s, err := decode(b.sampleRate, path, data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}
	p, err := b.context().NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("unable to create player for %s: %w", path, err)
	}
	b.log.Debug("Audio asset loaded", zap.String("source", src), zap.String("path", path), zap.Int64("length", s.Length()))
	return &player{Player: p}, nil
}

// format sniffs audio container from data, extension is used when content
// is not recognized.
func format(path string, data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.Extension
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func decode(sampleRate int, path string, data []byte) (stream, error) {
	r := bytes.NewReader(data)
	switch f := format(path, data); f {
	case "mp3":
		return mp3.DecodeWithSampleRate(sampleRate, r)
	case "ogg", "oga":
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	case "wav":
		return wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

type player struct {
	*audio.Player
}

// Play never fails for ebiten players, errors surface on Open.
func (p *player) Play() error {
	p.Player.Play()
	return nil
}
