package speaker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"storyroom/config"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	return New(&config.AmbientConfig{AssetsDir: t.TempDir(), SampleRate: 44100}, zaptest.NewLogger(t))
}

func TestResolve(t *testing.T) {
	b := newBackend(t)

	tests := []struct {
		src     string
		want    string
		wantErr bool
	}{
		{src: "/audio/room-tone.mp3", want: filepath.Join(b.assets, "audio", "room-tone.mp3")},
		{src: "audio/rooms/rain.mp3", want: filepath.Join(b.assets, "audio", "rooms", "rain.mp3")},
		{src: "/audio/../audio/x.ogg", want: filepath.Join(b.assets, "audio", "x.ogg")},
		{src: "/../secret.mp3", wantErr: true},
		{src: "/", wantErr: true},
		{src: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := b.Resolve(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	wavHeader := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	oggHeader := []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00\x00\x00")

	if got := format("tone.bin", wavHeader); got != "wav" {
		t.Errorf("format(wav) = %q", got)
	}
	if got := format("tone.mp3", oggHeader); got != "ogg" {
		t.Errorf("format(ogg named mp3) = %q", got)
	}
	if got := format("tone.MP3", []byte("garbage")); got != "mp3" {
		t.Errorf("format(by extension) = %q", got)
	}
}

func TestOpenErrors(t *testing.T) {
	b := newBackend(t)

	if _, err := b.Open("/audio/missing.mp3"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(b.assets, "notes.txt"), []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Open("/notes.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open(text) error = %v", err)
	}
}
