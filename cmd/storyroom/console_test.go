package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"storyroom/config"
	"storyroom/state"
)

func newConsoleEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Content.Source = t.TempDir()

	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	if err := assemble(env, nil); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = env.Release() })
	return env
}

func TestExecConsole(t *testing.T) {
	env := newConsoleEnv(t)

	tests := []struct {
		line    string
		out     string
		wantErr bool
	}{
		{line: "", out: ""},
		{line: "room rain", out: "muted\n"},
		{line: "unmute", out: "playing\n"},
		{line: "ROOM window", out: "playing\n"},
		{line: "silence", out: "playing\n"},
		{line: "default", out: "playing\n"},
		{line: "toggle", out: "muted\n"},
		{line: "room", wantErr: true},
		{line: "room attic", wantErr: true},
		{line: "context rain", wantErr: true},
		{line: "louder", wantErr: true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		err := execConsole(env, tt.line, &out)
		if (err != nil) != tt.wantErr {
			t.Fatalf("execConsole(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
		}
		if !tt.wantErr && out.String() != tt.out {
			t.Errorf("execConsole(%q) output = %q, want %q", tt.line, out.String(), tt.out)
		}
	}

	if ctx := env.Ambient.ActiveContext(); ctx != nil {
		t.Errorf("ActiveContext() = %q, want default", *ctx)
	}
	if !env.Ambient.Snapshot().Silenced {
		t.Error("silence request was lost")
	}
}

func TestExecConsoleStateAndQuit(t *testing.T) {
	env := newConsoleEnv(t)

	var out bytes.Buffer
	if err := execConsole(env, "state", &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"muted": true`) {
		t.Errorf("state output = %s", out.String())
	}

	out.Reset()
	if err := execConsole(env, "help", &out); err != nil || !strings.Contains(out.String(), "room ID") {
		t.Errorf("help = %q, %v", out.String(), err)
	}

	if err := execConsole(env, "quit", &out); !errors.Is(err, errQuit) {
		t.Errorf("quit error = %v", err)
	}
}

func TestReadLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines := readLines(ctx, strings.NewReader("mute\nunmute\n"))
	for _, want := range []string{"mute", "unmute"} {
		if got := <-lines; got != want {
			t.Errorf("line = %q, want %q", got, want)
		}
	}
	if _, ok := <-lines; ok {
		t.Error("channel must be closed at end of input")
	}
}

func TestReadLinesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	lines := readLines(ctx, pr)
	go func() { _, _ = io.WriteString(pw, "state\n") }()
	if got := <-lines; got != "state" {
		t.Fatalf("line = %q", got)
	}

	// nobody reads after quit, reader must not get stuck on the next line
	cancel()
	go func() { _, _ = io.WriteString(pw, "toggle\n") }()
	select {
	case line, ok := <-lines:
		if ok {
			t.Errorf("line %q delivered after cancel", line)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reader did not stop after cancel")
	}
}
