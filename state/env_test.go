package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"storyroom/config"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Library != nil || env.Rooms != nil || env.Ambient != nil {
		t.Error("Components must not be assembled implicitly")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if uptime := env.Uptime(); uptime < time.Second || uptime > time.Minute {
		t.Errorf("Uptime() = %v", uptime)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	tests := []struct {
		name     string
		log      *zap.Logger
		redirect bool
	}{
		{name: "with logger", log: zaptest.NewLogger(t), redirect: true},
		{name: "without logger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &LocalEnv{Log: tt.log}
			// restoring without redirect is harmless
			env.RestoreStdLog()
			for range 2 {
				env.RedirectStdLog()
				if got := env.restoreStdLog != nil; got != tt.redirect {
					t.Errorf("redirected = %v, want %v", got, tt.redirect)
				}
				env.RestoreStdLog()
			}
		})
	}
}

func TestLocalEnv_Assemble(t *testing.T) {
	env := &LocalEnv{start: time.Now()}
	if err := env.Assemble(nil); err == nil {
		t.Fatal("Expected error without configuration")
	}

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Content.Source = t.TempDir()

	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	if err := env.Assemble(nil); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	t.Cleanup(func() { _ = env.Release() })

	if len(env.Rooms.All()) != len(cfg.Rooms) {
		t.Errorf("Rooms = %d, want %d", len(env.Rooms.All()), len(cfg.Rooms))
	}
	if n := len(env.Library.Stories()); n != 0 {
		t.Errorf("Stories() = %d, want 0 for empty source", n)
	}

	// silent backend lets engine run without audio device
	env.Ambient.SwitchContext(nil)
	env.Ambient.Unmute()
	if !env.Ambient.Playing() {
		t.Error("Ambient engine must be playing after unmute")
	}
}

func TestLocalEnv_Release(t *testing.T) {
	env := &LocalEnv{start: time.Now()}
	if err := env.Release(); err != nil {
		t.Fatalf("Release() before Assemble = %v", err)
	}

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Content.Source = t.TempDir()
	env.Cfg, env.Log = cfg, zaptest.NewLogger(t)
	if err := env.Assemble(nil); err != nil {
		t.Fatal(err)
	}
	env.Ambient.Unmute()
	if err := env.Release(); err != nil {
		t.Fatalf("Release() = %v", err)
	}
	env.Ambient.Unmute()
	if env.Ambient.Playing() {
		t.Error("released engine must stay silent")
	}
}

func TestLocalEnv_AssembleBadRooms(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Rooms = append(cfg.Rooms, config.RoomConfig{ID: "Not A Slug", Name: "Broken"})

	env := &LocalEnv{Cfg: cfg, Log: zaptest.NewLogger(t), start: time.Now()}
	if err := env.Assemble(nil); err == nil {
		t.Error("Expected error for invalid room id")
	}
}
