package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"storyroom/ambient/speaker"
	"storyroom/common"
	"storyroom/state"
)

const consoleHelp = `    room ID   switch ambience to room
    default   switch to default room tone
    mute, unmute, toggle
    silence   lower ambience to silence floor
    normal    bring ambience back to normal volume
    state     print engine state
    quit      stop playback and exit
`

var errQuit = errors.New("quit")

// execConsole runs single console command against ambient engine.
func execConsole(env *state.LocalEnv, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch word := strings.ToLower(fields[0]); word {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		_, err := fmt.Fprint(out, consoleHelp)
		return err
	case "state":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Ambient.Snapshot())
	case "room":
		if len(fields) < 2 {
			return errors.New("room id is required")
		}
		id := fields[1]
		if !env.Rooms.Has(id) {
			return fmt.Errorf("unknown room %q", id)
		}
		env.Ambient.SwitchContext(&id)
	case "default":
		env.Ambient.SwitchContext(nil)
	default:
		cmd, err := common.ParseAmbientCommand(word)
		if err != nil || cmd == common.AmbientCommandContext {
			return fmt.Errorf("unknown command %q, type help", word)
		}
		if err := env.Ambient.Execute(cmd, nil); err != nil {
			return err
		}
	}
	if env.Ambient.Muted() {
		_, err := fmt.Fprintln(out, "muted")
		return err
	}
	_, err := fmt.Fprintln(out, "playing")
	return err
}

// readLines delivers console input line by line. Channel is closed on end of
// input or as soon as a line arrives after ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if ctx.Err() != nil {
				return
			}
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func runAmbient(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if err := assemble(env, speaker.New(&env.Cfg.Ambient, env.Log)); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- env.Ambient.Run(ctx) }()

	lines := readLines(ctx, os.Stdin)

	fmt.Fprint(os.Stdout, consoleHelp)
	for {
		select {
		case <-ctx.Done():
			return <-done
		case line, ok := <-lines:
			if !ok {
				cancel()
				return <-done
			}
			err := execConsole(env, line, os.Stdout)
			if errors.Is(err, errQuit) {
				cancel()
				return <-done
			}
			if err != nil {
				env.Log.Warn("Console", zap.Error(err))
			}
		}
	}
}
