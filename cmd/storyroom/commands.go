package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"storyroom/ambient"
	"storyroom/config"
	"storyroom/server"
	"storyroom/state"
)

// assemble wires environment and, when debug report is requested, stores
// content source and parsed stories in it.
func assemble(env *state.LocalEnv, backend ambient.Backend) error {
	if err := env.Assemble(backend); err != nil {
		return err
	}
	if env.Rpt == nil {
		return nil
	}

	// source may point inside an archive, keep the archive itself
	for src := env.Cfg.Content.Source; len(src) > 0 && src != "." && src != string(filepath.Separator); src = filepath.Dir(src) {
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := env.Rpt.StoreCopy("source/"+filepath.Base(src), src); err != nil {
			env.Log.Debug("Unable to store content source in report", zap.String("source", src), zap.Error(err))
		}
		break
	}
	for _, s := range env.Library.Stories() {
		env.Rpt.StoreData("stories/"+config.CleanFileName(s.ID)+".txt", []byte(s.String()))
	}
	return nil
}

func runServer(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if addr := cmd.String("listen"); len(addr) > 0 {
		env.Cfg.Server.Listen = addr
	}
	if err := assemble(env, nil); err != nil {
		return err
	}
	srv, err := server.New(env)
	if err != nil {
		return fmt.Errorf("unable to create server: %w", err)
	}
	return srv.Run(ctx)
}

func listStories(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if err := assemble(env, nil); err != nil {
		return err
	}

	list := env.Library.Metadata()
	if room := cmd.String("room"); len(room) > 0 {
		if !env.Rooms.Has(room) {
			env.Log.Warn("Room is not configured", zap.String("room", room))
		}
		list = env.Library.InRoom(room)
	}

	if format := cmd.String("format"); len(format) > 0 {
		tmpl, err := parseListing(format)
		if err != nil {
			return err
		}
		for i, md := range list {
			line, err := expandListing(tmpl, i+1, md)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, line)
		}
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMOTION\tROOM\tTITLE")
		for _, md := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", md.ID, md.Emotion, md.RoomID, md.Title)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if rpt := env.Library.Report(); rpt.Skipped > 0 {
		env.Log.Warn("Some files were skipped", zap.Int("skipped", rpt.Skipped), zap.Error(rpt.Err))
	}
	return nil
}

func showStory(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	id := cmd.Args().Get(0)
	if len(id) == 0 {
		return errors.New("story id is required")
	}
	if err := assemble(env, nil); err != nil {
		return err
	}

	story, err := env.Library.ByID(id)
	if err != nil {
		return err
	}
	if !cmd.Bool("json") {
		_, err = fmt.Fprint(os.Stdout, story.String())
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(story)
}

func listRooms(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if err := assemble(env, nil); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tID\tNAME\tSTORIES\tAUDIO")
	for _, r := range env.Rooms.All() {
		fmt.Fprintf(w, "%d\t%s\t%s / %s\t%d\t%s\n", r.Order, r.ID, r.Name, r.NameOther, len(env.Library.InRoom(r.ID)), r.Audio)
	}
	return w.Flush()
}
