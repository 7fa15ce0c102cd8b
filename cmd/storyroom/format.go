package main

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"storyroom/common"
	"storyroom/content"
)

// listingValues is what listing template sees for every story.
type listingValues struct {
	Position int
	content.StoryMetadata
	Palette common.Palette
}

func parseListing(format string) (*template.Template, error) {
	tmpl, err := template.New("listing").Funcs(sprig.FuncMap()).Parse(format)
	if err != nil {
		return nil, fmt.Errorf("unable to parse listing format: %w", err)
	}
	return tmpl, nil
}

func expandListing(tmpl *template.Template, pos int, md content.StoryMetadata) (string, error) {
	values := listingValues{
		Position:      pos,
		StoryMetadata: md,
		Palette:       md.Emotion.Palette(),
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand listing format for %s: %w", md.ID, err)
	}
	return buf.String(), nil
}
