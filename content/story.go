// Package content turns loosely structured bilingual plain text into story
// documents.
package content

import (
	"storyroom/common"
)

// Section is a single visual unit of a story: either a block of text (one or
// both languages) or an image.
type Section struct {
	Kind common.SectionKind `json:"kind"`

	// text sections
	Content      string           `json:"content,omitempty"`
	ContentOther string           `json:"contentOther,omitempty"`
	Alignment    common.Alignment `json:"alignment,omitempty"`

	// image sections
	Path string `json:"path,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// TextSection returns centered text section, primary and secondary are
// expected to be trimmed already.
func TextSection(primary, secondary string) Section {
	return Section{
		Kind:         common.SectionKindText,
		Content:      primary,
		ContentOther: secondary,
		Alignment:    common.AlignmentCenter,
	}
}

func ImageSection(path, alt string) Section {
	return Section{Kind: common.SectionKindImage, Path: path, Alt: alt}
}

// Empty reports whether section carries nothing to render.
func (s Section) Empty() bool {
	return len(s.Content) == 0 && len(s.ContentOther) == 0 && len(s.Path) == 0
}

// Story is a complete parsed literary work. Stories handed out by the
// library are shared and must be treated as read-only.
type Story struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	RoomID   string         `json:"roomId,omitempty"`
	Emotion  common.Emotion `json:"emotion"`
	Sections []Section      `json:"sections"`
}

// StoryMetadata is a listing projection of Story.
type StoryMetadata struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Subtitle     string         `json:"subtitle,omitempty"`
	RoomID       string         `json:"roomId,omitempty"`
	Emotion      common.Emotion `json:"emotion"`
	Excerpt      string         `json:"excerpt"`
	ExcerptOther string         `json:"excerptOther,omitempty"`
}
