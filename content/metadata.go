package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"storyroom/content/text"
)

// DefaultExcerptLength is number of characters taken from the first section
// into listing excerpts.
const DefaultExcerptLength = 100

const ellipsis = "..."

// Metadata derives listing projection from the story. Excerpts come from the
// first section only: primary excerpt falls back to secondary language text
// when the section has no primary text.
func (s *Story) Metadata(excerptLength int) StoryMetadata {
	if excerptLength <= 0 {
		excerptLength = DefaultExcerptLength
	}

	md := StoryMetadata{
		ID:       s.ID,
		Title:    s.Title,
		Subtitle: s.Subtitle,
		RoomID:   s.RoomID,
		Emotion:  s.Emotion,
	}
	if len(s.Sections) == 0 {
		return md
	}

	first := s.Sections[0]
	switch {
	case strings.TrimSpace(first.Content) != "":
		md.Excerpt = text.Truncate(first.Content, excerptLength) + ellipsis
	case strings.TrimSpace(first.ContentOther) != "":
		md.Excerpt = text.Truncate(first.ContentOther, excerptLength) + ellipsis
	}
	if strings.TrimSpace(first.ContentOther) != "" {
		md.ExcerptOther = text.Truncate(first.ContentOther, excerptLength) + ellipsis
	}
	return md
}

// HumanizeID makes a title out of file name stem: parts separated by dashes
// and underscores become capitalized words.
func HumanizeID(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}
	return strings.Join(parts, " ")
}
