package content

import (
	"storyroom/utils/debug"
)

// String returns readable tree of the story, used in debug reports.
func (s *Story) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "story %q [%s]", s.ID, s.Emotion)
	tw.Text(1, "title", s.Title)
	tw.Text(1, "subtitle", s.Subtitle)
	tw.Text(1, "room", s.RoomID)
	tw.Line(1, "sections: %d", len(s.Sections))
	for i, sec := range s.Sections {
		tw.Line(2, "#%d %s %s", i, sec.Kind, sec.Alignment)
		tw.Text(3, "content", sec.Content)
		tw.Text(3, "other", sec.ContentOther)
		tw.Text(3, "path", sec.Path)
		tw.Text(3, "alt", sec.Alt)
	}
	return tw.String()
}
