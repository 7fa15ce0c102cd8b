package content

import (
	"strings"

	"storyroom/content/text"
)

// segmenter accumulates consecutive lines of each language until section
// boundary is detected.
type segmenter struct {
	primary   []string
	secondary []string
	sections  []Section
}

func (s *segmenter) pending() bool {
	return len(s.primary) > 0 || len(s.secondary) > 0
}

func (s *segmenter) paired() bool {
	return len(s.primary) > 0 && len(s.secondary) > 0
}

func (s *segmenter) finalize() {
	if !s.pending() {
		return
	}
	sec := TextSection(
		strings.TrimSpace(strings.Join(s.primary, "\n")),
		strings.TrimSpace(strings.Join(s.secondary, "\n")),
	)
	if !sec.Empty() {
		s.sections = append(s.sections, sec)
	}
	s.primary, s.secondary = nil, nil
}

// Segment walks body lines and produces ordered text and image sections.
// Adjacent primary and secondary language lines are paired into a single
// bilingual section, single blank line keeps a pair open when the next text
// line is in the other language.
func Segment(lines []string) []Section {
	var (
		s         segmenter
		lastBlank bool
	)

	for i, raw := range lines {
		line := text.Clean(raw)

		if m := imageRe.FindStringSubmatch(line); m != nil {
			s.finalize()
			if path := strings.TrimSpace(m[2]); len(path) > 0 {
				s.sections = append(s.sections, ImageSection(path, strings.TrimSpace(m[1])))
			}
			lastBlank = false
			continue
		}

		if len(line) == 0 {
			if s.pending() {
				switch {
				case s.paired():
					s.finalize()
				case lastBlank:
					s.finalize()
				default:
					next, ok := nextText(lines[i+1:])
					if !ok || text.IsSecondary(next) == (len(s.secondary) > 0) {
						s.finalize()
					}
				}
			}
			lastBlank = true
			continue
		}

		lastBlank = false
		if text.IsSecondary(line) {
			s.secondary = append(s.secondary, line)
		} else {
			s.primary = append(s.primary, line)
		}
	}
	s.finalize()

	if s.sections == nil {
		return []Section{}
	}
	return s.sections
}

func nextText(lines []string) (string, bool) {
	for _, l := range lines {
		if l = strings.TrimSpace(l); len(l) > 0 {
			return l, true
		}
	}
	return "", false
}
