package content

import (
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"storyroom/content/text"
)

var (
	markerRe = regexp.MustCompile(`^==\s*(.*?)\s*==$`)
	roomRe   = regexp.MustCompile(`^==\s*(?i:room):\s*(\S.*?)\s*==$`)
	imageRe  = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)`)
)

// Key phrase shorter than this is considered too weak to identify title
// repeated inside a longer line.
const minKeyPhraseLength = 20

// Header is what marker lines at the very beginning of the story provide.
type Header struct {
	// Marked is set when the first line is a title marker, even an empty one.
	Marked   bool
	Title    string
	Subtitle string
	RoomID   string
}

// Parser converts raw story text into Story. It is safe for concurrent use.
type Parser struct {
	splitter *text.Splitter
	log      *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	return &Parser{
		splitter: text.NewSplitter(log),
		log:      log,
	}
}

// Parse extracts header and splits body into sections. Returned story has
// neither ID nor Emotion set and its Title is empty when the text has no
// title marker - these are the caller's business.
func (p *Parser) Parse(raw string) *Story {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	hdr, body := ExtractHeader(raw)
	if len(hdr.Title) > 0 {
		body = p.dropTitleRepeats(hdr.Title, body)
	}

	return &Story{
		Title:    hdr.Title,
		Subtitle: hdr.Subtitle,
		RoomID:   hdr.RoomID,
		Sections: Segment(body),
	}
}

func marker(line string) (string, bool) {
	m := markerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func roomMarker(line string) (string, bool) {
	m := roomRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(m[1])), true
}

// ExtractHeader recognizes title, optional subtitle and optional room marker
// lines and returns header with the lines following it. Room marker is never
// mistaken for a subtitle.
func ExtractHeader(raw string) (Header, []string) {
	lines := strings.Split(raw, "\n")
	line := func(i int) string {
		if i < len(lines) {
			return strings.TrimSpace(lines[i])
		}
		return ""
	}

	title, ok := marker(line(0))
	if !ok {
		return Header{}, lines
	}

	hdr := Header{Marked: true, Title: title}
	rest := 1
	if room, ok := roomMarker(line(1)); ok {
		hdr.RoomID, rest = room, 2
	} else if subtitle, ok := marker(line(1)); ok {
		hdr.Subtitle, rest = subtitle, 2
		if room, ok := roomMarker(line(2)); ok {
			hdr.RoomID, rest = room, 3
		}
	}
	return hdr, lines[rest:]
}

// dropTitleRepeats removes body lines repeating the title, strips sentences
// carrying title key phrase from longer lines and collapses resulting runs of
// blank lines.
func (p *Parser) dropTitleRepeats(title string, lines []string) []string {
	var (
		normTitle = text.Normalize(title)
		phrase    = text.KeyPhrase(title)
		phraseLen = text.Length(phrase)
		mapped    = make([]string, 0, len(lines))
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 {
			mapped = append(mapped, line)
			continue
		}

		normLine := text.Normalize(trimmed)
		if len(normTitle) > 0 && normLine == normTitle {
			p.log.Debug("Dropping line repeating title", zap.String("line", trimmed))
			mapped = append(mapped, "")
			continue
		}

		if phraseLen > minKeyPhraseLength && strings.Contains(normLine, phrase) {
			if float64(phraseLen)/float64(max(text.Length(normLine), 1)) > 0.5 {
				p.log.Debug("Dropping line dominated by title", zap.String("line", trimmed))
				mapped = append(mapped, "")
				continue
			}
			line = p.stripSentences(trimmed, phrase)
		}
		mapped = append(mapped, line)
	}

	out := make([]string, 0, len(mapped))
	for i, line := range mapped {
		if i > 0 && len(strings.TrimSpace(line)) == 0 && len(strings.TrimSpace(mapped[i-1])) == 0 {
			continue
		}
		out = append(out, line)
	}
	return out
}

// stripSentences removes sentences containing phrase from the line. Line is
// returned unchanged when nothing matched.
func (p *Parser) stripSentences(line, phrase string) string {
	var (
		kept    strings.Builder
		dropped bool
	)
	for sentence := range p.splitter.Sentences(line) {
		if strings.Contains(text.Normalize(sentence), phrase) {
			dropped = true
			continue
		}
		kept.WriteString(sentence)
	}
	if !dropped {
		return line
	}
	p.log.Debug("Stripped title sentences", zap.String("line", line), zap.String("rest", kept.String()))
	return strings.TrimSpace(kept.String())
}

var defaultParser = sync.OnceValue(func() *Parser {
	return NewParser(zap.NewNop())
})

// Parse uses shared parser which does not log.
func Parse(raw string) *Story {
	return defaultParser().Parse(raw)
}
