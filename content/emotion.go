package content

import (
	"strings"

	"storyroom/common"
	"storyroom/content/text"
)

// Order matters: cyclic assignment walks it and keyword detection prefers
// earlier emotion on equal score.
var palette = []common.Emotion{
	common.EmotionMelancholy,
	common.EmotionNostalgia,
	common.EmotionIntrospection,
	common.EmotionPassion,
	common.EmotionSerenity,
	common.EmotionLonging,
}

var keywords = map[common.Emotion][]string{
	common.EmotionMelancholy: {
		"loss", "empty", "fade", "disappear", "gone", "alone", "silence",
		"dark", "sad", "lonely", "abandon", "end", "final", "last", "never",
		"हानि", "खाली", "गायब", "अकेला", "चुप्पी", "अंधेरा", "दुख",
	},
	common.EmotionNostalgia: {
		"remember", "memory", "past", "once", "used to", "recall", "reminisce",
		"old", "childhood", "yesterday", "ago", "before", "then",
		"याद", "पुराना", "बचपन", "पहले", "कभी",
	},
	common.EmotionIntrospection: {
		"question", "wonder", "think", "reflect", "contemplate", "consider",
		"meaning", "purpose", "truth", "realize", "understand", "philosophy",
		"सोच", "प्रश्न", "अर्थ", "सच", "समझ",
	},
	common.EmotionPassion: {
		"intense", "fire", "burn", "desire", "crave", "yearn", "love", "hate",
		"strong", "powerful", "fierce", "wild", "urgent", "desperate",
		"इच्छा", "आग", "प्रेम", "तीव्र", "शक्तिशाली",
	},
	common.EmotionSerenity: {
		"calm", "peace", "quiet", "still", "tranquil", "gentle", "soft",
		"breeze", "flow", "smooth", "ease", "comfort", "warm",
		"शांति", "शांत", "कोमल", "आराम",
	},
	common.EmotionLonging: {
		"wish", "hope", "want", "miss", "ache", "yearn", "dream", "wait",
		"far", "distant", "away", "someday", "maybe", "if only",
		"इच्छा", "उम्मीद", "सपना", "दूर", "शायद",
	},
}

// Classifier assigns emotion to stories in load order.
type Classifier struct {
	mode common.EmotionMode
}

func NewClassifier(mode common.EmotionMode) *Classifier {
	if !mode.IsValid() {
		mode = common.EmotionModeCyclic
	}
	return &Classifier{mode: mode}
}

func (c *Classifier) Mode() common.EmotionMode {
	return c.mode
}

// Classify returns emotion for the story at zero based load position index.
func (c *Classifier) Classify(index int, s *Story) common.Emotion {
	if c.mode == common.EmotionModeKeywords && s != nil {
		return Detect(s.plainText())
	}
	return Cyclic(index)
}

// Cyclic walks the palette by index, so neighbouring stories never share a
// theme.
func Cyclic(index int) common.Emotion {
	n := len(palette)
	return palette[((index%n)+n)%n]
}

// Detect counts keyword occurrences for every emotion and returns the one
// scoring highest. Text without any keyword is introspection.
func Detect(in string) common.Emotion {
	words := make([]string, 0, 256)
	for w := range text.Words(text.Normalize(in)) {
		w = strings.Trim(w, `"'()[]«»“”‘’—–-।`)
		if len(w) > 0 {
			words = append(words, w)
		}
	}

	best, bestScore := common.EmotionIntrospection, 0
	for _, e := range palette {
		score := 0
		for _, kw := range keywords[e] {
			score += countPhrase(words, strings.Fields(kw))
		}
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	return best
}

func countPhrase(words, phrase []string) (n int) {
	if len(phrase) == 0 {
		return 0
	}
outer:
	for i := 0; i+len(phrase) <= len(words); i++ {
		for j, p := range phrase {
			if words[i+j] != p {
				continue outer
			}
		}
		n++
	}
	return n
}

func (s *Story) plainText() string {
	var b strings.Builder
	b.WriteString(s.Title)
	for _, sec := range s.Sections {
		for _, t := range []string{sec.Content, sec.ContentOther} {
			if len(t) > 0 {
				b.WriteByte('\n')
				b.WriteString(t)
			}
		}
	}
	return b.String()
}
