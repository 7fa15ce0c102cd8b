package text

import (
	"iter"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
)

// Splitter breaks primary language text into sentences. Secondary language
// lines never go through it - title de-duplication only ever compares against
// the primary language title.
type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter loads english training data bundled with the tokenizer. On
// failure nil is returned, which is a valid Splitter treating every input as
// a single sentence.
func NewSplitter(log *zap.Logger) *Splitter {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data, turning off sentence splitting", zap.Error(err))
		return nil
	}
	return &Splitter{tok}
}

// Split returns slice of sentences with trailing spaces attached to the
// sentence they follow.
func (s *Splitter) Split(in string) []string {
	var result []string
	for sentence := range s.Sentences(in) {
		result = append(result, sentence)
	}
	return result
}

// Sentences returns an iterator over sentences.
func (s *Splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			yield(in)
			return
		}

		tokens := s.Tokenize(in)
		if len(tokens) == 0 {
			return
		}

		// Tokenizer hands sentence trailing spaces to the next sentence, move
		// them back where they belong.
		for i := 0; i < len(tokens)-1; i++ {
			text := tokens[i].Text
			next := tokens[i+1].Text
			for idx, sym := range next {
				if !unicode.IsSpace(sym) {
					text = text + next[0:idx]
					tokens[i+1].Text = next[idx:]
					break
				}
			}
			if !yield(text) {
				return
			}
		}
		yield(tokens[len(tokens)-1].Text)
	}
}

// Words returns an iterator over non-empty words separated by white space.
// NBSP is not treated as a separator.
func Words(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var word strings.Builder
		for _, sym := range in {
			if isSeparator(sym) {
				if word.Len() > 0 {
					if !yield(word.String()) {
						return
					}
					word.Reset()
				}
				continue
			}
			word.WriteRune(sym)
		}
		if word.Len() > 0 {
			yield(word.String())
		}
	}
}

func isSeparator(r rune) bool {
	if uint32(r) <= unicode.MaxLatin1 {
		switch r {
		case '\t', '\n', '\v', '\f', '\r', ' ', 0x85:
			return true
		}
		return false
	}
	return unicode.IsSpace(r)
}
