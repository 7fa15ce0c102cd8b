package text

// Devanagari Unicode block. Any character from it marks a line as written in
// the secondary language.
const (
	devanagariFirst = 'ऀ'
	devanagariLast  = 'ॿ'
)

// IsSecondary reports whether line belongs to the secondary (Devanagari
// script) language.
func IsSecondary(line string) bool {
	for _, sym := range line {
		if sym >= devanagariFirst && sym <= devanagariLast {
			return true
		}
	}
	return false
}
