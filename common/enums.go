// Enums shared between content model, repository and HTTP layer. Kept in a
// separate package so that neither of them has to import the other just to
// agree on a vocabulary.
package common

//go:generate go tool go-enum --marshal --names --values

// Emotional theme assigned to a story, drives visual palette.
// ENUM(melancholy, nostalgia, introspection, passion, serenity, longing)
type Emotion string

// Kind of a story section.
// ENUM(text, image)
type SectionKind string

// Horizontal placement of a text section.
// ENUM(center, left, right)
type Alignment string

// How emotions are assigned to loaded stories.
// ENUM(cyclic, keywords)
type EmotionMode string

// Palette returns colors associated with emotion. Unknown values get
// melancholy colors.
func (e Emotion) Palette() Palette {
	if p, ok := palettes[e]; ok {
		return p
	}
	return palettes[EmotionMelancholy]
}

// Palette is a set of CSS colors for an emotion.
type Palette struct {
	Base   string `json:"base"`
	Accent string `json:"accent"`
	Glow   string `json:"glow"`
	Text   string `json:"text"`
}

var palettes = map[Emotion]Palette{
	EmotionMelancholy:    {Base: "#1a1a2e", Accent: "#16213e", Glow: "#0f3460", Text: "#e94560"},
	EmotionNostalgia:     {Base: "#2d1b3d", Accent: "#3d2a4f", Glow: "#4a3a5a", Text: "#d4a574"},
	EmotionIntrospection: {Base: "#0d1b2a", Accent: "#1b263b", Glow: "#415a77", Text: "#778da9"},
	EmotionPassion:       {Base: "#2d0a1a", Accent: "#4a0e2e", Glow: "#6b1a3a", Text: "#c41e3a"},
	EmotionSerenity:      {Base: "#0a1929", Accent: "#132f4c", Glow: "#1e4976", Text: "#4fc3f7"},
	EmotionLonging:       {Base: "#1a0d1a", Accent: "#2d1a2d", Glow: "#3d2a3d", Text: "#b886d9"},
}

// Life cycle state of an ambient audio track.
// ENUM(idle, fadingIn, steady, fadingOut, paused)
type TrackState string

// Command accepted by ambient audio engine control surface.
// ENUM(context, mute, unmute, toggle, silence, normal)
type AmbientCommand string
