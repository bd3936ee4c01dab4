package domain

import "slices"

// MoodType identifies an entry mood
type MoodType string

const (
	MoodJoyful    MoodType = "joyful"
	MoodLoving    MoodType = "loving"
	MoodPeaceful  MoodType = "peaceful"
	MoodGrateful  MoodType = "grateful"
	MoodNostalgic MoodType = "nostalgic"
	MoodCozy      MoodType = "cozy"
	MoodExcited   MoodType = "excited"
	MoodRomantic  MoodType = "romantic"
	MoodPlayful   MoodType = "playful"
	MoodContent   MoodType = "content"
	MoodInspired  MoodType = "inspired"
	MoodBlessed   MoodType = "blessed"
)

// Mood describes how a mood is presented
type Mood struct {
	Type  MoodType
	Emoji string
	Label string
	Color string
}

// Moods is the selectable mood catalog, in display order
var Moods = []Mood{
	{MoodJoyful, "😊", "Joyful", "#FFD93D"},
	{MoodLoving, "🥰", "Loving", "#FF6B8A"},
	{MoodPeaceful, "😌", "Peaceful", "#A8D8EA"},
	{MoodGrateful, "🙏", "Grateful", "#7EC8A3"},
	{MoodNostalgic, "🥹", "Nostalgic", "#E6E6FA"},
	{MoodCozy, "☕", "Cozy", "#FFDAB9"},
	{MoodExcited, "🤩", "Excited", "#FFB347"},
	{MoodRomantic, "💕", "Romantic", "#FFB4B4"},
	{MoodPlayful, "😜", "Playful", "#98D8C8"},
	{MoodContent, "😊", "Content", "#DDA0DD"},
	{MoodInspired, "✨", "Inspired", "#87CEEB"},
	{MoodBlessed, "🌸", "Blessed", "#FFB6C1"},
}

// LookupMood returns the catalog entry for a mood type
func LookupMood(t MoodType) (Mood, bool) {
	i := slices.IndexFunc(Moods, func(m Mood) bool { return m.Type == t })
	if i < 0 {
		return Mood{}, false
	}
	return Moods[i], true
}

// MoodColor returns the palette color for a mood. The six base moods follow
// the appearance palette; the rest use their fixed catalog color.
func MoodColor(p Palette, t MoodType) string {
	switch t {
	case MoodJoyful:
		return p.Mood.Joyful
	case MoodLoving:
		return p.Mood.Loving
	case MoodPeaceful:
		return p.Mood.Peaceful
	case MoodGrateful:
		return p.Mood.Grateful
	case MoodNostalgic:
		return p.Mood.Nostalgic
	case MoodCozy:
		return p.Mood.Cozy
	}
	if m, ok := LookupMood(t); ok {
		return m.Color
	}
	return p.Text.Tertiary
}

// LoveLevel is a labelled band of the 0-100 love index
type LoveLevel struct {
	Min   int
	Max   int
	Emoji string
	Label string
	Color string
}

// LoveLevels covers 0-100 without gaps
var LoveLevels = []LoveLevel{
	{0, 20, "💔", "Distant", "#C4B4B4"},
	{21, 40, "🤍", "Neutral", "#E6E6FA"},
	{41, 60, "💗", "Warm", "#FFB4B4"},
	{61, 80, "💕", "Loving", "#FF8FAB"},
	{81, 100, "💖", "Overflowing", "#FF6B8A"},
}

// LoveLevelFor returns the band containing index; out-of-range values get "Warm"
func LoveLevelFor(index int) LoveLevel {
	for _, l := range LoveLevels {
		if index >= l.Min && index <= l.Max {
			return l
		}
	}
	return LoveLevels[2]
}
