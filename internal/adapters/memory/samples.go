package memory

import (
	"time"

	"lovediary/internal/domain"
)

// SampleEntries returns the demo feed with timestamps placed relative to now:
// two entries today, one yesterday and one the day before.
func SampleEntries(now time.Time) []domain.Entry {
	at := func(daysAgo, hour, minute int) time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, now.Location())
	}

	partner := domain.Author{Name: "Sarah", IsPartner: true}
	you := domain.Author{Name: "You"}

	return []domain.Entry{
		{
			ID:        "1",
			Author:    partner,
			Type:      domain.ContentText,
			Text:      "Today we watched the sunset together from our balcony. The sky was painted in the most beautiful shades of orange and pink. In that moment, with your hand in mine, I felt so incredibly grateful for this life we're building together. These simple moments are what I treasure most.",
			Mood:      domain.MoodGrateful,
			LoveIndex: 92,
			Timestamp: at(0, 19, 32),
			Likes:     1,
			Liked:     true,
			Comments:  2,
			Reactions: []domain.Reaction{{Emoji: "💕", Count: 1}},
		},
		{
			ID:        "2",
			Author:    you,
			Type:      domain.ContentPhoto,
			Text:      "Our little breakfast date this morning. You make the best pancakes.",
			Mood:      domain.MoodCozy,
			LoveIndex: 88,
			Timestamp: at(0, 9, 15),
			Likes:     1,
			Comments:  1,
			Reactions: []domain.Reaction{{Emoji: "🥰", Count: 1}},
		},
		{
			ID:        "3",
			Author:    partner,
			Type:      domain.ContentVoice,
			Text:      "A voice message for you...",
			Mood:      domain.MoodLoving,
			LoveIndex: 95,
			Timestamp: at(1, 22, 10),
			Likes:     1,
			Liked:     true,
			Reactions: []domain.Reaction{{Emoji: "❤️", Count: 1}, {Emoji: "🥹", Count: 1}},
		},
		{
			ID:        "4",
			Author:    you,
			Type:      domain.ContentText,
			Text:      "I've been thinking about our trip to Paris next spring. I can't wait to walk along the Seine with you, to share croissants at a tiny café, to see the Eiffel Tower light up at night. Every adventure is better with you by my side.",
			Mood:      domain.MoodExcited,
			LoveIndex: 90,
			Private:   true,
			Timestamp: at(2, 15, 45),
		},
	}
}
