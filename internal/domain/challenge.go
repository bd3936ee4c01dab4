package domain

import "math/rand/v2"

// ChallengeCadence is how often a challenge repeats
type ChallengeCadence string

const (
	CadenceDaily   ChallengeCadence = "daily"
	CadenceWeekly  ChallengeCadence = "weekly"
	CadenceMonthly ChallengeCadence = "monthly"
	CadenceSpecial ChallengeCadence = "special"
)

// ChallengeCategory groups challenges by theme
type ChallengeCategory string

const (
	CategoryCommunication ChallengeCategory = "communication"
	CategoryIntimacy      ChallengeCategory = "intimacy"
	CategoryAdventure     ChallengeCategory = "adventure"
	CategoryGratitude     ChallengeCategory = "gratitude"
	CategoryCreative      ChallengeCategory = "creative"
)

// Challenge is a couple challenge
type Challenge struct {
	ID          string
	Title       string
	Description string
	Cadence     ChallengeCadence
	Category    ChallengeCategory
	Progress    int // 0-100
	Reward      string
}

// Challenges is the built-in challenge catalog
var Challenges = []Challenge{
	{ID: "1", Title: "Morning Love Notes", Description: "Leave a sweet note for your partner to find every morning this week.", Cadence: CadenceWeekly, Category: CategoryGratitude, Progress: 57, Reward: "Sweet Notes Badge"},
	{ID: "2", Title: "30 Days of Intimacy", Description: "Complete daily intimacy challenges to deepen your connection.", Cadence: CadenceMonthly, Category: CategoryIntimacy, Progress: 23, Reward: "Soulmates Theme"},
	{ID: "3", Title: "Photo Exchange", Description: "Send each other a photo of something that made you think of them today.", Cadence: CadenceDaily, Category: CategoryCreative, Reward: "10 love points"},
	{ID: "4", Title: "Adventure Day", Description: "Plan and go on a spontaneous adventure together this week.", Cadence: CadenceWeekly, Category: CategoryAdventure, Reward: "Adventurers Badge"},
	{ID: "5", Title: "Gratitude Jar", Description: "Write down one thing you're grateful about your partner each day.", Cadence: CadenceMonthly, Category: CategoryGratitude, Reward: "Gratitude Garden Theme"},
}

// Shuffle returns a shuffled copy of items; the input is left untouched
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := append([]T(nil), items...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// PickRandom returns a random element, or false for an empty slice
func PickRandom[T any](rng *rand.Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rng.IntN(len(items))], true
}
