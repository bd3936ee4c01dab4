package domain

import (
	"fmt"
	"slices"
	"time"
)

// MilestoneKind classifies relationship timeline events
type MilestoneKind string

const (
	MilestoneFirstDate     MilestoneKind = "first_date"
	MilestoneAnniversary   MilestoneKind = "anniversary"
	MilestoneFirstKiss     MilestoneKind = "first_kiss"
	MilestoneTravel        MilestoneKind = "travel"
	MilestoneBirthday      MilestoneKind = "birthday"
	MilestoneFirstArgument MilestoneKind = "first_argument"
	MilestoneMovedIn       MilestoneKind = "moved_in"
	MilestoneEngaged       MilestoneKind = "engaged"
	MilestoneMarried       MilestoneKind = "married"
	MilestoneBaby          MilestoneKind = "baby"
	MilestoneCustom        MilestoneKind = "custom"
)

// MilestoneStyle is how a kind of milestone is presented
type MilestoneStyle struct {
	Kind  MilestoneKind
	Emoji string
	Color string
}

// MilestoneStyles lists every milestone kind
var MilestoneStyles = []MilestoneStyle{
	{MilestoneFirstDate, "☕", "#FFDAB9"},
	{MilestoneAnniversary, "❤️", "#FF6B8A"},
	{MilestoneFirstKiss, "💋", "#FFB4B4"},
	{MilestoneTravel, "✈️", "#A8D8EA"},
	{MilestoneBirthday, "🎁", "#DDA0DD"},
	{MilestoneFirstArgument, "☁️", "#C4B4B4"},
	{MilestoneMovedIn, "🏠", "#7EC8A3"},
	{MilestoneEngaged, "💍", "#87CEEB"},
	{MilestoneMarried, "✨", "#FFD93D"},
	{MilestoneBaby, "👶", "#FFB6C1"},
	{MilestoneCustom, "🔖", "#E6E6FA"},
}

// LookupMilestoneStyle returns the style of kind; unknown kinds are shown as
// custom milestones
func LookupMilestoneStyle(kind MilestoneKind) (MilestoneStyle, bool) {
	i := slices.IndexFunc(MilestoneStyles, func(s MilestoneStyle) bool { return s.Kind == kind })
	if i < 0 {
		return MilestoneStyles[len(MilestoneStyles)-1], false
	}
	return MilestoneStyles[i], true
}

// Milestone is a dated event on the relationship timeline
type Milestone struct {
	ID          string
	Kind        MilestoneKind
	Title       string
	Date        time.Time
	Description string
}

// AnniversaryMilestones derives the first date, the six month mark and every
// yearly anniversary from start up to and including now
func AnniversaryMilestones(start, now time.Time) []Milestone {
	if start.IsZero() || start.After(now) {
		return nil
	}

	out := []Milestone{{
		ID:    "first-date",
		Kind:  MilestoneFirstDate,
		Title: "Our First Date",
		Date:  start,
	}}

	if half := start.AddDate(0, 6, 0); !half.After(now) {
		out = append(out, Milestone{
			ID:          "half-year",
			Kind:        MilestoneAnniversary,
			Title:       "6 Month Anniversary",
			Date:        half,
			Description: "Half a year of love, laughter, and growing together.",
		})
	}

	for n := 1; ; n++ {
		d := withYear(start, start.Year()+n)
		if d.After(now) {
			break
		}
		out = append(out, Milestone{
			ID:          fmt.Sprintf("anniversary-%d", n),
			Kind:        MilestoneAnniversary,
			Title:       fmt.Sprintf("%s Anniversary", ordinal(n)),
			Date:        d,
			Description: fmt.Sprintf("%d %s together.", n, pluralYears(n)),
		})
	}
	return out
}

// SortMilestones orders milestones oldest first, keeping the order of
// milestones on the same instant
func SortMilestones(ms []Milestone) {
	slices.SortStableFunc(ms, func(a, b Milestone) int {
		return a.Date.Compare(b.Date)
	})
}

// AnnualRecap holds the highlights of one calendar year
type AnnualRecap struct {
	Year             int
	TotalDays        int
	DiaryEntries     int
	TopMoods         []MoodType
	AverageLoveIndex int
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func pluralYears(n int) string {
	if n == 1 {
		return "year"
	}
	return "years"
}
