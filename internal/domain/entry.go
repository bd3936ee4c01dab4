package domain

import (
	"math"
	"time"
)

// ContentType is the kind of diary entry body
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentPhoto ContentType = "photo"
	ContentVoice ContentType = "voice"
)

// Author identifies who wrote an entry
type Author struct {
	Name      string
	IsPartner bool
}

// Reaction is an emoji reaction with its count
type Reaction struct {
	Emoji string
	Count int
}

// Entry is a diary entry written by one of the partners
type Entry struct {
	ID        string
	Author    Author
	Type      ContentType
	Text      string
	Mood      MoodType
	LoveIndex int // 0-100
	Private   bool
	Timestamp time.Time
	Likes     int
	Liked     bool // liked by the reader
	Comments  int
	Reactions []Reaction
}

// ToggleLike flips the reader's like and adjusts the like count
func (e *Entry) ToggleLike() {
	if e.Liked {
		e.Likes--
	} else {
		e.Likes++
	}
	e.Liked = !e.Liked
}

// LoveIndexValue implements LoveIndexed
func (e Entry) LoveIndexValue() int {
	return e.LoveIndex
}

// LoveIndexed is anything carrying a love index rating
type LoveIndexed interface {
	LoveIndexValue() int
}

// CalculateAverageLoveIndex returns the rounded mean love index, or 0 for no entries
func CalculateAverageLoveIndex[T LoveIndexed](entries []T) int {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.LoveIndexValue()
	}
	// half rounds up
	return int(math.Floor(float64(sum)/float64(len(entries)) + 0.5))
}

// InvalidDateKey is the group key used for entries without a usable timestamp
const InvalidDateKey = "Invalid Date"

// DateKeyLayout formats the calendar-date group key (e.g. "Mon Jul 15 2024")
const DateKeyLayout = "Mon Jan 02 2006"

// DateGroup is one calendar date and its entries in original order
type DateGroup[T any] struct {
	Date    string
	Entries []T
}

// GroupEntriesByDate partitions entries by the calendar date of their
// timestamp in loc (nil means time.Local). Groups appear in order of first
// occurrence; entries keep their relative order within a group.
func GroupEntriesByDate[T any](entries []T, stamp func(T) time.Time, loc *time.Location) []DateGroup[T] {
	if loc == nil {
		loc = time.Local
	}

	var groups []DateGroup[T]
	index := make(map[string]int)

	for _, e := range entries {
		key := dateKey(stamp(e), loc)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup[T]{Date: key})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	return groups
}

func dateKey(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return InvalidDateKey
	}
	return t.In(loc).Format(DateKeyLayout)
}

// EntryTimestamp is the stamp accessor for Entry
func EntryTimestamp(e Entry) time.Time {
	return e.Timestamp
}
