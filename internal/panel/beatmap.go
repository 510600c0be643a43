package panel

import (
	"strings"
	"time"
)

// Status is the online ranking state of a beatmap set.
type Status int

const (
	StatusNone Status = iota
	StatusGraveyard
	StatusWIP
	StatusPending
	StatusRanked
	StatusApproved
	StatusQualified
	StatusLoved
)

func (s Status) String() string {
	switch s {
	case StatusGraveyard:
		return "graveyard"
	case StatusWIP:
		return "wip"
	case StatusPending:
		return "pending"
	case StatusRanked:
		return "ranked"
	case StatusApproved:
		return "approved"
	case StatusQualified:
		return "qualified"
	case StatusLoved:
		return "loved"
	}
	return "none"
}

// Pill is the uppercase badge text. StatusNone has no badge.
func (s Status) Pill() string {
	if s == StatusNone {
		return ""
	}
	return strings.ToUpper(s.String())
}

// Difficulty is one playable map inside a set.
type Difficulty struct {
	Name  string
	Stars float64
}

// BeatmapSet carries the metadata a card displays. The Unicode fields are
// optional; empty values fall back to the romanised ones.
type BeatmapSet struct {
	ID             int
	Title          string
	TitleUnicode   string
	Artist         string
	ArtistUnicode  string
	Creator        string
	Source         string
	Status         Status
	PlayCount      int
	FavouriteCount int
	HasVideo       bool
	HasStoryboard  bool
	Difficulties   []Difficulty

	// Ranked is zero for sets that never reached a ranked state.
	Ranked time.Time
	Rating float64
}

// DisplayTitle picks the Unicode title when preferred and present.
func (s BeatmapSet) DisplayTitle(preferUnicode bool) string {
	return localised(s.Title, s.TitleUnicode, preferUnicode)
}

// DisplayArtist picks the Unicode artist when preferred and present.
func (s BeatmapSet) DisplayArtist(preferUnicode bool) string {
	return localised(s.Artist, s.ArtistUnicode, preferUnicode)
}

// MaxStars is the highest star rating in the set, or 0 without difficulties.
func (s BeatmapSet) MaxStars() float64 {
	best := 0.0
	for _, d := range s.Difficulties {
		best = max(best, d.Stars)
	}
	return best
}

func localised(romanised, unicode string, preferUnicode bool) string {
	if preferUnicode && unicode != "" {
		return unicode
	}
	if romanised == "" {
		return unicode
	}
	return romanised
}
