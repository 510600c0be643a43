package ui

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/atomicstack/tabstrip/internal/panel"
)

// SortCriteria orders the beatmap listing. Each value is one tab.
type SortCriteria int

const (
	SortTitle SortCriteria = iota
	SortArtist
	SortCreator
	SortDifficulty
	SortRanked
	SortRating
	SortPlays
)

var sortCriteria = []SortCriteria{
	SortTitle, SortArtist, SortCreator, SortDifficulty, SortRanked, SortRating, SortPlays,
}

// AllSortCriteria yields every criterion in tab order.
func AllSortCriteria() iter.Seq[SortCriteria] {
	return slices.Values(sortCriteria)
}

func (s SortCriteria) String() string {
	switch s {
	case SortTitle:
		return "title"
	case SortArtist:
		return "artist"
	case SortCreator:
		return "creator"
	case SortDifficulty:
		return "difficulty"
	case SortRanked:
		return "ranked"
	case SortRating:
		return "rating"
	case SortPlays:
		return "plays"
	}
	return "unknown"
}

// sortCards orders cards in place. Text criteria ascend on the displayed
// metadata; numeric ones descend. Ties keep set IDs ascending.
func sortCards(cards []*panel.Card, by SortCriteria) {
	slices.SortStableFunc(cards, func(a, b *panel.Card) int {
		if c := compareBy(a, b, by); c != 0 {
			return c
		}
		return cmp.Compare(a.Set().ID, b.Set().ID)
	})
}

func compareBy(a, b *panel.Card, by SortCriteria) int {
	sa, sb := a.Set(), b.Set()
	switch by {
	case SortTitle:
		return compareFold(a.Title(), b.Title())
	case SortArtist:
		return compareFold(a.Artist(), b.Artist())
	case SortCreator:
		return compareFold(sa.Creator, sb.Creator)
	case SortDifficulty:
		return cmp.Compare(sa.MaxStars(), sb.MaxStars())
	case SortRanked:
		return sb.Ranked.Compare(sa.Ranked)
	case SortRating:
		return cmp.Compare(sb.Rating, sa.Rating)
	case SortPlays:
		return cmp.Compare(sb.PlayCount, sa.PlayCount)
	}
	return 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
