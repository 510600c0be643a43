package ui

import (
	"time"

	"github.com/atomicstack/tabstrip/internal/panel"
)

func rankedOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleSets is the built-in listing shown when no sets are supplied.
func SampleSets() []panel.BeatmapSet {
	return []panel.BeatmapSet{
		{
			ID: 39804, Title: "FREEDOM DiVE", Artist: "xi", Creator: "Nakagawa-Kanon",
			Source: "BMS", Status: panel.StatusRanked, PlayCount: 48213877, FavouriteCount: 52310,
			Difficulties: []panel.Difficulty{{Name: "Normal", Stars: 2.1}, {Name: "Hyper", Stars: 4.4}, {Name: "FOUR DIMENSIONS", Stars: 7.1}},
			Ranked: rankedOn(2012, time.June, 23), Rating: 9.4,
		},
		{
			ID: 41823, Title: "The Big Black", Artist: "The Quick Brown Fox", Creator: "Blue Dragon",
			Status: panel.StatusRanked, PlayCount: 30448120, FavouriteCount: 24871, HasVideo: true,
			Difficulties: []panel.Difficulty{{Name: "Easy", Stars: 1.8}, {Name: "WHO'S AFRAID OF THE BIG BLACK", Stars: 6.6}},
			Ranked: rankedOn(2012, time.May, 4), Rating: 9.1,
		},
		{
			ID: 93398, Title: "Kimi no Shiranai Monogatari", TitleUnicode: "君の知らない物語",
			Artist: "supercell", Creator: "Taru", Source: "Bakemonogatari",
			Status: panel.StatusApproved, PlayCount: 9120448, FavouriteCount: 11902, HasStoryboard: true,
			Difficulties: []panel.Difficulty{{Name: "Normal", Stars: 2.4}, {Name: "Hard", Stars: 3.3}, {Name: "Insane", Stars: 4.9}},
			Ranked: rankedOn(2013, time.August, 11), Rating: 9.3,
		},
		{
			ID: 320118, Title: "Shiori", TitleUnicode: "栞", Artist: "Kurikyu", ArtistUnicode: "クリープハイプ",
			Creator: "Sotarks", Status: panel.StatusLoved, PlayCount: 2304117, FavouriteCount: 4021,
			Difficulties: []panel.Difficulty{{Name: "Extra", Stars: 5.8}},
			Ranked: rankedOn(2019, time.February, 2), Rating: 8.7,
		},
		{
			ID: 482310, Title: "Night of Nights", Artist: "COOL&CREATE", Creator: "Blaizer",
			Source: "Touhou", Status: panel.StatusRanked, PlayCount: 5501293, FavouriteCount: 7733, HasVideo: true, HasStoryboard: true,
			Difficulties: []panel.Difficulty{{Name: "Light", Stars: 1.2}, {Name: "Normal", Stars: 2.3}, {Name: "Hard", Stars: 3.6}, {Name: "Lunatic", Stars: 5.1}},
			Ranked: rankedOn(2016, time.October, 30), Rating: 9.0,
		},
		{
			ID: 611207, Title: "Blue Zenith", Artist: "xi", Creator: "Asphyxia",
			Status: panel.StatusRanked, PlayCount: 17740321, FavouriteCount: 19222,
			Difficulties: []panel.Difficulty{{Name: "Hard", Stars: 3.9}, {Name: "FOUR DIMENSIONS", Stars: 7.4}},
			Ranked: rankedOn(2017, time.March, 15), Rating: 9.5,
		},
		{
			ID: 704412, Title: "Harumachi Clover", Artist: "Hanatan", Creator: "Monstrata",
			Status: panel.StatusQualified, PlayCount: 810042, FavouriteCount: 1530,
			Difficulties: []panel.Difficulty{{Name: "Swing", Stars: 2.9}, {Name: "Expert", Stars: 4.2}},
			Rating: 8.2,
		},
		{
			ID: 845101, Title: "Work in Progress", Artist: "Unknown Artist", Creator: "newbie",
			Status: panel.StatusWIP, PlayCount: 42, FavouriteCount: 0,
			Difficulties: []panel.Difficulty{{Name: "Draft", Stars: 0.9}},
		},
		{
			ID: 902215, Title: "Dead to Me", Artist: "Camellia", Creator: "Shiirn",
			Status: panel.StatusGraveyard, PlayCount: 15821, FavouriteCount: 88,
			Difficulties: []panel.Difficulty{{Name: "Nightmare", Stars: 6.9}},
			Rating: 7.4,
		},
	}
}
