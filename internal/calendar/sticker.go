package calendar

import "time"

// fixedStickers pins holiday glyphs to month/day pairs. Evaluated in
// order; first match wins.
var fixedStickers = []struct {
	month time.Month
	day   int
	glyph string
}{
	{time.January, 1, "🎉"},
	{time.February, 14, "❤️"},
	{time.March, 17, "☘️"},
	{time.July, 4, "🇺🇸"},
	{time.October, 31, "🎃"},
	{time.December, 25, "🎄"},
	{time.December, 31, "🎊"},
}

const thanksgivingGlyph = "🦃"

// HolidaySticker returns the glyph pinned to a date, or "" when the date
// has none. Thanksgiving is computed, not tabled: the first Thursday of
// November plus three weeks.
func HolidaySticker(date time.Time) string {
	for _, f := range fixedStickers {
		if date.Month() == f.month && date.Day() == f.day {
			return f.glyph
		}
	}
	if date.Month() == time.November && date.Day() == thanksgivingDay(date.Year()) {
		return thanksgivingGlyph
	}
	return ""
}

func thanksgivingDay(year int) int {
	d := time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Thursday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Day() + 21
}

// ItemSticker returns the first creator-attached sticker among items, or
// "" when none carries one. Item stickers and holiday stickers are
// independent; a month cell can show both.
func ItemSticker(items []Item) string {
	for _, it := range items {
		if it.Sticker != "" {
			return it.Sticker
		}
	}
	return ""
}
