package formatting

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	day   = 24 * time.Hour
	year  = 365*day + 5*time.Hour + 49*time.Minute + 12*time.Second
	month = year / 12
)

// Edges follow dayjs fromNow: counts are rounded to the nearest unit and a
// counted form only starts once the rounded count reaches two. A bucket whose
// format carries %d is rounded to its DivBy before lookup, and every rounded
// value stays inside the bucket it came from.
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: 44*time.Second + 500*time.Millisecond, Format: "a few seconds", DivBy: time.Second},
	{D: 90 * time.Second, Format: "a minute", DivBy: time.Minute},
	{D: 44*time.Minute + 30*time.Second, Format: "%d minutes", DivBy: time.Minute},
	{D: 90 * time.Minute, Format: "an hour", DivBy: time.Hour},
	{D: 21*time.Hour + 30*time.Minute, Format: "%d hours", DivBy: time.Hour},
	{D: 36 * time.Hour, Format: "a day", DivBy: day},
	{D: 25*day + 12*time.Hour, Format: "%d days", DivBy: day},
	{D: month + month/2, Format: "a month", DivBy: month},
	{D: 10*month + month/2, Format: "%d months", DivBy: month},
	{D: year + year/2, Format: "a year", DivBy: year},
	{D: math.MaxInt64, Format: "%d years", DivBy: year},
}

func relativePhrase(then, now time.Time) string {
	diff := now.Sub(then)
	future := then.After(now)
	if future {
		diff = -diff
	}
	rounded := roundToMagnitude(diff)
	phrase := humanize.CustomRelTime(now.Add(-rounded), now, "", "", relativeMagnitudes)
	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// roundToMagnitude rounds a non-negative diff to the unit of the counted
// bucket it falls in. Uncounted buckets keep the raw value.
func roundToMagnitude(diff time.Duration) time.Duration {
	for _, mag := range relativeMagnitudes {
		if mag.D > diff {
			if strings.Contains(mag.Format, "%d") {
				return diff.Round(mag.DivBy)
			}
			return diff
		}
	}
	return diff
}
