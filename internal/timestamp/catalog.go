package timestamp

import (
	"time"

	"tstag/internal/formatting"
	"tstag/internal/types"
)

// PreviewFunc renders the human-readable side of a rule. now is the wall
// clock captured once per render.
type PreviewFunc func(f formatting.Formatter, instant types.Instant, now time.Time) string

type FormatRule struct {
	Name    string
	Style   types.Style
	Preview PreviewFunc
}

var catalog = []FormatRule{
	{Name: "Short Date/Time", Style: types.StyleNone, Preview: absolutePreview(types.StyleNone)},
	{Name: "Long Date/Time", Style: types.StyleLongDateTime, Preview: absolutePreview(types.StyleLongDateTime)},
	{Name: "Short Time", Style: types.StyleShortTime, Preview: absolutePreview(types.StyleShortTime)},
	{Name: "Long Time", Style: types.StyleLongTime, Preview: absolutePreview(types.StyleLongTime)},
	{Name: "Short Date", Style: types.StyleShortDate, Preview: absolutePreview(types.StyleShortDate)},
	{Name: "Long Date", Style: types.StyleLongDate, Preview: absolutePreview(types.StyleLongDate)},
	{Name: "Relative Time", Style: types.StyleRelative, Preview: relativePreview},
}

// Catalog returns the display-ordered rules. The slice is a copy.
func Catalog() []FormatRule {
	return append([]FormatRule(nil), catalog...)
}

// RuleForStyle finds the rule emitting style.
func RuleForStyle(style types.Style) (FormatRule, bool) {
	for _, rule := range catalog {
		if rule.Style == style {
			return rule, true
		}
	}
	return FormatRule{}, false
}

func absolutePreview(style types.Style) PreviewFunc {
	return func(f formatting.Formatter, instant types.Instant, _ time.Time) string {
		return f.Format(instant, style)
	}
}

func relativePreview(f formatting.Formatter, instant types.Instant, now time.Time) string {
	return f.Relative(instant, now)
}
