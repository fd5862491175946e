package formatting

import (
	"strings"
	"time"

	"tstag/internal/types"
)

// InvalidDate is the preview shown for every style of an unparseable instant.
const InvalidDate = "Invalid Date"

// Formatter turns an instant into locale text. The timestamp renderer only
// depends on this interface.
type Formatter interface {
	Format(instant types.Instant, style types.Style) string
	Relative(instant types.Instant, now time.Time) string
}

// Layouts holds one Go time layout per absolute style.
type Layouts struct {
	ShortDateTime string
	LongDateTime  string
	ShortTime     string
	LongTime      string
	ShortDate     string
	LongDate      string
}

// DefaultLayouts mirrors the English localized formats LLL, LLLL, LT, LTS,
// L and LL.
func DefaultLayouts() Layouts {
	return Layouts{
		ShortDateTime: "January 2, 2006 3:04 PM",
		LongDateTime:  "Monday, January 2, 2006 3:04 PM",
		ShortTime:     "3:04 PM",
		LongTime:      "3:04:05 PM",
		ShortDate:     "01/02/2006",
		LongDate:      "January 2, 2006",
	}
}

// Merge returns l with blank fields filled from fallback.
func (l Layouts) Merge(fallback Layouts) Layouts {
	pick := func(value, def string) string {
		if strings.TrimSpace(value) == "" {
			return def
		}
		return value
	}
	return Layouts{
		ShortDateTime: pick(l.ShortDateTime, fallback.ShortDateTime),
		LongDateTime:  pick(l.LongDateTime, fallback.LongDateTime),
		ShortTime:     pick(l.ShortTime, fallback.ShortTime),
		LongTime:      pick(l.LongTime, fallback.LongTime),
		ShortDate:     pick(l.ShortDate, fallback.ShortDate),
		LongDate:      pick(l.LongDate, fallback.LongDate),
	}
}

func (l Layouts) forStyle(style types.Style) string {
	switch style {
	case types.StyleLongDateTime:
		return l.LongDateTime
	case types.StyleShortTime:
		return l.ShortTime
	case types.StyleLongTime:
		return l.LongTime
	case types.StyleShortDate:
		return l.ShortDate
	case types.StyleLongDate:
		return l.LongDate
	default:
		return l.ShortDateTime
	}
}

type LocalFormatter struct {
	layouts  Layouts
	location *time.Location
}

// NewLocalFormatter formats in loc (time.Local when nil). Blank layouts fall
// back to DefaultLayouts.
func NewLocalFormatter(layouts Layouts, loc *time.Location) *LocalFormatter {
	if loc == nil {
		loc = time.Local
	}
	return &LocalFormatter{
		layouts:  layouts.Merge(DefaultLayouts()),
		location: loc,
	}
}

func (f *LocalFormatter) Format(instant types.Instant, style types.Style) string {
	if !instant.Valid() {
		return InvalidDate
	}
	if style == types.StyleRelative {
		return f.Relative(instant, time.Now())
	}
	return instant.Time(f.location).Format(f.layouts.forStyle(style))
}

func (f *LocalFormatter) Relative(instant types.Instant, now time.Time) string {
	if !instant.Valid() {
		return InvalidDate
	}
	return relativePhrase(instant.Time(f.location), now)
}
