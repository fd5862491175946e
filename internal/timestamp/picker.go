package timestamp

import (
	"strings"
	"time"

	"tstag/internal/types"
)

// PickerLayout is the editable local date/time form shown in the picker.
const PickerLayout = "2006-01-02T15:04"

var pickerLayouts = []string{
	PickerLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePicker reads a picker value. Empty means now. Values without a zone
// are wall-clock time in loc; RFC 3339 values keep their own offset.
// Unparseable input yields an invalid instant rather than an error.
func ParsePicker(value string, now time.Time, loc *time.Location) types.Instant {
	value = strings.TrimSpace(value)
	if value == "" {
		return types.InstantFromTime(now)
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return types.InstantFromTime(t)
	}
	for _, layout := range pickerLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return types.InstantFromTime(t)
		}
	}
	return types.InvalidInstant()
}

// FormatPicker writes t as local wall-clock minutes, the form the picker
// edits. Re-reading the result lands within a minute of t.
func FormatPicker(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(PickerLayout)
}
