package types

import "time"

// Instant is a point in time at whole-second resolution. The zero value is
// the Unix epoch; use InvalidInstant for input that could not be parsed.
type Instant struct {
	seconds int64
	invalid bool
}

// InstantFromTime truncates t to whole seconds. time.Time.Unix floors, so
// sub-second instants before the epoch move toward minus infinity.
func InstantFromTime(t time.Time) Instant {
	return Instant{seconds: t.Unix()}
}

func InstantFromUnix(seconds int64) Instant {
	return Instant{seconds: seconds}
}

func InvalidInstant() Instant {
	return Instant{invalid: true}
}

func (i Instant) Valid() bool {
	return !i.invalid
}

// Unix returns epoch seconds. It is meaningless when the instant is invalid.
func (i Instant) Unix() int64 {
	return i.seconds
}

// Time reconstructs the instant in loc. A nil loc means UTC.
func (i Instant) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(i.seconds, 0).In(loc)
}

func (i Instant) Equal(other Instant) bool {
	return i.invalid == other.invalid && (i.invalid || i.seconds == other.seconds)
}
