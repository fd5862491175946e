package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tstag/internal/types"
)

const (
	markupPrefix = "<t:"
	markupSuffix = ">"
	nanSeconds   = "NaN"
)

var (
	ErrNotMarkup    = errors.New("not a timestamp tag")
	ErrInvalidStyle = errors.New("unknown timestamp style")
)

// Markup builds <t:SECONDS> or <t:SECONDS:STYLE>.
func Markup(seconds int64, style types.Style) string {
	return buildMarkup(strconv.FormatInt(seconds, 10), style)
}

// MarkupFor is Markup for an instant. Invalid instants keep the tag shape
// with NaN in place of the seconds.
func MarkupFor(instant types.Instant, style types.Style) string {
	if !instant.Valid() {
		return buildMarkup(nanSeconds, style)
	}
	return Markup(instant.Unix(), style)
}

func buildMarkup(seconds string, style types.Style) string {
	var b strings.Builder
	b.WriteString(markupPrefix)
	b.WriteString(seconds)
	if suffix := style.Suffix(); suffix != "" {
		b.WriteByte(':')
		b.WriteString(suffix)
	}
	b.WriteString(markupSuffix)
	return b.String()
}

// ParseMarkup decodes a single tag. Surrounding whitespace is ignored.
func ParseMarkup(tag string) (types.Instant, types.Style, error) {
	raw := strings.TrimSpace(tag)
	if !strings.HasPrefix(raw, markupPrefix) || !strings.HasSuffix(raw, markupSuffix) {
		return types.Instant{}, types.StyleNone, fmt.Errorf("%w: %q", ErrNotMarkup, tag)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(raw, markupPrefix), markupSuffix)
	secondsText, styleText, hasStyle := strings.Cut(body, ":")
	seconds, err := strconv.ParseInt(secondsText, 10, 64)
	if err != nil {
		return types.Instant{}, types.StyleNone, fmt.Errorf("%w: seconds %q", ErrNotMarkup, secondsText)
	}
	style, ok := types.ParseStyle(styleText)
	if !ok || (hasStyle && styleText == "") {
		return types.Instant{}, types.StyleNone, fmt.Errorf("%w: %q", ErrInvalidStyle, styleText)
	}
	return types.InstantFromUnix(seconds), style, nil
}
