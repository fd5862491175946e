package types

// Style is the single-character token a markup tag carries after the
// seconds. StyleNone selects the platform default and has no suffix.
type Style rune

const (
	StyleNone          Style = 0
	StyleLongDateTime  Style = 'F'
	StyleShortTime     Style = 't'
	StyleLongTime      Style = 'T'
	StyleShortDate     Style = 'd'
	StyleLongDate      Style = 'D'
	StyleRelative      Style = 'R'
	styleShortDateTime Style = 'f'
)

// Suffix is the text written after the colon, or "" for StyleNone.
func (s Style) Suffix() string {
	if s == StyleNone {
		return ""
	}
	return string(rune(s))
}

func (s Style) String() string {
	if s == StyleNone {
		return "default"
	}
	return s.Suffix()
}

// ParseStyle accepts the tokens the renderer emits. "f" is the explicit
// spelling of the default style and maps to StyleNone; "" does too.
func ParseStyle(raw string) (Style, bool) {
	switch raw {
	case "", string(rune(styleShortDateTime)):
		return StyleNone, true
	}
	if len(raw) != 1 {
		return StyleNone, false
	}
	switch s := Style(raw[0]); s {
	case StyleLongDateTime, StyleShortTime, StyleLongTime, StyleShortDate, StyleLongDate, StyleRelative:
		return s, true
	}
	return StyleNone, false
}
