package timestamp

import (
	"time"

	"tstag/internal/formatting"
	"tstag/internal/types"
)

type Renderer struct {
	formatter formatting.Formatter
	now       func() time.Time
	rules     []FormatRule
}

// NewRenderer renders the full catalog. A nil now uses time.Now.
func NewRenderer(formatter formatting.Formatter, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		formatter: formatter,
		now:       now,
		rules:     Catalog(),
	}
}

// RenderTime truncates t to whole seconds and renders it.
func (r *Renderer) RenderTime(t time.Time) []types.FormattedRow {
	return r.Render(types.InstantFromTime(t))
}

// Render returns one row per catalog rule, in catalog order. Markup and
// every preview are derived from the same whole-second instant.
func (r *Renderer) Render(instant types.Instant) []types.FormattedRow {
	now := r.now()
	rows := make([]types.FormattedRow, 0, len(r.rules))
	for _, rule := range r.rules {
		rows = append(rows, types.FormattedRow{
			Name:    rule.Name,
			Style:   rule.Style,
			Preview: rule.Preview(r.formatter, instant, now),
			Markup:  MarkupFor(instant, rule.Style),
		})
	}
	return rows
}

// RenderStyle renders the single catalog row for style.
func (r *Renderer) RenderStyle(instant types.Instant, style types.Style) (types.FormattedRow, bool) {
	rule, ok := RuleForStyle(style)
	if !ok {
		return types.FormattedRow{}, false
	}
	return types.FormattedRow{
		Name:    rule.Name,
		Style:   rule.Style,
		Preview: rule.Preview(r.formatter, instant, r.now()),
		Markup:  MarkupFor(instant, rule.Style),
	}, true
}
