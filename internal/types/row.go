package types

// FormattedRow is one rendered variant of an instant. Rows have no identity
// beyond their position in the render that produced them.
type FormattedRow struct {
	Name    string `json:"name"`
	Style   Style  `json:"-"`
	Preview string `json:"preview"`
	Markup  string `json:"markup"`
}
