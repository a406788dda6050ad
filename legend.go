package lexcloud

import "sort"

// LegendRow is one reference-key entry: a category tag, its human-readable
// name, and its display color.
type LegendRow struct {
	Tag       PartOfSpeech
	Name      string
	Hex       string
	ColorName string
}

// Legend renders the full style table as ordered rows. Every entry of the
// table appears regardless of what any particular distribution contains;
// the legend is a property of the table, not of a render.
func Legend(styles StyleTable) []LegendRow {
	rows := make([]LegendRow, 0, len(styles))
	for pos, style := range styles {
		rows = append(rows, LegendRow{
			Tag:       pos,
			Name:      pos.Name(),
			Hex:       style.Hex,
			ColorName: style.Name,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}
