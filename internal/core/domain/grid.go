package domain

// GridDimensions is the row/column capacity of a single sheet,
// independent of how much of it currently holds data.
type GridDimensions struct {
	RowCount    int64
	ColumnCount int64
}

// Grow returns the dimensions expanded to cover need. A grid never
// shrinks: each axis is the max of the current and needed value.
func (g GridDimensions) Grow(need GridDimensions) GridDimensions {
	out := g
	if need.RowCount > out.RowCount {
		out.RowCount = need.RowCount
	}
	if need.ColumnCount > out.ColumnCount {
		out.ColumnCount = need.ColumnCount
	}
	return out
}
