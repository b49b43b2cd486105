package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload SheetPayload
		wantErr error
	}{
		{
			name: "valid payload",
			payload: SheetPayload{
				Name:    "Sheet1",
				Headers: []string{"a", "b", "c"},
				Rows:    [][]any{{"x", 1, true}},
			},
		},
		{
			name: "valid payload with no rows",
			payload: SheetPayload{
				Name:    "Empty",
				Headers: []string{"a"},
			},
		},
		{
			name: "missing sheet name",
			payload: SheetPayload{
				Headers: []string{"a"},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "missing headers",
			payload: SheetPayload{
				Name: "Sheet1",
				Rows: [][]any{{"x"}},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "row narrower than headers",
			payload: SheetPayload{
				Name:    "Sheet1",
				Headers: []string{"a", "b"},
				Rows:    [][]any{{"x"}},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "row wider than headers",
			payload: SheetPayload{
				Name:    "Sheet1",
				Headers: []string{"a"},
				Rows:    [][]any{{"x", "y"}},
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSheetPayloadRequiredGrid(t *testing.T) {
	p := SheetPayload{
		Name:    "Sheet1",
		Headers: []string{"a", "b", "c"},
		Rows:    [][]any{{"x", 1, true}, {"y", 2, false}},
	}

	grid := p.RequiredGrid()
	assert.Equal(t, int64(3), grid.RowCount, "headers plus two data rows")
	assert.Equal(t, int64(3), grid.ColumnCount)
}

func TestGridDimensionsGrow(t *testing.T) {
	tests := []struct {
		name    string
		current GridDimensions
		need    GridDimensions
		want    GridDimensions
	}{
		{
			name:    "grows both axes",
			current: GridDimensions{RowCount: 10, ColumnCount: 5},
			need:    GridDimensions{RowCount: 20, ColumnCount: 8},
			want:    GridDimensions{RowCount: 20, ColumnCount: 8},
		},
		{
			name:    "never shrinks",
			current: GridDimensions{RowCount: 1000, ColumnCount: 26},
			need:    GridDimensions{RowCount: 3, ColumnCount: 2},
			want:    GridDimensions{RowCount: 1000, ColumnCount: 26},
		},
		{
			name:    "grows one axis only",
			current: GridDimensions{RowCount: 100, ColumnCount: 4},
			need:    GridDimensions{RowCount: 5, ColumnCount: 9},
			want:    GridDimensions{RowCount: 100, ColumnCount: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.Grow(tt.need))
		})
	}
}
