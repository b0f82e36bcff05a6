package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFromMap(t *testing.T) {
	tests := []struct {
		name       string
		in         map[string]any
		wantID     *int64
		wantDelete bool
		wantFields int
	}{
		{
			name:       "new line",
			in:         map[string]any{"item_code": "SKU-1", "quantity": 1},
			wantFields: 2,
		},
		{
			name:       "persisted line with numeric id",
			in:         map[string]any{"id": float64(42), "quantity": 2},
			wantID:     int64p(42),
			wantFields: 1,
		},
		{
			name:       "deletion flag as string",
			in:         map[string]any{"id": "7", "is_deleted": "true"},
			wantID:     int64p(7),
			wantDelete: true,
		},
		{
			name:       "nil and non-positive ids are ignored",
			in:         map[string]any{"id": nil, "quantity": 1},
			wantFields: 1,
		},
		{
			name: "zero id stays a new line",
			in:   map[string]any{"id": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := ItemFromMap(tt.in)
			if tt.wantID == nil {
				assert.Nil(t, it.ID)
			} else {
				require.NotNil(t, it.ID)
				assert.Equal(t, *tt.wantID, *it.ID)
			}
			assert.Equal(t, tt.wantDelete, it.Delete)
			assert.Len(t, it.Fields, tt.wantFields)
		})
	}
}

func TestBuildPlan(t *testing.T) {
	plan := BuildPlan("SO-1", []Item{
		{Fields: map[string]any{"item_code": "SKU-1"}},
		{ID: int64p(2), Fields: map[string]any{"quantity": 3}},
		{ID: int64p(3), Delete: true},
		{Delete: true},
	})

	assert.Equal(t, "SO-1", plan.OrderNo)
	assert.Equal(t, 1, plan.ToInsert)
	assert.Equal(t, []int64{2}, plan.ToUpdate)
	assert.Equal(t, []int64{3}, plan.ToDelete)
	assert.Equal(t, 1, plan.Dropped)
}
