package reconcile

import (
	"testing"

	"order-manager/feature/order/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }

func TestHeaderFromItems(t *testing.T) {
	tests := []struct {
		name       string
		items      []Item
		wantNil    bool
		wantStatus string
		wantCode   string
	}{
		{
			name:    "all deletions yields no header",
			items:   []Item{{ID: int64p(1), Delete: true}},
			wantNil: true,
		},
		{
			name: "line with id wins over new line",
			items: []Item{
				{Fields: map[string]any{"customer_code": "NEW", "status": "draft"}},
				{ID: int64p(7), Fields: map[string]any{"customer_code": "C007", "status": "confirmed"}},
			},
			wantStatus: "confirmed",
			wantCode:   "C007",
		},
		{
			name: "first new line when nothing is persisted",
			items: []Item{
				{Fields: map[string]any{"customer_code": "C001"}},
				{Fields: map[string]any{"customer_code": "C002"}},
			},
			wantStatus: StatusPending,
			wantCode:   "C001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := HeaderFromItems(tt.items)
			if tt.wantNil {
				assert.Nil(t, header)
				return
			}
			require.NotNil(t, header)
			assert.Equal(t, tt.wantStatus, header["status"])
			assert.Equal(t, tt.wantCode, header["customer_code"])
		})
	}
}

func TestFilterUpdatable(t *testing.T) {
	got := FilterUpdatable(map[string]any{
		"quantity":      "3",
		"unit_price":    "12.50",
		"customer_code": "C001", // order-level, not updatable per line
		"bogus":         "x",
	})

	require.Len(t, got, 2)
	assert.Equal(t, 3, got["quantity"])
	assert.True(t, got["unit_price"].(decimal.Decimal).Equal(decimal.RequireFromString("12.50")))
}

func TestDiffFields(t *testing.T) {
	line := &models.OrderLine{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("12.50"),
		ItemCode:  "SKU-1",
	}

	got := diffFields(line, map[string]any{
		"quantity":   3,
		"unit_price": decimal.RequireFromString("12.5"), // equal in value, different scale
		"item_code":  "SKU-2",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "SKU-2", got["item_code"])
}

func TestBuildLine(t *testing.T) {
	header := DefaultHeader()
	header["customer_code"] = "C001"
	header["status"] = "confirmed"

	line := BuildLine("SO-1", header, map[string]any{
		"item_code": "SKU-1",
		"quantity":  2,
		"amount":    "20.00",
		"bogus":     "ignored",
	})

	assert.Equal(t, "SO-1", line.OrderNo)
	assert.Equal(t, "C001", line.CustomerCode)
	assert.Equal(t, "confirmed", line.Status)
	assert.Equal(t, "SKU-1", line.ItemCode)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.Amount.Equal(decimal.RequireFromString("20.00")))
}

func TestBuildLineNilHeader(t *testing.T) {
	line := BuildLine("SO-1", nil, map[string]any{"item_code": "SKU-1"})

	assert.Equal(t, StatusPending, line.Status)
	assert.True(t, line.TotalAmount.IsZero())
}
