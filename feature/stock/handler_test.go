package stock_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"order-manager/core/database"
	"order-manager/feature/stock"
	"order-manager/feature/stock/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StockItem{}))

	app := fiber.New()
	feature := stock.NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func TestStockItemCRUD(t *testing.T) {
	app := setupTestApp(t)

	// Create
	req := httptest.NewRequest("POST", "/stock-items/", strings.NewReader(
		`{"code": "SKU-1", "name": "Widget", "unit": "pc", "unit_price": "100.50", "tax_rate": 10}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created models.StockItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "SKU-1", created.Code)
	assert.True(t, created.UnitPrice.Equal(decimal.RequireFromString("100.50")))

	// Update
	req = httptest.NewRequest("PUT", "/stock-items/SKU-1", strings.NewReader(
		`{"name": "Widget v2", "unit": "pc", "unit_price": "120.00", "tax_rate": 10}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var updated models.StockItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	// List and delete
	resp, err = app.Test(httptest.NewRequest("GET", "/stock-items/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/stock-items/SKU-1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/stock-items/SKU-1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateStockItem_Validation(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing code", `{"name": "Widget"}`, 400},
		{"tax rate out of range", `{"code": "SKU-1", "name": "Widget", "tax_rate": 101}`, 400},
		{"valid", `{"code": "SKU-1", "name": "Widget"}`, 201},
		{"duplicate", `{"code": "SKU-1", "name": "Widget"}`, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/stock-items/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
