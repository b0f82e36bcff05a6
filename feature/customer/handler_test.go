package customer_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"order-manager/core/database"
	"order-manager/feature/customer"
	"order-manager/feature/customer/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}))

	app := fiber.New()
	feature := customer.NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func createCustomer(t *testing.T, app *fiber.App, body string) *models.Customer {
	t.Helper()
	req := httptest.NewRequest("POST", "/customers/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var c models.Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	return &c
}

func TestCustomerCRUD(t *testing.T) {
	app := setupTestApp(t)

	created := createCustomer(t, app, `{"code": "C001", "name": "Acme Trading", "email": "orders@acme.example"}`)
	assert.Equal(t, "C001", created.Code)
	assert.NotZero(t, created.ID)

	// Read back
	resp, err := app.Test(httptest.NewRequest("GET", "/customers/C001", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Update
	req := httptest.NewRequest("PUT", "/customers/C001", strings.NewReader(`{"name": "Acme Trading K.K.", "address": "Tokyo"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var updated models.Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Acme Trading K.K.", updated.Name)
	assert.Equal(t, "Tokyo", updated.Address)
	assert.Equal(t, created.ID, updated.ID)

	// List
	resp, err = app.Test(httptest.NewRequest("GET", "/customers/", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var list []models.Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)

	// Delete
	resp, err = app.Test(httptest.NewRequest("DELETE", "/customers/C001", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/customers/C001", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateCustomer_Validation(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing code", `{"name": "Acme"}`, 400},
		{"missing name", `{"code": "C001"}`, 400},
		{"bad email", `{"code": "C001", "name": "Acme", "email": "not-an-email"}`, 400},
		{"valid", `{"code": "C001", "name": "Acme"}`, 201},
		{"duplicate code", `{"code": "C001", "name": "Other"}`, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/customers/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/customers/C404", strings.NewReader(`{"name": "Nobody"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
