package profile_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"order-manager/core/database"
	"order-manager/feature/profile"
	"order-manager/feature/profile/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.AdminProfile{},
		&models.DistributorProfile{},
		&models.CorporateProfile{},
	))

	app := fiber.New()
	feature := profile.NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func putProfile(t *testing.T, app *fiber.App, kind, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest("PUT", "/profiles/"+kind, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestProfileUpsertAndGet(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		kind string
		body string
	}{
		{"admin", `{"name": "Ops Team", "email": "ops@example.com", "phone": "03-0000-0000"}`},
		{"distributor", `{"name": "Dist Co.", "contact_name": "Suzuki", "address": "Osaka", "fax": "06-0000-0000", "bank_info": "Mizuho 123-4567890"}`},
		{"corporate", `{"name": "Corp Inc.", "registration_no": "T1234567890123", "address": "Nagoya", "postal_code": "460-0001"}`},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			// Missing profiles are 404 until the first write.
			resp, err := app.Test(httptest.NewRequest("GET", "/profiles/"+tt.kind, nil))
			require.NoError(t, err)
			assert.Equal(t, 404, resp.StatusCode)

			saved := putProfile(t, app, tt.kind, tt.body)
			assert.Equal(t, tt.kind, saved["kind"])

			resp, err = app.Test(httptest.NewRequest("GET", "/profiles/"+tt.kind, nil))
			require.NoError(t, err)
			require.Equal(t, 200, resp.StatusCode)

			var got map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, saved["name"], got["name"])
			assert.Equal(t, saved["bank_info"], got["bank_info"])
		})
	}
}

func TestProfileUpsertOverwrites(t *testing.T) {
	app := setupTestApp(t)

	putProfile(t, app, "admin", `{"name": "Ops Team"}`)
	updated := putProfile(t, app, "admin", `{"name": "Platform Team", "email": "platform@example.com"}`)

	assert.Equal(t, "Platform Team", updated["name"])
	assert.Equal(t, "platform@example.com", updated["email"])
}

func TestProfileUnknownKind(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/profiles/wholesale", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	req := httptest.NewRequest("PUT", "/profiles/wholesale", strings.NewReader(`{"name": "X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestProfileValidation(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/profiles/admin", strings.NewReader(`{"email": "ops@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
