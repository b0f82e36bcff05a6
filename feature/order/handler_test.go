package order_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"order-manager/core/archive/mocks"
	"order-manager/core/database"
	"order-manager/feature/order"
	"order-manager/feature/order/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OrderLine{}))

	app := fiber.New()
	mockClient := new(mocks.Client)
	feature := order.NewFeature(db, zap.NewNop(), mockClient, "test-bucket")
	require.NoError(t, feature.Load(app))

	return app, mockClient, db
}

func reconcileOrder(t *testing.T, app *fiber.App, orderNo, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest("POST", "/orders/"+orderNo+"/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleReconcile_CreatesAndReturnsLines(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "orders/SO-1.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	body := reconcileOrder(t, app, "SO-1", `[
		{"customer_code": "C001", "status": "confirmed", "item_code": "SKU-1", "quantity": 2},
		{"item_code": "SKU-2", "quantity": 1}
	]`)

	assert.Equal(t, float64(2), body["inserted"])
	assert.Equal(t, float64(0), body["updated"])
	lines := body["lines"].([]any)
	require.Len(t, lines, 2)
	first := lines[0].(map[string]any)
	assert.Equal(t, "C001", first["customer_code"])

	mockClient.AssertCalled(t, "PutObject", mock.Anything, "test-bucket", "orders/SO-1.json",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleReconcile_InvalidBody(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/orders/SO-1/reconcile", strings.NewReader(`{"not": "an array"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleReconcile_UnknownOrder(t *testing.T) {
	app, _, _ := setupTestApp(t)

	// Updates against an order that does not exist are a client error.
	req := httptest.NewRequest("POST", "/orders/SO-NONE/reconcile", strings.NewReader(`[{"id": 1, "quantity": 2}]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleReconcile_UnknownLineID(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	reconcileOrder(t, app, "SO-2", `[{"item_code": "SKU-1", "quantity": 1}]`)

	req := httptest.NewRequest("POST", "/orders/SO-2/reconcile", strings.NewReader(`[{"id": 99999, "is_deleted": true}]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleListOrders(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	reconcileOrder(t, app, "SO-1", `[{"customer_code": "C001", "item_code": "SKU-1", "quantity": 1}, {"item_code": "SKU-2", "quantity": 2}]`)
	reconcileOrder(t, app, "SO-2", `[{"customer_code": "C002", "item_code": "SKU-3", "quantity": 3}]`)

	req := httptest.NewRequest("GET", "/orders/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var summaries []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "SO-1", summaries[0]["order_no"])
	assert.Equal(t, float64(2), summaries[0]["line_count"])
	assert.Equal(t, "C002", summaries[1]["customer_code"])
}

func TestHandleGetOrder(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	reconcileOrder(t, app, "SO-1", `[{"item_code": "SKU-1", "quantity": 1}]`)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO-1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/orders/SO-NONE", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDeleteOrder(t *testing.T) {
	app, mockClient, db := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
	mockClient.On("RemoveObject", mock.Anything, "test-bucket", "orders/SO-1.json",
		mock.Anything).Return(nil)

	reconcileOrder(t, app, "SO-1", `[{"item_code": "SKU-1", "quantity": 1}, {"item_code": "SKU-2", "quantity": 2}]`)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/orders/SO-1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.OrderLine{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/orders/SO-1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleGetSnapshot(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	snapshot := `{"order_no": "SO-1", "saved_at": "2026-01-02T03:04:05Z", "lines": []}`
	mockClient.On("GetObject", mock.Anything, "test-bucket", "orders/SO-1.json",
		mock.Anything).Return(io.NopCloser(strings.NewReader(snapshot)), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/SO-1/snapshot", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var snap map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "SO-1", snap["order_no"])
}
