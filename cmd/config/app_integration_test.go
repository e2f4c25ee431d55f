//go:build integration
// +build integration

package config_test

import (
	"Groeneweide-Backend/cmd/config"
	migration "Groeneweide-Backend/cmd/database/migrate"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/events"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("groeneweide"),
		postgres.WithUsername("groeneweide"),
		postgres.WithPassword("groeneweide"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db, zap.NewNop()))

	cfg := &utils.Config{}
	cfg.App.Name = "groeneweide-test"
	cfg.App.Env = "test"

	app, err := config.NewApp(db, cfg, zap.NewNop(), events.NopPublisher{}, nil)
	require.NoError(t, err)
	return app
}

func call(t *testing.T, app *fiber.App, method, target string, payload any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func idOf(t *testing.T, data json.RawMessage, field string) uint {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	v, ok := m[field].(float64)
	require.True(t, ok, "missing %s in %s", field, string(data))
	return uint(v)
}

func TestIntegration(t *testing.T) {
	app := setupApp(t)

	t.Run("category lifecycle", func(t *testing.T) {
		status, res := call(t, app, fiber.MethodPost, "/api/categories", map[string]any{"name": "Zuivel"})
		require.Equal(t, fiber.StatusCreated, status, res.Error)
		id := idOf(t, res.Data, "category_id")

		status, _ = call(t, app, fiber.MethodPost, "/api/categories", map[string]any{"name": "Zuivel"})
		assert.Equal(t, fiber.StatusConflict, status)

		target := fmt.Sprintf("/api/categories/%d", id)
		status, _ = call(t, app, fiber.MethodDelete, target, nil)
		assert.Equal(t, fiber.StatusOK, status)

		status, _ = call(t, app, fiber.MethodDelete, target, nil)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("order lines and cascade", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		status, res := call(t, app, fiber.MethodPost, "/api/bookings", map[string]any{
			"moment_start": start,
			"moment_end":   start.Add(time.Hour),
		})
		require.Equal(t, fiber.StatusCreated, status, res.Error)
		bookingID := idOf(t, res.Data, "booking_id")

		status, res = call(t, app, fiber.MethodPost, "/api/lockers", map[string]any{"booking_id": bookingID})
		require.Equal(t, fiber.StatusCreated, status, res.Error)
		lockerID := idOf(t, res.Data, "locker_id")

		status, res = call(t, app, fiber.MethodPost, "/api/products", map[string]any{
			"category_id": 1,
			"name":        "Boerenkaas",
			"price":       695,
		})
		require.Equal(t, fiber.StatusCreated, status, res.Error)
		productID := idOf(t, res.Data, "product_id")

		// a locker that is not linked to the booking is rejected
		status, res = call(t, app, fiber.MethodPost, "/api/lockers", map[string]any{})
		require.Equal(t, fiber.StatusCreated, status, res.Error)
		freeLocker := idOf(t, res.Data, "locker_id")
		status, _ = call(t, app, fiber.MethodPost, "/api/orders", map[string]any{
			"locker_id":      freeLocker,
			"booking_id":     bookingID,
			"price":          695,
			"moment_created": start,
		})
		assert.Equal(t, fiber.StatusBadRequest, status)

		status, res = call(t, app, fiber.MethodPost, "/api/orders", map[string]any{
			"locker_id":      lockerID,
			"booking_id":     bookingID,
			"price":          695,
			"moment_created": start,
		})
		require.Equal(t, fiber.StatusCreated, status, res.Error)
		orderID := idOf(t, res.Data, "order_id")

		status, res = call(t, app, fiber.MethodPost, "/api/ordered_products", map[string]any{
			"order_id": orderID, "product_id": productID, "amount": 3,
		})
		require.Equal(t, fiber.StatusCreated, status, res.Error)

		status, _ = call(t, app, fiber.MethodPost, "/api/orderd_products", map[string]any{
			"order_id": orderID, "product_id": productID, "amount": 1,
		})
		assert.Equal(t, fiber.StatusConflict, status)

		status, _ = call(t, app, fiber.MethodPatch, fmt.Sprintf("/api/orders/%d", orderID), map[string]any{})
		assert.Equal(t, fiber.StatusBadRequest, status)

		// products referenced by an order cannot be removed
		status, _ = call(t, app, fiber.MethodDelete, fmt.Sprintf("/api/products/%d", productID), nil)
		assert.Equal(t, fiber.StatusConflict, status)

		status, res = call(t, app, fiber.MethodDelete, fmt.Sprintf("/api/orders/%d", orderID), nil)
		require.Equal(t, fiber.StatusOK, status, res.Error)
		assert.JSONEq(t, fmt.Sprintf(`{"order_id":%d,"lines_removed":1}`, orderID), string(res.Data))

		status, _ = call(t, app, fiber.MethodGet, fmt.Sprintf("/api/ordered_products/%d", orderID), nil)
		assert.Equal(t, fiber.StatusNotFound, status)

		status, _ = call(t, app, fiber.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
		assert.Equal(t, fiber.StatusNotFound, status)

		status, _ = call(t, app, fiber.MethodDelete, fmt.Sprintf("/api/products/%d", productID), nil)
		assert.Equal(t, fiber.StatusOK, status)
	})
}
