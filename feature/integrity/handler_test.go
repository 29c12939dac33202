package integrity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"foodfunk/core/database"
	"foodfunk/core/source"
	"foodfunk/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type staticSource map[string]any

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load(ctx context.Context) (map[string]any, error) { return s, nil }

func object(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func positive(raw any) error {
	if n, ok := raw.(int); !ok || n < 0 {
		return assert.AnError
	}
	return nil
}

func setupTestApp(t *testing.T, client *mocks.Client, db *gorm.DB) *fiber.App {
	opts := Options{
		Bucket:   "foodfunk",
		Object:   "config/foodfunk.toml",
		DB:       db,
		Defaults: func(context.Context) ([]byte, error) { return []byte("[rot]\n"), nil },
		Tables: []Table{
			{Name: "rot", Sources: []source.Source{staticSource{"minecraft:apple": 5, "minecraft:cake": -2}}, Validate: positive},
		},
	}
	if client != nil {
		opts.Client = client
	}

	app := fiber.New()
	feature := NewFeature(opts, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func sqliteDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestLoader(t *testing.T) {
	feature := NewFeature(Options{}, zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(t, nil, nil)
		status, _ := decode(t, app, "/integrity/storage")
		assert.Equal(t, fiber.StatusNotImplemented, status)
	})

	t.Run("Fix Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
		client.On("GetObject", mock.Anything, "foodfunk", "config/foodfunk.toml", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
		client.On("PutObject", mock.Anything, "foodfunk", "config/foodfunk.toml", mock.Anything, int64(6), mock.Anything).
			Return(minio.UploadInfo{}, nil).Once()

		app := setupTestApp(t, client, nil)

		status, body := decode(t, app, "/integrity/storage")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, false, body["exists"])

		status, body = decode(t, app, "/integrity/storage?fix=true")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "fixed", body["status"])
		client.AssertExpectations(t)
	})

	t.Run("Refuses Overwrite", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
		client.On("GetObject", mock.Anything, "foodfunk", "config/foodfunk.toml", mock.Anything).Return(object("[preserving]\n"), nil)

		app := setupTestApp(t, client, nil)
		status, _ := decode(t, app, "/integrity/storage?fix=true")
		assert.Equal(t, fiber.StatusConflict, status)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleDatabaseCheck(t *testing.T) {
	app := setupTestApp(t, nil, sqliteDB(t))

	status, body := decode(t, app, "/integrity/database")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "error", body["status"])

	status, body = decode(t, app, "/integrity/database?fix=true")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "fixed", body["status"])

	_, body = decode(t, app, "/integrity/database")
	assert.Equal(t, "ok", body["status"])
}

func TestHandleSourcesCheck(t *testing.T) {
	app := setupTestApp(t, nil, nil)

	status, body := decode(t, app, "/integrity/sources")
	require.Equal(t, fiber.StatusOK, status)

	reports := body["rot"].([]any)
	require.Len(t, reports, 1)
	report := reports[0].(map[string]any)
	assert.Equal(t, "invalid", report["status"])
	assert.Equal(t, []any{"minecraft:cake"}, report["invalid"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "foodfunk").Return(false, assert.AnError)

	app := setupTestApp(t, client, nil)
	status, body := decode(t, app, "/integrity")
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, "error", body["storage"].(map[string]any)["status"])
	assert.Equal(t, "disabled", body["database"].(map[string]any)["status"])
	assert.Contains(t, body["sources"], "rot")
}

func TestService_FixStorageDefaults(t *testing.T) {
	client := new(mocks.Client)

	svc := NewService(Options{Client: client, Bucket: "foodfunk", Object: "config/foodfunk.toml"}, zap.NewNop())
	assert.ErrorIs(t, svc.FixStorage(context.Background()), ErrNotConfigured)

	svc = NewService(Options{
		Client:   client,
		Bucket:   "foodfunk",
		Object:   "config/foodfunk.toml",
		Defaults: func(context.Context) ([]byte, error) { return nil, assert.AnError },
	}, zap.NewNop())
	assert.ErrorIs(t, svc.FixStorage(context.Background()), assert.AnError)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
