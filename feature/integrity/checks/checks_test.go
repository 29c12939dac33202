package checks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"foodfunk/core/database"
	"foodfunk/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const propertyFile = `
[preserving]
"foodfunk:icebox" = 100

[rot]
"minecraft:apple" = 5
`

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func TestCheckObject(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(false, nil)

		_, err := CheckObject(context.Background(), client, "foodfunk", "p.toml", []string{"rot"})
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("Object Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
		client.On("GetObject", mock.Anything, "foodfunk", "p.toml", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		report, err := CheckObject(context.Background(), client, "foodfunk", "p.toml", []string{"preserving", "rot"})
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.Equal(t, []string{"preserving", "rot"}, report.Missing)
	})

	t.Run("Section Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
		client.On("GetObject", mock.Anything, "foodfunk", "p.toml", mock.Anything).Return(body(propertyFile), nil)

		report, err := CheckObject(context.Background(), client, "foodfunk", "p.toml", []string{"preserving", "rot", "decay"})
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, []string{"preserving", "rot"}, report.Sections)
		assert.Equal(t, []string{"decay"}, report.Missing)
	})

	t.Run("Read Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
		client.On("GetObject", mock.Anything, "foodfunk", "p.toml", mock.Anything).Return(nil, errors.New("denied"))

		_, err := CheckObject(context.Background(), client, "foodfunk", "p.toml", nil)
		assert.ErrorContains(t, err, "denied")
	})
}

func TestFixObject(t *testing.T) {
	client := new(mocks.Client)
	data := []byte(propertyFile)
	client.On("PutObject", mock.Anything, "foodfunk", "p.toml", mock.Anything, int64(len(data)), mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	require.NoError(t, FixObject(context.Background(), client, "foodfunk", "p.toml", zap.NewNop(), data))
	client.AssertExpectations(t)
}

func TestCheckSchema(t *testing.T) {
	_, err := CheckSchema(nil)
	assert.Error(t, err)

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, RequiredColumns, report.MissingColumns)

	require.NoError(t, FixSchema(context.Background(), db))

	report, err = CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
	assert.Empty(t, report.MissingColumns)
}

type staticSource struct {
	entries map[string]any
	err     error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load(ctx context.Context) (map[string]any, error) {
	return s.entries, s.err
}

func atoi(raw any) error {
	_, err := strconv.Atoi(raw.(string))
	return err
}

func TestCheckSource(t *testing.T) {
	report := CheckSource(context.Background(), staticSource{entries: map[string]any{
		"a": "1", "b": "x", "c": "2", "d": "y",
	}}, atoi)
	assert.Equal(t, "invalid", report.Status)
	assert.Equal(t, 4, report.Entries)
	assert.Equal(t, []string{"b", "d"}, report.Invalid)

	report = CheckSource(context.Background(), staticSource{entries: map[string]any{"a": "1"}}, atoi)
	assert.Equal(t, "ok", report.Status)
	assert.Empty(t, report.Invalid)

	report = CheckSource(context.Background(), staticSource{err: errors.New("gone")}, atoi)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, "gone", report.Error)
}
