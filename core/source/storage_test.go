package source_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"foodfunk/core/source"
	"foodfunk/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStorageSource_Load(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
	client.On("GetObject", mock.Anything, "foodfunk", "config/foodfunk.toml", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(propertiesTOML))), nil)

	src := source.NewStorageSource(client, "foodfunk", "config/foodfunk.toml", "rot")
	assert.Equal(t, "storage:foodfunk/config/foodfunk.toml", src.Name())

	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	client.AssertExpectations(t)
}

func TestStorageSource_Errors(t *testing.T) {
	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(false, nil)

		_, err := source.NewStorageSource(client, "foodfunk", "a.toml", "rot").Load(context.Background())
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(false, errors.New("unreachable"))

		_, err := source.NewStorageSource(client, "foodfunk", "a.toml", "rot").Load(context.Background())
		assert.ErrorContains(t, err, "unreachable")
	})

	t.Run("GetObjectFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "foodfunk").Return(true, nil)
		client.On("GetObject", mock.Anything, "foodfunk", "a.toml", mock.Anything).
			Return(nil, errors.New("no such key"))

		_, err := source.NewStorageSource(client, "foodfunk", "a.toml", "rot").Load(context.Background())
		assert.ErrorContains(t, err, "no such key")
	})
}
