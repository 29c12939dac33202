package storage_test

import (
	"bytes"
	"context"
	"testing"

	"foodfunk/core/storage"
	"foodfunk/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ storage.Client = (*mocks.Client)(nil)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		wantErr  bool
	}{
		{"Bare", "localhost:9000", false, false},
		{"SchemeStripped", "http://minio.internal:9000", false, false},
		{"TLS", "https://s3.amazonaws.com", true, false},
		{"PathRejected", "localhost:9000/config", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  tt.endpoint,
				AccessKey: "key",
				SecretKey: "secret",
				UseSSL:    tt.useSSL,
				Bucket:    "foodfunk",
				Region:    "us-east-1",
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestMockClient(t *testing.T) {
	client := new(mocks.Client)
	ctx := context.Background()

	client.On("PutObject", ctx, "foodfunk", "config/foodfunk.toml", mock.Anything, int64(5), mock.Anything).
		Return(minio.UploadInfo{Key: "config/foodfunk.toml", Size: 5}, nil)
	client.On("GetObject", ctx, "foodfunk", "missing.toml", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	info, err := client.PutObject(ctx, "foodfunk", "config/foodfunk.toml", bytes.NewReader([]byte("[rot]")), 5, minio.PutObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)

	obj, err := client.GetObject(ctx, "foodfunk", "missing.toml", minio.GetObjectOptions{})
	assert.Nil(t, obj)
	assert.Equal(t, "NoSuchKey", minio.ToErrorResponse(err).Code)

	client.AssertExpectations(t)
}
