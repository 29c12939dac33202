package source_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"foodfunk/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foodfunk.toml")
	require.NoError(t, os.WriteFile(path, []byte(propertiesTOML), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	err := source.Watch(ctx, path, 20*time.Millisecond, zap.NewNop(), func(ctx context.Context) error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(propertiesTOML), 0o644))
	}

	assert.Eventually(t, func() bool { return reloads.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := source.Watch(context.Background(), "/does/not/exist/foodfunk.toml", time.Millisecond, zap.NewNop(),
		func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}
