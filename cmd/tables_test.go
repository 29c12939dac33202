package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"foodfunk/core/config"
	"foodfunk/core/database"
	"foodfunk/core/matching"
	"foodfunk/core/source"
	"foodfunk/core/storage/mocks"
	"foodfunk/feature/preserving"
	"foodfunk/feature/rot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testTables(t *testing.T, withDB bool) (*tables, *config.Config) {
	path := filepath.Join(t.TempDir(), "foodfunk.toml")
	require.NoError(t, os.WriteFile(path, []byte("[preserving]\n\"foodfunk:icebox\" = 40\n\n[rot]\n\"minecraft:golden_apple\" = 3\n"), 0o644))

	cfg := &config.Config{}
	cfg.Properties.File = path
	cfg.Storage.Enabled = true
	cfg.Storage.Bucket = "foodfunk"
	cfg.Storage.Object = "config/foodfunk.toml"

	deps := tableDeps{store: new(mocks.Client)}
	if withDB {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, source.EnsureSchema(context.Background(), db))
		cfg.Properties.UseDatabase = true
		deps.db = db
	}
	return buildTables(cfg, zap.NewNop(), deps), cfg
}

func TestTables_Below(t *testing.T) {
	tbls, _ := testTables(t, true)

	srcs := tbls.sources[preserving.Section]
	require.Len(t, srcs, 3)

	assert.Equal(t, srcs[:1], tbls.below(preserving.Section, isStorage))
	assert.Equal(t, srcs[:2], tbls.below(preserving.Section, isDatabase))
}

func TestTables_DefaultDocumentSkipsFileKeys(t *testing.T) {
	tbls, _ := testTables(t, false)

	doc, err := tbls.defaultDocument(context.Background())
	require.NoError(t, err)

	pres, err := source.ParseSection(doc, source.FormatTOML, preserving.Section)
	require.NoError(t, err)
	assert.NotContains(t, pres, "foodfunk:icebox")

	rots, err := source.ParseSection(doc, source.FormatTOML, rot.Section)
	require.NoError(t, err)
	assert.Contains(t, rots, matching.FoodTag)
	assert.Contains(t, rots, rot.RottenFlesh)
	assert.NotContains(t, rots, "minecraft:golden_apple")
}

func TestTables_SeedableExcludesDatabaseLayer(t *testing.T) {
	tbls, _ := testTables(t, true)

	sets := tbls.seedable()
	require.Contains(t, sets, preserving.Section)
	for _, src := range sets[preserving.Section].lower {
		assert.False(t, isDatabase(src))
	}
	assert.Equal(t, preserving.DefaultEntries(), sets[preserving.Section].entries)
}
