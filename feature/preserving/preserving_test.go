package preserving_test

import (
	"testing"

	"foodfunk/core/matching"
	"foodfunk/feature/preserving"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chestTile struct{}

type furnaceTile struct{}

func newTable(t *testing.T, entries map[string]int) *matching.Table[int] {
	t.Helper()
	reg := matching.NewMemoryRegistry()
	preserving.Register(reg)
	reg.RegisterTile(&chestTile{}, matching.MustParseResourceLocation("minecraft:chest"))

	tbl := matching.New(preserving.Section, entries, preserving.NoPreserving, matching.WithRegistry(reg))
	preserving.Defaults(tbl)
	return tbl
}

func TestDoesPreserve(t *testing.T) {
	tbl := newTable(t, map[string]int{"minecraft:chest": 0})

	icebox := preserving.Icebox.NewTileEntity(1, 64, -3)
	assert.True(t, preserving.DoesPreserve(tbl, icebox))
	assert.True(t, preserving.DoesPreserve(tbl, &chestTile{}), "explicit zero ratio is still configured")
	assert.False(t, preserving.DoesPreserve(tbl, &furnaceTile{}))
	assert.False(t, preserving.DoesPreserve(tbl, nil))
}

func TestAttachCapabilities(t *testing.T) {
	tbl := newTable(t, map[string]int{"minecraft:chest": 25})

	var attached *preserving.Preserving
	attach := func(p *preserving.Preserving) { attached = p }

	tile := preserving.Icebox.NewTileEntity(0, 0, 0)
	assert.True(t, preserving.AttachCapabilities(tbl, tile, attach))
	require.NotNil(t, attached)
	assert.Equal(t, preserving.MaxRatio, attached.Ratio)
	assert.Same(t, tile, attached.Owner)
	assert.Zero(t, attached.RotMultiplier())

	attached = nil
	assert.True(t, preserving.AttachCapabilities(tbl, &chestTile{}, attach))
	require.NotNil(t, attached)
	assert.Equal(t, 0.75, attached.RotMultiplier())

	attached = nil
	assert.False(t, preserving.AttachCapabilities(tbl, &furnaceTile{}, attach))
	assert.Nil(t, attached)
}

func TestDefaults_DoNotOverride(t *testing.T) {
	tbl := newTable(t, map[string]int{preserving.IceboxID: 40})
	assert.Equal(t, 40, tbl.ValueKey(preserving.IceboxID))

	assert.Equal(t, map[string]string{preserving.IceboxID: "100"}, preserving.DefaultEntries())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		raw     any
		want    int
		wantErr bool
	}{
		{int64(100), 100, false},
		{"0", 0, false},
		{"55", 55, false},
		{101, 0, true},
		{-1, 0, true},
		{"cold", 0, true},
	}

	for _, tt := range tests {
		got, err := preserving.Decode(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.raw)
			continue
		}
		assert.NoError(t, err, "%v", tt.raw)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, 5, preserving.Encode(5))
}
