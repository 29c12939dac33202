package rot_test

import (
	"testing"

	"foodfunk/core/matching"
	"foodfunk/feature/rot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClock(t *testing.T) {
	c, ok := rot.NewClock(rot.Property{Days: 2}, 1000)
	require.True(t, ok)
	assert.Equal(t, int64(1000), c.Start)
	assert.Equal(t, 2*rot.TicksPerDay, c.Duration)
	assert.Equal(t, 1000+2*rot.TicksPerDay, c.Expiry())

	_, ok = rot.NewClock(rot.NoRot, 1000)
	assert.False(t, ok)
}

func TestClock_Progress(t *testing.T) {
	c := rot.Clock{Start: 100, Duration: 1000}

	assert.Equal(t, 0, c.Percent(50))
	assert.Equal(t, 0, c.Percent(100))
	assert.Equal(t, 50, c.Percent(600))
	assert.Equal(t, 100, c.Percent(1100))
	assert.Equal(t, 100, c.Percent(5000))

	assert.False(t, c.IsRotten(1099))
	assert.True(t, c.IsRotten(1100))

	assert.Equal(t, 100, rot.Clock{Start: 5}.Percent(0), "zero-length decay is immediately rotten")
}

func TestClock_Preserve(t *testing.T) {
	c := rot.Clock{Start: 0, Duration: 1000}

	halted := c.Preserve(100, 400)
	assert.Equal(t, int64(400), halted.Start)
	assert.Equal(t, 0, halted.Percent(400))

	half := c.Preserve(50, 400)
	assert.Equal(t, int64(200), half.Start)
	assert.Equal(t, 20, half.Percent(400))

	assert.Equal(t, c, c.Preserve(0, 400))
	assert.Equal(t, c, c.Preserve(50, -10))
	assert.Equal(t, int64(400), c.Preserve(250, 400).Start, "ratios above 100 are clamped")
}

func TestExpiration(t *testing.T) {
	bread, stone := &item{"bread"}, &item{"stone"}

	reg := matching.NewMemoryRegistry()
	reg.RegisterItem(bread, matching.MustParseResourceLocation("minecraft:bread"))
	reg.RegisterItem(stone, matching.MustParseResourceLocation("minecraft:stone"))
	reg.MarkFood(bread)

	tbl := rot.NewTable(matching.WithRegistry(reg))
	rot.Defaults(tbl)

	week := 7 * rot.TicksPerDay
	stack := matching.NewItemStack(bread, 0, 1)

	at, ok := rot.Expiration(tbl, stack, 1000, 0)
	require.True(t, ok)
	assert.Equal(t, 1000+week, at)

	at, ok = rot.Expiration(tbl, stack, 0, 50)
	require.True(t, ok)
	assert.Equal(t, 2*week, at, "half preservation doubles the shelf life")

	_, ok = rot.Expiration(tbl, stack, 0, 100)
	assert.False(t, ok, "halted decay never expires")

	_, ok = rot.Expiration(tbl, matching.NewItemStack(stone, 0, 1), 0, 0)
	assert.False(t, ok)
}
