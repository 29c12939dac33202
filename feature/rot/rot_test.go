package rot_test

import (
	"testing"

	"foodfunk/core/matching"
	"foodfunk/feature/rot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct{ name string }

func TestDoesRot(t *testing.T) {
	apple, flesh, fish, stone := &item{"apple"}, &item{"flesh"}, &item{"fish"}, &item{"stone"}

	reg := matching.NewMemoryRegistry()
	reg.RegisterItem(apple, matching.MustParseResourceLocation("minecraft:apple"))
	reg.RegisterItem(flesh, matching.MustParseResourceLocation(rot.RottenFlesh))
	reg.RegisterItem(fish, matching.MustParseResourceLocation("minecraft:fish"))
	reg.RegisterItem(stone, matching.MustParseResourceLocation("minecraft:stone"))
	for _, food := range []*item{apple, flesh, fish} {
		reg.MarkFood(food)
	}
	reg.RegisterAlias(fish, 0, "listAllfishraw")

	tbl := rot.NewTable(matching.WithRegistry(reg))
	tbl.Replace(map[string]rot.Property{"listAllfishraw": {Days: 2}})
	rot.Defaults(tbl)

	assert.True(t, rot.DoesRot(tbl, matching.NewItemStack(apple, 0, 1)))
	assert.Equal(t, 7, tbl.ValueStack(matching.NewItemStack(apple, 0, 1)).Days)

	assert.False(t, rot.DoesRot(tbl, matching.NewItemStack(flesh, 0, 1)), "rotten flesh is configured not to rot")
	assert.True(t, tbl.MatchesStack(matching.NewItemStack(flesh, 0, 1)))

	assert.Equal(t, 2, tbl.ValueStack(matching.NewItemStack(fish, 0, 1)).Days, "alias beats food category")
	assert.Equal(t, 7, tbl.ValueStack(matching.NewItemStack(fish, 1, 1)).Days)

	assert.False(t, rot.DoesRot(tbl, matching.NewItemStack(stone, 0, 1)))
	assert.Equal(t, rot.NoRot, tbl.ValueStack(matching.NewItemStack(stone, 0, 1)))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    rot.Property
		wantErr bool
	}{
		{"Int", int64(3), rot.Property{Days: 3}, false},
		{"String", "5", rot.Property{Days: 5}, false},
		{"Arrow", "7>minecraft:rotten_flesh", rot.Property{Days: 7, Replacement: rot.RottenFlesh}, false},
		{"Table", map[string]any{"days": int64(4), "replacement": "minecraft:bone"}, rot.Property{Days: 4, Replacement: "minecraft:bone"}, false},
		{"TableDaysOnly", map[string]any{"days": "-1"}, rot.NoRot, false},
		{"TableNoDays", map[string]any{"replacement": "x"}, rot.Property{}, true},
		{"TableBadDays", map[string]any{"days": "soon"}, rot.Property{}, true},
		{"BadArrow", "x>y", rot.Property{}, true},
		{"Float", 2.5, rot.Property{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rot.Decode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeAndDefaultEntries(t *testing.T) {
	assert.Equal(t, 3, rot.Encode(rot.Property{Days: 3}))
	assert.Equal(t, map[string]any{"days": 7, "replacement": "x"}, rot.Encode(rot.Property{Days: 7, Replacement: "x"}))

	entries := rot.DefaultEntries()
	assert.Equal(t, map[string]string{
		matching.FoodTag:         "7>minecraft:rotten_flesh",
		rot.RottenFlesh:          "-1",
		"minecraft:golden_apple": "-1",
	}, entries)

	tbl := rot.NewTable()
	rot.Defaults(tbl)
	for k, v := range entries {
		p, err := rot.Decode(v)
		require.NoError(t, err, k)
		assert.Equal(t, tbl.ValueKey(k), p, k)
	}
}
