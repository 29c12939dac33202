package rot

import (
	"fmt"
	"strconv"
	"strings"

	"foodfunk/core/matching"
	"foodfunk/core/utils"
)

const (
	// Section is the property section holding rot properties.
	Section = "rot"
	// RottenFlesh is what most food turns into.
	RottenFlesh = "minecraft:rotten_flesh"
	// TicksPerDay is the length of one game day.
	TicksPerDay int64 = 24000
)

// Property describes how an item rots.
type Property struct {
	// Days until the item is rotten. Negative means it never rots.
	Days int `toml:"days" yaml:"days" json:"days"`
	// Replacement is the item a rotten stack turns into. Empty removes it.
	Replacement string `toml:"replacement,omitempty" yaml:"replacement,omitempty" json:"replacement,omitempty"`
}

// NoRot is the property of items that never rot.
var NoRot = Property{Days: -1}

// Rots reports whether the property describes a decaying item.
func (p Property) Rots() bool {
	return p.Days >= 0
}

// Ticks is the rot duration in game ticks.
func (p Property) Ticks() int64 {
	return int64(p.Days) * TicksPerDay
}

// NewTable creates the rot property table.
func NewTable(opts ...matching.Option) *matching.Table[Property] {
	return matching.New(Section, nil, NoRot, opts...)
}

// Defaults seeds the built-in rot properties. Everything in the food category
// rots within a week unless configured otherwise.
func Defaults(t *matching.Table[Property]) {
	t.AddDefault(matching.FoodTag, Property{Days: 7, Replacement: RottenFlesh})
	t.AddDefaults([]string{RottenFlesh, "minecraft:golden_apple"}, NoRot)
}

// DefaultEntries returns the built-in entries in stored (text) form.
func DefaultEntries() map[string]string {
	t := NewTable()
	Defaults(t)

	out := make(map[string]string, t.Len())
	for k, v := range t.Snapshot() {
		out[k] = format(v)
	}
	return out
}

// Decode parses a rot property. Accepted forms are a day count ("7", 7), a
// "days>replacement" string, or a table with days and replacement fields.
func Decode(raw any) (Property, error) {
	switch v := raw.(type) {
	case map[string]any:
		days, ok := v["days"]
		if !ok {
			return Property{}, fmt.Errorf("rot property is missing days")
		}
		d, err := utils.ToInt(days)
		if err != nil {
			return Property{}, fmt.Errorf("rot days: %w", err)
		}
		p := Property{Days: d}
		if r, ok := v["replacement"]; ok {
			if p.Replacement, err = utils.ToString(r); err != nil {
				return Property{}, fmt.Errorf("rot replacement: %w", err)
			}
		}
		return p, nil
	case string:
		return parse(v)
	default:
		d, err := utils.ToInt(v)
		if err != nil {
			return Property{}, err
		}
		return Property{Days: d}, nil
	}
}

// Encode renders a property for export.
func Encode(p Property) any {
	if p.Replacement == "" {
		return p.Days
	}
	return map[string]any{"days": p.Days, "replacement": p.Replacement}
}

func parse(s string) (Property, error) {
	days, replacement, _ := strings.Cut(s, ">")
	d, err := utils.ToInt(days)
	if err != nil {
		return Property{}, err
	}
	return Property{Days: d, Replacement: strings.TrimSpace(replacement)}, nil
}

func format(p Property) string {
	if p.Replacement == "" {
		return strconv.Itoa(p.Days)
	}
	return strconv.Itoa(p.Days) + ">" + p.Replacement
}

// DoesRot reports whether a stack decays.
func DoesRot(t *matching.Table[Property], stack *matching.ItemStack) bool {
	p, ok := t.PropertyStack(stack)
	return ok && p.Rots()
}
