package preserving

import (
	"fmt"
	"strconv"

	"foodfunk/core/matching"
	"foodfunk/core/source"
)

const (
	// Section is the property section holding preserving ratios.
	Section = "preserving"
	// NoPreserving is the ratio of containers that do not preserve food.
	NoPreserving = 0
	// MaxRatio halts decay entirely.
	MaxRatio = 100
)

// NewTable creates the preserving ratio table.
func NewTable(opts ...matching.Option) *matching.Table[int] {
	return matching.New(Section, nil, NoPreserving, opts...)
}

// Defaults seeds the built-in preserving containers.
func Defaults(t *matching.Table[int]) {
	t.AddDefaults([]string{IceboxID}, MaxRatio)
}

// DefaultEntries returns the built-in entries in stored (text) form.
func DefaultEntries() map[string]string {
	t := NewTable()
	Defaults(t)

	out := make(map[string]string, t.Len())
	for k, v := range t.Snapshot() {
		out[k] = strconv.Itoa(v)
	}
	return out
}

// Decode parses a ratio and rejects values outside 0..100.
func Decode(raw any) (int, error) {
	ratio, err := source.Int(raw)
	if err != nil {
		return 0, err
	}
	if ratio < NoPreserving || ratio > MaxRatio {
		return 0, fmt.Errorf("preserving ratio %d outside %d..%d", ratio, NoPreserving, MaxRatio)
	}
	return ratio, nil
}

// Encode renders a ratio for export.
func Encode(ratio int) any {
	return ratio
}

// Preserving is the state attached to a tile that preserves its contents.
type Preserving struct {
	Ratio int
	Owner matching.TileEntity
}

// RotMultiplier is the fraction of normal decay speed inside the container.
func (p *Preserving) RotMultiplier() float64 {
	return float64(MaxRatio-p.Ratio) / MaxRatio
}

// DoesPreserve reports whether tile is configured as a preserving container.
func DoesPreserve(t *matching.Table[int], tile matching.TileEntity) bool {
	return t.MatchesTile(tile)
}

// AttachCapabilities is called by the host whenever a tile entity is
// constructed. It hands attach a Preserving for tiles configured as
// preserving containers and reports whether it did.
func AttachCapabilities(t *matching.Table[int], tile matching.TileEntity, attach func(*Preserving)) bool {
	r := t.Resolve(t.Resolver().TileKeys(tile))
	if !r.Matched() {
		return false
	}
	attach(&Preserving{Ratio: r.Value, Owner: tile})
	return true
}
