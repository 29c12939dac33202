package preserving

import "foodfunk/core/matching"

// IceboxID is the registry name of the icebox block and its tile entity.
const IceboxID = "foodfunk:icebox"

// Block describes a placeable block to the host.
type Block struct {
	ID       string
	Material string
	Sound    string
	Hardness float64
}

// Icebox is the icebox block definition.
var Icebox = Block{
	ID:       IceboxID,
	Material: "wood",
	Sound:    "wood",
	Hardness: 2.5,
}

// IceboxTile is the tile entity behind a placed icebox.
type IceboxTile struct {
	X, Y, Z int
}

// NewTileEntity creates the tile entity for an icebox placed at x, y, z.
func (b Block) NewTileEntity(x, y, z int) *IceboxTile {
	return &IceboxTile{X: x, Y: y, Z: z}
}

// Register records the icebox tile entity type under IceboxID.
func Register(reg *matching.MemoryRegistry) {
	reg.RegisterTile(&IceboxTile{}, matching.MustParseResourceLocation(IceboxID))
}
