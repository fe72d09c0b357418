package sim

// Material describes the thermal properties of one voxel substance.
// Values are immutable once interned in a Table.
type Material struct {
	HeatCapacity float32 // J/(kg*K)
	Conductivity float32 // W/(m*K)
	DefaultMass  float32 // kg per cell (cell is 1 m^3)
	MolarMass    float32 // kg/mol
}

// Table is an append-only registry of materials referenced by a compact
// 16-bit index. Index 0 is reserved for void by convention. Indices stay
// valid for the lifetime of the world.
type Table struct {
	materials []Material
}

// Add appends a material and returns its index.
func (t *Table) Add(m Material) uint16 {
	t.materials = append(t.materials, m)
	return uint16(len(t.materials) - 1)
}

// ByIx returns the material at the given index. Indices are trusted.
func (t *Table) ByIx(ix uint16) Material { return t.materials[ix] }

// Len returns the number of interned materials.
func (t *Table) Len() int { return len(t.materials) }

// Empty reports whether no material has been interned yet.
func (t *Table) Empty() bool { return len(t.materials) == 0 }
