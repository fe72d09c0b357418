package sim

// Canonical material indices for the interactive world.
const (
	VoidIx  uint16 = 0
	SolidIx uint16 = 1
)

// SeedWorld prepares the initial interactive condition: void and a generic
// solid in the material table, chunk (0,0) with its middle section filled
// at 300 K, and a single 6000 K cell at the section center so diffusion is
// visible immediately.
func SeedWorld(w *World) {
	if w.Materials.Empty() {
		w.Materials.Add(Material{})                                                                      // 0 = void
		w.Materials.Add(Material{HeatCapacity: 500, Conductivity: 100, DefaultMass: 1000, MolarMass: 0.05}) // 1 = generic solid
	}

	c := w.Ensure(0, 0)
	c.VoidIx = VoidIx

	const sectionY = 8
	c.FillSection(SolidIx, 300, sectionY, &w.Materials)

	xMid, zMid := ChunkW/2, ChunkD/2
	yMid := sectionY*SectionEdge + SectionEdge/2
	hot := Idx(xMid, yMid, zMid)
	c.TCurr[hot] = TempMax
	c.TNext[hot] = TempMax

	c.RecomputeSectionLoaded()
}
