package sim

// PaintCell stamps one cell with the given material at temperature t.
// Both temperature buffers are written so the next swap cannot expose a
// stale value for cells the kernel skips, and the containing section is
// marked loaded. Callers hold the publish lock and paint only while the
// sim is paused.
func PaintCell(c *Chunk, mats *Table, x, y, z int, matIx uint16, t float32) {
	if x < 0 || x >= ChunkW || y < 0 || y >= ChunkH || z < 0 || z >= ChunkD {
		return
	}
	i := Idx(x, y, z)
	c.TCurr[i] = t
	c.TNext[i] = t
	c.MatIx[i] = matIx
	c.MassKg[i] = mats.ByIx(matIx).DefaultMass
	c.MarkSectionLoaded(y/SectionEdge, true)
}

// PaintColumn paints the cell at (x, y) across every z layer.
func PaintColumn(c *Chunk, mats *Table, x, y int, matIx uint16, t float32) {
	for z := 0; z < ChunkD; z++ {
		PaintCell(c, mats, x, y, z, matIx, t)
	}
}
