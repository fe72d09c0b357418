package sim

// ChunkCoord identifies a chunk by its horizontal coordinates.
type ChunkCoord struct {
	CX, CZ int
}

// World is the sparse chunk container plus the material registry. Chunks
// live from creation until world teardown; there is no unload path.
type World struct {
	Chunks    map[ChunkCoord]*Chunk
	Materials Table
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{Chunks: make(map[ChunkCoord]*Chunk)}
}

// Ensure returns the chunk at (cx, cz), creating it if absent.
func (w *World) Ensure(cx, cz int) *Chunk {
	key := ChunkCoord{CX: cx, CZ: cz}
	if c, ok := w.Chunks[key]; ok {
		return c
	}
	c := NewChunk(cx, cz)
	w.Chunks[key] = c
	return c
}

// Find returns the chunk at (cx, cz) or nil.
func (w *World) Find(cx, cz int) *Chunk {
	return w.Chunks[ChunkCoord{CX: cx, CZ: cz}]
}

// RecomputeAllSectionLoaded rescans every chunk's loaded flags.
func (w *World) RecomputeAllSectionLoaded() {
	for _, c := range w.Chunks {
		c.RecomputeSectionLoaded()
	}
}

// NeighborSample is the result of looking one cell past (x, y, z) from
// inside chunk c. A missing cell (outside the vertical range, or in a chunk
// that does not exist) reports Exists=false and is treated by the kernel as
// a no-flux boundary, not as 0 K.
type NeighborSample struct {
	T      float32
	Mix    uint16
	Exists bool
}

// SampleNeighbor reads the front-buffer temperature and material of the
// cell at (x+dx, y+dy, z+dz) relative to chunk c, crossing chunk borders
// horizontally as needed.
func (w *World) SampleNeighbor(c *Chunk, x, y, z, dx, dy, dz int) NeighborSample {
	nx, ny, nz := x+dx, y+dy, z+dz

	if ny < 0 || ny >= ChunkH {
		return NeighborSample{Mix: c.VoidIx}
	}

	ncx, ncz := c.CX, c.CZ
	lx, lz := nx, nz

	if nx < 0 {
		ncx, lx = c.CX-1, ChunkW-1
	} else if nx >= ChunkW {
		ncx, lx = c.CX+1, 0
	}
	if nz < 0 {
		ncz, lz = c.CZ-1, ChunkD-1
	} else if nz >= ChunkD {
		ncz, lz = c.CZ+1, 0
	}

	cc := c
	if ncx != c.CX || ncz != c.CZ {
		cc = w.Find(ncx, ncz)
		if cc == nil {
			return NeighborSample{Mix: c.VoidIx}
		}
	}

	i := Idx(lx, ny, lz)
	return NeighborSample{T: cc.TCurr[i], Mix: cc.MatIx[i], Exists: true}
}
