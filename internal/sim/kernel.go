package sim

// Temperature clamp range for the explicit scheme. The clamp keeps the
// visualization bounded when dt*k/Cth is too large for stability.
const (
	TempMin = 0.0
	TempMax = 6000.0
)

// capacityEpsilon guards the division by thermal capacity for cells with
// zero mass or heat capacity.
const capacityEpsilon = 1e-8

var stencil = [6][3]int{
	{+1, 0, 0},
	{-1, 0, 0},
	{0, +1, 0},
	{0, -1, 0},
	{0, 0, +1},
	{0, 0, -1},
}

// SimulateSection advances one 16x16x16 section of chunk c by dt seconds,
// reading TCurr and writing TNext. Void cells pass their temperature
// through unchanged. Interface conductivity between two materials is the
// harmonic mean of their conductivities; a non-positive conductivity on
// either side makes that face contribute nothing.
func SimulateSection(w *World, c *Chunk, mats *Table, sy int, dt float32) {
	y0 := sy * SectionEdge
	y1 := y0 + SectionEdge
	const invDx2 = float32(1.0) // unit cell spacing

	for z := 0; z < ChunkD; z++ {
		for y := y0; y < y1; y++ {
			for x := 0; x < ChunkW; x++ {
				i := Idx(x, y, z)
				mix := c.MatIx[i]
				if mix == c.VoidIx {
					c.TNext[i] = c.TCurr[i]
					continue
				}

				m := mats.ByIx(mix)
				cth := c.MassKg[i] * m.HeatCapacity
				if cth < capacityEpsilon {
					cth = capacityEpsilon
				}
				tc := c.TCurr[i]

				var dT float32
				for _, d := range stencil {
					nb := w.SampleNeighbor(c, x, y, z, d[0], d[1], d[2])
					if !nb.Exists {
						continue
					}
					k1 := m.Conductivity
					k2 := mats.ByIx(nb.Mix).Conductivity
					if k1 <= 0 || k2 <= 0 {
						continue
					}
					kEff := 2 * k1 * k2 / (k1 + k2)
					dT += kEff * (nb.T - tc) * invDx2
				}

				tNew := tc + (dt/cth)*dT
				if tNew < TempMin {
					tNew = TempMin
				} else if tNew > TempMax {
					tNew = TempMax
				}
				c.TNext[i] = tNew
			}
		}
	}
}
