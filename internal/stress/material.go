package stress

import (
	"thermvox/internal/sim"
	"thermvox/pkg/core"
)

// Distribution ranges for randomly interned materials and fill
// temperatures.
const (
	heatCapMin, heatCapMax   = 200, 1200  // J/(kg*K)
	conductMin, conductMax   = 1, 500     // W/(m*K)
	massMin, massMax         = 500, 4000  // kg per cell
	molarMin, molarMax       = 0.01, 0.10 // kg/mol
	fillTempMin, fillTempMax = sim.TempMin, sim.TempMax
)

// RandomMaterial draws a material from the stress distributions.
func RandomMaterial(rng *core.RNG) sim.Material {
	return sim.Material{
		HeatCapacity: rng.Float32Range(heatCapMin, heatCapMax),
		Conductivity: rng.Float32Range(conductMin, conductMax),
		DefaultMass:  rng.Float32Range(massMin, massMax),
		MolarMass:    rng.Float32Range(molarMin, molarMax),
	}
}

// RandomTemp draws a fill temperature from the stress distribution.
func RandomTemp(rng *core.RNG) float32 {
	return rng.Float32Range(fillTempMin, fillTempMax)
}

// PickEmptySection returns a uniformly random not-loaded section index of
// the chunk, or -1 when every section is loaded.
func PickEmptySection(c *sim.Chunk, rng *core.RNG) int {
	empty := make([]int, 0, sim.SectionsY)
	for sy := 0; sy < sim.SectionsY; sy++ {
		if !c.SectionLoaded[sy] {
			empty = append(empty, sy)
		}
	}
	if len(empty) == 0 {
		return -1
	}
	return empty[rng.IntN(len(empty))]
}
