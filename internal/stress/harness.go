package stress

import (
	"io"
	"math"
	"time"

	"thermvox/internal/sim"
	"thermvox/pkg/core"
)

// targetBusyRatio bounds the harness at roughly 70% CPU by idling a
// fraction of each step's busy time.
const targetBusyRatio = 0.70

// throttleSleep idles long enough after a busy_ms step to keep the busy
// ratio near the target.
func throttleSleep(busyMs float64) {
	if busyMs <= 0 {
		time.Sleep(time.Millisecond)
		return
	}
	factor := 1/targetBusyRatio - 1
	sleepMs := math.Max(1, busyMs*factor)
	time.Sleep(time.Duration(math.Ceil(sleepMs)) * time.Millisecond)
}

// RunHeadless drives the whole stress cycle inline, without a sim server:
// step the world, grow, repeat until the measured world frame time exceeds
// the budget, then report. Returns the trip summary.
func RunHeadless(seed uint32, dtSeconds float64, out io.Writer) Summary {
	rng := core.NewRNG(seed)

	world := sim.NewWorld()
	world.Materials.Add(sim.Material{}) // 0 = void
	first := world.Materials.Add(RandomMaterial(rng))

	c := world.Ensure(0, 0)
	c.VoidIx = sim.VoidIx
	c.FillSection(first, RandomTemp(rng), seedSectionY, &world.Materials)

	spiral := NewSpiralCursor()
	bar := newCadence(barInterval)
	budgetMs := dtSeconds * 1000
	sections := 1

	for {
		start := time.Now()
		sim.ComputeFrame(world, float32(dtSeconds))
		wallMs := float64(time.Since(start).Nanoseconds()) / 1e6
		sim.SwapAll(world)

		worldMs := sim.TotalMs(world)
		throttleSleep(math.Max(worldMs, wallMs))

		if bar.Ready() {
			io.WriteString(out, formatBar(worldMs, budgetMs))
		}

		if worldMs > budgetMs {
			io.WriteString(out, formatBar(worldMs, budgetMs))
			maxChunk, sumChunk := 0.0, 0.0
			for _, ch := range world.Chunks {
				if ch.ChunkMsLast > maxChunk {
					maxChunk = ch.ChunkMsLast
				}
				sumChunk += ch.ChunkMsLast
			}
			s := Summary{
				Seed:           seed,
				DtSeconds:      dtSeconds,
				Chunks:         len(world.Chunks),
				SectionsLoaded: sections,
				WorldMs:        worldMs,
				MaxChunkMs:     maxChunk,
				SumChunkMs:     sumChunk,
			}
			s.Print(out)
			return s
		}

		if sy := PickEmptySection(c, rng); sy >= 0 {
			mat := world.Materials.Add(RandomMaterial(rng))
			c.FillSection(mat, RandomTemp(rng), sy, &world.Materials)
			sections++
		} else {
			ncx, ncz := spiral.Next()
			c = world.Ensure(ncx, ncz)
			c.VoidIx = sim.VoidIx
			mat := world.Materials.Add(RandomMaterial(rng))
			c.FillSection(mat, RandomTemp(rng), seedSectionY, &world.Materials)
			sections++
		}
	}
}
