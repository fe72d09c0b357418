package sim

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// computeChunk runs the kernel over every loaded section of one chunk,
// recording per-section and per-chunk wall-clock milliseconds.
func computeChunk(w *World, c *Chunk, dt float32) {
	c.ChunkMsLast = 0
	for sy := range c.SectionMsLast {
		c.SectionMsLast[sy] = 0
	}
	for sy := 0; sy < SectionsY; sy++ {
		if !c.SectionLoaded[sy] {
			continue
		}
		start := time.Now()
		SimulateSection(w, c, &w.Materials, sy, dt)
		ms := float64(time.Since(start).Nanoseconds()) / 1e6
		c.SectionMsLast[sy] = ms
		c.ChunkMsLast += ms
	}
}

// ComputeFrame fills every chunk's back buffer from the front buffers.
// It never touches TCurr, so it runs without the publish lock.
func ComputeFrame(w *World, dt float32) {
	for _, c := range w.Chunks {
		computeChunk(w, c, dt)
	}
}

// ComputeFrameParallel is ComputeFrame fanned out across chunks. Within a
// frame all reads are of TCurr and all writes are of disjoint TNext ranges,
// so per-chunk parallelism is safe. workers <= 1 falls back to the
// sequential path.
func ComputeFrameParallel(w *World, dt float32, workers int) {
	if workers <= 1 || len(w.Chunks) <= 1 {
		ComputeFrame(w, dt)
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, c := range w.Chunks {
		c := c
		g.Go(func() error {
			computeChunk(w, c, dt)
			return nil
		})
	}
	g.Wait()
}

// SwapAll exchanges every chunk's front and back buffer handles. O(1) per
// chunk; callers must hold the publish lock.
func SwapAll(w *World) {
	for _, c := range w.Chunks {
		c.TCurr, c.TNext = c.TNext, c.TCurr
	}
}

// Step advances the world one frame: compute then swap. For single-threaded
// callers; the sim server splits the two phases around its publish lock.
func Step(w *World, dt float32) {
	ComputeFrame(w, dt)
	SwapAll(w)
}

// TotalMs sums the most recent per-chunk frame timings.
func TotalMs(w *World) float64 {
	total := 0.0
	for _, c := range w.Chunks {
		total += c.ChunkMsLast
	}
	return total
}
