// Package stress grows the world until the measured frame time exceeds its
// real-time budget. The trip is not an error: it is the designed signal
// that the budget is exhausted, and it pauses the sim while leaving it (and
// any UI) running.
package stress

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"thermvox/internal/server"
	"thermvox/internal/sim"
	"thermvox/pkg/core"
)

const (
	growTick    = 4 * time.Millisecond
	barInterval = 100 * time.Millisecond

	// First section filled in a freshly ensured chunk: the vertical middle.
	seedSectionY = 8
)

// Grower expands the world one section (or one spiral chunk) per tick while
// the world frame time stays under the budget dt*1000 ms. Run it as a plain
// goroutine; it observes its stop flag each tick.
type Grower struct {
	Seed      uint32
	DtSeconds float64

	// Out receives the progress bar and trip summary; defaults to stdout.
	Out io.Writer

	srv     *server.Server
	rng     *core.RNG
	spiral  *SpiralCursor
	bar     *cadence
	current *sim.Chunk

	sections int

	stop    atomic.Bool
	tripped atomic.Bool
}

// NewGrower returns a controller attached to the server's world.
func NewGrower(srv *server.Server, seed uint32, dtSeconds float64) *Grower {
	return &Grower{
		Seed:      seed,
		DtSeconds: dtSeconds,
		Out:       os.Stdout,
		srv:       srv,
		rng:       core.NewRNG(seed),
		spiral:    NewSpiralCursor(),
		bar:       newCadence(barInterval),
	}
}

// Stop makes Run return after the current tick.
func (g *Grower) Stop() { g.stop.Store(true) }

// Tripped reports whether growth has permanently halted.
func (g *Grower) Tripped() bool { return g.tripped.Load() }

// SectionsLoaded returns the number of sections filled so far, counting the
// pre-seeded one.
func (g *Grower) SectionsLoaded() int { return g.sections }

// Run loops until the budget trips or Stop is called. Blocking; start it
// with go g.Run().
func (g *Grower) Run() {
	g.init()
	for !g.stop.Load() {
		if g.tick() {
			return
		}
		time.Sleep(growTick)
	}
}

// init anchors the spiral at chunk (0,0) and counts what is already
// loaded so pre-seeded sections show up in the summary.
func (g *Grower) init() {
	g.srv.Lock()
	g.current = g.srv.World.Ensure(0, 0)
	g.current.VoidIx = sim.VoidIx
	g.sections = g.countLoaded()
	g.srv.Unlock()
}

// tick performs one measure/report/grow cycle. It returns true once the
// budget has tripped.
func (g *Grower) tick() bool {
	g.srv.Lock()
	worldMs := sim.TotalMs(g.srv.World)
	g.srv.Unlock()

	budgetMs := g.DtSeconds * 1000

	if g.bar.Ready() {
		io.WriteString(g.Out, formatBar(worldMs, budgetMs))
	}

	if worldMs > budgetMs {
		if g.tripped.CompareAndSwap(false, true) {
			io.WriteString(g.Out, formatBar(worldMs, budgetMs))
			g.summary(worldMs).Print(g.Out)
			g.srv.SetPaused(true)
		}
		return true
	}

	g.srv.Lock()
	g.grow()
	g.srv.Unlock()
	return false
}

// grow adds one random section to the current chunk, or spirals to a fresh
// chunk once the current one is full. Caller holds the publish lock.
func (g *Grower) grow() {
	world := g.srv.World

	if sy := PickEmptySection(g.current, g.rng); sy >= 0 {
		mat := world.Materials.Add(RandomMaterial(g.rng))
		g.current.FillSection(mat, RandomTemp(g.rng), sy, &world.Materials)
		g.sections++
		return
	}

	ncx, ncz := g.spiral.Next()
	g.current = world.Ensure(ncx, ncz)
	g.current.VoidIx = sim.VoidIx
	mat := world.Materials.Add(RandomMaterial(g.rng))
	g.current.FillSection(mat, RandomTemp(g.rng), seedSectionY, &world.Materials)
	g.sections++
}

func (g *Grower) countLoaded() int {
	n := 0
	for _, c := range g.srv.World.Chunks {
		for sy := 0; sy < sim.SectionsY; sy++ {
			if c.SectionLoaded[sy] {
				n++
			}
		}
	}
	return n
}

func (g *Grower) summary(worldMs float64) Summary {
	g.srv.Lock()
	defer g.srv.Unlock()
	world := g.srv.World
	maxChunk, sumChunk := 0.0, 0.0
	for _, c := range world.Chunks {
		if c.ChunkMsLast > maxChunk {
			maxChunk = c.ChunkMsLast
		}
		sumChunk += c.ChunkMsLast
	}
	return Summary{
		Seed:           g.Seed,
		DtSeconds:      g.DtSeconds,
		Chunks:         len(world.Chunks),
		SectionsLoaded: g.sections,
		WorldMs:        worldMs,
		MaxChunkMs:     maxChunk,
		SumChunkMs:     sumChunk,
	}
}
