package stress

import (
	"bytes"
	"strings"
	"testing"

	"thermvox/internal/server"
	"thermvox/internal/sim"
	"thermvox/pkg/core"
)

func newTestGrower(seed uint32, dt float64) (*Grower, *server.Server) {
	w := sim.NewWorld()
	sim.SeedWorld(w)
	srv := server.New(w, float32(dt))
	g := NewGrower(srv, seed, dt)
	g.Out = &bytes.Buffer{}
	return g, srv
}

func TestPickEmptySection(t *testing.T) {
	rng := core.NewRNG(1)
	mats := &sim.Table{}
	mats.Add(sim.Material{})
	mats.Add(sim.Material{HeatCapacity: 500, Conductivity: 100, DefaultMass: 1000})

	c := sim.NewChunk(0, 0)
	for sy := 0; sy < sim.SectionsY; sy++ {
		if sy != 5 {
			c.FillSection(1, 300, sy, mats)
		}
	}

	for i := 0; i < 20; i++ {
		if got := PickEmptySection(c, rng); got != 5 {
			t.Fatalf("PickEmptySection = %d, want 5", got)
		}
	}

	c.FillSection(1, 300, 5, mats)
	if got := PickEmptySection(c, rng); got != -1 {
		t.Fatalf("PickEmptySection on a full chunk = %d, want -1", got)
	}
}

func TestRandomMaterialRanges(t *testing.T) {
	rng := core.NewRNG(42)
	for i := 0; i < 100; i++ {
		m := RandomMaterial(rng)
		if m.HeatCapacity < 200 || m.HeatCapacity >= 1200 {
			t.Fatalf("heat capacity %v outside [200, 1200)", m.HeatCapacity)
		}
		if m.Conductivity < 1 || m.Conductivity >= 500 {
			t.Fatalf("conductivity %v outside [1, 500)", m.Conductivity)
		}
		if m.DefaultMass < 500 || m.DefaultMass >= 4000 {
			t.Fatalf("mass %v outside [500, 4000)", m.DefaultMass)
		}
		if m.MolarMass < 0.01 || m.MolarMass >= 0.10 {
			t.Fatalf("molar mass %v outside [0.01, 0.10)", m.MolarMass)
		}
		temp := RandomTemp(rng)
		if temp < sim.TempMin || temp >= sim.TempMax {
			t.Fatalf("temperature %v outside [%v, %v)", temp, float32(sim.TempMin), float32(sim.TempMax))
		}
	}
}

func TestGrowerFillsThenSpirals(t *testing.T) {
	g, srv := newTestGrower(7, 1e9) // budget effectively infinite
	g.init()

	if g.SectionsLoaded() != 1 {
		t.Fatalf("initial sections = %d, want 1 (seed section)", g.SectionsLoaded())
	}

	// 23 grows fill the remaining sections of chunk (0,0).
	for i := 0; i < sim.SectionsY-1; i++ {
		if g.tick() {
			t.Fatal("tripped under an infinite budget")
		}
	}
	if got := len(srv.World.Chunks); got != 1 {
		t.Fatalf("chunks = %d before the spiral move, want 1", got)
	}
	c := srv.World.Find(0, 0)
	for sy := 0; sy < sim.SectionsY; sy++ {
		if !c.SectionLoaded[sy] {
			t.Fatalf("section %d still empty after filling pass", sy)
		}
	}

	// The next grow must spiral to (1,0) and seed its middle section.
	if g.tick() {
		t.Fatal("tripped under an infinite budget")
	}
	east := srv.World.Find(1, 0)
	if east == nil {
		t.Fatal("spiral did not create chunk (1,0)")
	}
	if !east.SectionLoaded[seedSectionY] {
		t.Fatal("fresh chunk's middle section not filled")
	}
	if got := g.SectionsLoaded(); got != sim.SectionsY+1 {
		t.Fatalf("sections = %d, want %d", got, sim.SectionsY+1)
	}
}

func TestGrowerTrip(t *testing.T) {
	g, srv := newTestGrower(9, 0.001) // 1 ms budget
	out := &bytes.Buffer{}
	g.Out = out
	g.init()

	// Fake a measured frame far over budget.
	srv.Lock()
	srv.World.Find(0, 0).ChunkMsLast = 50
	srv.Unlock()

	if !g.tick() {
		t.Fatal("tick did not report the trip")
	}
	if !g.Tripped() {
		t.Fatal("Tripped() = false after the trip")
	}
	if !srv.IsPaused() {
		t.Fatal("trip did not pause the sim server")
	}

	text := out.String()
	if !strings.Contains(text, "=== STRESS RESULT ===") {
		t.Fatalf("missing summary header in output:\n%s", text)
	}
	if !strings.Contains(text, "Seed: 9") {
		t.Fatalf("summary does not report the supplied seed:\n%s", text)
	}
	if !strings.Contains(text, "Total chunks: 1") {
		t.Fatalf("summary chunk count wrong:\n%s", text)
	}

	// A second tick must not grow or re-print.
	before := out.Len()
	if !g.tick() {
		t.Fatal("tripped grower resumed growing")
	}
	if out.Len() != before {
		t.Fatal("tripped grower printed again")
	}
}

func TestGrowerDeterministicLayout(t *testing.T) {
	run := func() (int, int, int) {
		g, srv := newTestGrower(1234, 1e9)
		g.init()
		for i := 0; i < 60; i++ {
			g.tick()
		}
		return len(srv.World.Chunks), g.SectionsLoaded(), srv.World.Materials.Len()
	}

	c1, s1, m1 := run()
	c2, s2, m2 := run()
	if c1 != c2 || s1 != s2 || m1 != m2 {
		t.Fatalf("same seed diverged: (%d,%d,%d) vs (%d,%d,%d)", c1, s1, m1, c2, s2, m2)
	}
	if s1 != 61 {
		t.Fatalf("sections after 60 grows = %d, want 61", s1)
	}
}

func TestFormatBar(t *testing.T) {
	line := formatBar(50, 100)
	if !strings.HasPrefix(line, "\r[") {
		t.Fatalf("bar is not carriage-returned: %q", line)
	}
	if !strings.Contains(line, "50.00 / 100.00 ms") {
		t.Fatalf("bar does not show the measurements: %q", line)
	}
	if !strings.Contains(line, "(50.0%)") {
		t.Fatalf("bar does not show the percentage: %q", line)
	}

	// Zero budget must not blow up.
	_ = formatBar(1, 0)
}
