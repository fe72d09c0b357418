package sim

import (
	"testing"
)

func TestSwapInversion(t *testing.T) {
	w := seededWorld()
	c := w.Ensure(0, 0)
	curr := &c.TCurr[0]
	next := &c.TNext[0]

	SwapAll(w)
	if &c.TCurr[0] != next || &c.TNext[0] != curr {
		t.Fatal("swap did not exchange the buffer handles")
	}
	SwapAll(w)
	if &c.TCurr[0] != curr || &c.TNext[0] != next {
		t.Fatal("double swap did not restore the buffer handles")
	}
}

func TestComputeFrameRecordsTimings(t *testing.T) {
	w, c, _ := hotCenterWorld()

	ComputeFrame(w, 1.0)

	if c.ChunkMsLast < 0 {
		t.Fatalf("negative chunk timing %v", c.ChunkMsLast)
	}
	sum := 0.0
	for sy := 0; sy < SectionsY; sy++ {
		if sy != 8 && c.SectionMsLast[sy] != 0 {
			t.Fatalf("unloaded section %d has timing %v", sy, c.SectionMsLast[sy])
		}
		sum += c.SectionMsLast[sy]
	}
	if sum != c.ChunkMsLast {
		t.Fatalf("chunk timing %v != section sum %v", c.ChunkMsLast, sum)
	}
	if got := TotalMs(w); got != c.ChunkMsLast {
		t.Fatalf("TotalMs = %v, want %v", got, c.ChunkMsLast)
	}
}

func TestComputeFrameSkipsUnloadedSections(t *testing.T) {
	w := seededWorld()
	c := w.Ensure(0, 0)
	// Stale garbage in the back buffer of an unloaded section must survive
	// the frame untouched.
	c.TNext[Idx(3, 3, 3)] = 999

	ComputeFrame(w, 1.0)

	if c.TNext[Idx(3, 3, 3)] != 999 {
		t.Fatal("compute touched an unloaded section")
	}
}

func TestVoidNextEqualsCurrAfterStep(t *testing.T) {
	w, c, _ := hotCenterWorld()
	// Sprinkle void cells inside the loaded section.
	y := 8*SectionEdge + 2
	for x := 0; x < ChunkW; x++ {
		c.MatIx[Idx(x, y, 3)] = 0
		c.MassKg[Idx(x, y, 3)] = 0
	}

	Step(w, 1.0)

	for x := 0; x < ChunkW; x++ {
		i := Idx(x, y, 3)
		if c.TCurr[i] != c.TNext[i] {
			t.Fatalf("void cell x=%d: curr %v != next %v", x, c.TCurr[i], c.TNext[i])
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	build := func() *World {
		w := seededWorld()
		for cx := -1; cx <= 1; cx++ {
			for cz := -1; cz <= 1; cz++ {
				c := w.Ensure(cx, cz)
				c.FillSection(1, float32(300+100*(cx+2*cz+3)), 8, &w.Materials)
				c.FillSection(1, 900, 9, &w.Materials)
			}
		}
		return w
	}

	seq := build()
	par := build()

	ComputeFrame(seq, 1.0)
	ComputeFrameParallel(par, 1.0, 4)

	for coord, cs := range seq.Chunks {
		cp := par.Chunks[coord]
		for i := 0; i < ChunkN; i++ {
			if cs.TNext[i] != cp.TNext[i] {
				t.Fatalf("chunk %v cell %d: sequential %v != parallel %v", coord, i, cs.TNext[i], cp.TNext[i])
			}
		}
	}
}

func BenchmarkComputeFrame(b *testing.B) {
	w, _, _ := hotCenterWorld()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ComputeFrame(w, 1.0)
		SwapAll(w)
	}
}

func BenchmarkSimulateSection(b *testing.B) {
	w, c, _ := hotCenterWorld()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SimulateSection(w, c, &w.Materials, 8, 1.0)
	}
}
