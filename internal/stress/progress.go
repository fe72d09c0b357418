package stress

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"thermvox/internal/sim"
)

const barSlots = 12

// formatBar renders the carriage-returned progress line comparing the
// measured world frame time to the real-time budget. The fill is colored by
// how close the world is to tripping.
func formatBar(worldMs, budgetMs float64) string {
	pct := 0.0
	filled := barSlots
	if budgetMs > 0 {
		pct = worldMs / budgetMs * 100
		filled = int(float64(barSlots) * worldMs / budgetMs)
	}
	if filled < 0 {
		filled = 0
	}
	if filled > barSlots {
		filled = barSlots
	}

	fill := ""
	for i := 0; i < filled; i++ {
		fill += "#"
	}
	switch {
	case pct >= 100:
		fill = aurora.Red(fill).String()
	case pct >= 75:
		fill = aurora.Yellow(fill).String()
	default:
		fill = aurora.Green(fill).String()
	}
	pad := ""
	for i := filled; i < barSlots; i++ {
		pad += " "
	}

	return fmt.Sprintf("\r[%s%s] %6.2f / %6.2f ms  (%.1f%%)", fill, pad, worldMs, budgetMs, pct)
}

// Summary is the trip report of a stress run.
type Summary struct {
	Seed           uint32
	DtSeconds      float64
	Chunks         int
	SectionsLoaded int
	WorldMs        float64
	MaxChunkMs     float64
	SumChunkMs     float64
}

// Print writes the trip summary block. Unbuffered prints: the preceding
// progress line is carriage-returned, so start with a newline.
func (s Summary) Print(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", aurora.Bold("=== STRESS RESULT ===").String())
	fmt.Fprintf(out, "Seed: %d\n", s.Seed)
	fmt.Fprintf(out, "Target dt: %.3f ms\n", s.DtSeconds*1000)
	fmt.Fprintf(out, "Total chunks: %d\n", s.Chunks)
	fmt.Fprintf(out, "Total sections loaded: %d (max per chunk: %d)\n", s.SectionsLoaded, sim.SectionsY)
	fmt.Fprintf(out, "World frame time: %.3f ms  (max chunk: %.3f ms, sum: %.3f ms)\n", s.WorldMs, s.MaxChunkMs, s.SumChunkMs)
}
