package stress

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHeadlessTripsAndReports(t *testing.T) {
	out := &bytes.Buffer{}

	// A vanishing budget trips on the first measured frame.
	s := RunHeadless(31337, 1e-9, out)

	if s.Seed != 31337 {
		t.Fatalf("summary seed = %d, want 31337", s.Seed)
	}
	if s.Chunks < 1 || s.SectionsLoaded < 1 {
		t.Fatalf("summary reports an empty world: %+v", s)
	}
	if s.WorldMs <= s.DtSeconds*1000 {
		t.Fatalf("reported world time %v did not exceed the budget", s.WorldMs)
	}
	if s.SumChunkMs < s.MaxChunkMs {
		t.Fatalf("sum %v < max %v", s.SumChunkMs, s.MaxChunkMs)
	}

	text := out.String()
	if !strings.Contains(text, "=== STRESS RESULT ===") {
		t.Fatalf("missing summary header:\n%s", text)
	}
	if !strings.Contains(text, "Seed: 31337") {
		t.Fatalf("missing seed line:\n%s", text)
	}
	if !strings.Contains(text, "(max per chunk: 24)") {
		t.Fatalf("missing sections line:\n%s", text)
	}
}
