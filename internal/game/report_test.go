package game

import (
	"strings"
	"testing"
)

func TestCollect_CountsOverlapsAndMotion(t *testing.T) {
	cfg := DefaultConfig()
	a := newTestUnit(&cfg, 0, 0)
	b := newTestUnit(&cfg, 1, 0) // overlapping (radiusSum 1.8)
	c := newTestUnit(&cfg, 10, 0)
	c.MoveTo(Vec3{X: 20})

	r := Collect(5, []*Unit{a, b, c})
	if r.Tick != 5 || r.Units != 3 {
		t.Fatalf("snapshot header wrong: %+v", r)
	}
	if r.OverlapPairs != 1 {
		t.Fatalf("expected 1 overlapping pair, got %d", r.OverlapPairs)
	}
	if r.Moving != 1 {
		t.Fatalf("expected 1 moving unit, got %d", r.Moving)
	}
	if r.Settled != 2 {
		t.Fatalf("expected 2 settled units, got %d", r.Settled)
	}
	if r.MinSeparation != 1 {
		t.Fatalf("expected min separation 1, got %.4f", r.MinSeparation)
	}
}

func TestCollect_EmptyAndSingle(t *testing.T) {
	cfg := DefaultConfig()
	if r := Collect(0, nil); r.MinSeparation != 0 || r.Units != 0 {
		t.Fatalf("empty snapshot should be all zeros: %+v", r)
	}
	u := newTestUnit(&cfg, 0, 0)
	if r := Collect(0, []*Unit{u}); r.MinSeparation != 0 {
		t.Fatalf("single unit has no pairs, got minSep %.4f", r.MinSeparation)
	}
}

func TestSimReporter_IntervalAndWindow(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	sr := NewSimReporter(10, 3)

	for tick := 0; tick <= 100; tick++ {
		sr.Observe(tick, []*Unit{u})
	}
	if len(sr.reports) != 3 {
		t.Fatalf("window should cap at 3 snapshots, got %d", len(sr.reports))
	}
	latest, ok := sr.Latest()
	if !ok || latest.Tick != 100 {
		t.Fatalf("latest snapshot should be tick 100, got %+v", latest)
	}
}

func TestSimReporter_TextIncludesSnapshots(t *testing.T) {
	sr := NewSimReporter(1, 5)
	if !strings.Contains(sr.Text(), "no snapshots") {
		t.Fatalf("empty reporter should say so")
	}
	cfg := DefaultConfig()
	sr.Observe(0, []*Unit{newTestUnit(&cfg, 0, 0)})
	if !strings.Contains(sr.Text(), "units=1") {
		t.Fatalf("report text missing unit count:\n%s", sr.Text())
	}
}
