package game

import (
	"fmt"
	"math"
	"strings"
)

// SimReport is an aggregate snapshot of the unit population at one tick.
type SimReport struct {
	Tick           int
	Units          int
	Moving         int // units with an active move target
	Settled        int // units with zero velocity and no target
	OverlapPairs   int
	MinSeparation  float64 // closest pair distance (0 if fewer than 2 units)
	MeanSeparation float64
	MeanSpeed      float64
}

// Collect computes a snapshot from the current unit set.
func Collect(tick int, units []*Unit) SimReport {
	r := SimReport{Tick: tick, Units: len(units)}

	var speedSum float64
	for _, u := range units {
		if _, ok := u.Target(); ok {
			r.Moving++
		} else if u.Velocity().LengthSquared() == 0 {
			r.Settled++
		}
		speedSum += u.Velocity().Length()
	}
	if len(units) > 0 {
		r.MeanSpeed = speedSum / float64(len(units))
	}

	r.MinSeparation = math.Inf(1)
	var sepSum float64
	pairs := 0
	for i := 0; i < len(units); i++ {
		for j := i + 1; j < len(units); j++ {
			d := units[i].Position().Horizontal().Distance(units[j].Position().Horizontal())
			if d < units[i].CollisionRadius()+units[j].CollisionRadius() {
				r.OverlapPairs++
			}
			if d < r.MinSeparation {
				r.MinSeparation = d
			}
			sepSum += d
			pairs++
		}
	}
	if pairs == 0 {
		r.MinSeparation = 0
	} else {
		r.MeanSeparation = sepSum / float64(pairs)
	}
	return r
}

// SimReporter keeps a rolling window of snapshots for the debug report
// and the headless CLI.
type SimReporter struct {
	interval int
	window   int
	reports  []SimReport
}

// NewSimReporter collects a snapshot every interval ticks, keeping the
// most recent window of them.
func NewSimReporter(interval, window int) *SimReporter {
	if interval <= 0 {
		interval = 60
	}
	if window <= 0 {
		window = 60
	}
	return &SimReporter{interval: interval, window: window}
}

// Observe collects a snapshot when the tick lands on the interval.
func (sr *SimReporter) Observe(tick int, units []*Unit) {
	if tick%sr.interval != 0 {
		return
	}
	sr.reports = append(sr.reports, Collect(tick, units))
	if len(sr.reports) > sr.window {
		sr.reports = sr.reports[len(sr.reports)-sr.window:]
	}
}

// Latest returns the most recent snapshot.
func (sr *SimReporter) Latest() (SimReport, bool) {
	if len(sr.reports) == 0 {
		return SimReport{}, false
	}
	return sr.reports[len(sr.reports)-1], true
}

// Text renders the recent window as a plain-text report.
func (sr *SimReporter) Text() string {
	var b strings.Builder
	b.WriteString("--- cube-wars sim report ---\n")
	if len(sr.reports) == 0 {
		b.WriteString("(no snapshots yet)\n")
		return b.String()
	}
	for _, r := range sr.reports {
		fmt.Fprintf(&b,
			"tick=%-6d units=%-4d moving=%-4d settled=%-4d overlaps=%-4d minSep=%.3f meanSep=%.2f meanSpeed=%.4f\n",
			r.Tick, r.Units, r.Moving, r.Settled, r.OverlapPairs, r.MinSeparation, r.MeanSeparation, r.MeanSpeed)
	}
	return b.String()
}
