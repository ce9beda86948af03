package main

import (
	"flag"
	"fmt"

	"github.com/Binarysearch/cube-wars/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	allArrivedTick int // -1 if some unit never arrived
	final          game.SimReport
}

func main() {
	var runs int
	var ticks int
	var units int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3000, "ticks per run")
	flag.IntVar(&units, "units", 50, "units per team")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 || ticks <= 0 || units <= 0 {
		fmt.Println("error: -runs, -ticks and -units must all be > 0")
		return
	}

	fmt.Printf("=== Headless Motion Report ===\n")
	fmt.Printf("runs=%d ticks=%d units=%dx2 seed_base=%d seed_step=%d\n\n", runs, ticks, units, seedBase, seedStep)

	var all []runStats
	for i := 0; i < runs; i++ {
		stats := runCrossMove(i+1, seedBase+int64(i)*seedStep, ticks, units)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runCrossMove spawns two grid armies facing each other, orders each
// across to the other's side, and steps until the tick budget runs out.
func runCrossMove(runIndex int, seed int64, ticks, units int) runStats {
	cfg := game.DefaultConfig()
	w := game.NewWorld(cfg, seed)

	half := cfg.BoardHalf
	red := w.SpawnGrid(game.TeamRed, -half/2, 0, units, 8)
	blue := w.SpawnGrid(game.TeamBlue, half/2, 0, units, 8)

	w.MoveGroupTo(red, game.Vec3{X: half / 2})
	w.MoveGroupTo(blue, game.Vec3{X: -half / 2})

	stats := runStats{runIndex: runIndex, seed: seed, allArrivedTick: -1}
	for t := 0; t < ticks; t++ {
		w.Step()
		if stats.allArrivedTick < 0 && noneMoving(w.Units()) {
			stats.allArrivedTick = w.Tick()
		}
	}
	stats.final = game.Collect(w.Tick(), w.Units())
	return stats
}

func noneMoving(units []*game.Unit) bool {
	for _, u := range units {
		if _, ok := u.Target(); ok {
			return false
		}
	}
	return true
}

func printRun(s runStats) {
	arrived := "never"
	if s.allArrivedTick >= 0 {
		arrived = fmt.Sprintf("tick %d", s.allArrivedTick)
	}
	fmt.Printf("run %d (seed=%d): all arrived %s\n", s.runIndex, s.seed, arrived)
	fmt.Printf("  final: units=%d settled=%d overlaps=%d minSep=%.3f meanSep=%.2f\n\n",
		s.final.Units, s.final.Settled, s.final.OverlapPairs, s.final.MinSeparation, s.final.MeanSeparation)
}

func printAggregate(all []runStats) {
	arrivedRuns := 0
	totalOverlaps := 0
	worstMinSep := -1.0
	for _, s := range all {
		if s.allArrivedTick >= 0 {
			arrivedRuns++
		}
		totalOverlaps += s.final.OverlapPairs
		if worstMinSep < 0 || s.final.MinSeparation < worstMinSep {
			worstMinSep = s.final.MinSeparation
		}
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("arrived_runs=%d/%d residual_overlap_pairs=%d worst_min_separation=%.3f\n",
		arrivedRuns, len(all), totalOverlaps, worstMinSep)
}
