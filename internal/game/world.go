package game

import "math/rand"

// World owns the unit set and drives one simulation tick at a time.
type World struct {
	cfg   Config
	units []*Unit
	rng   *rand.Rand
	tick  int
}

// NewWorld creates an empty board. The seed drives spawn jitter and
// move-order spreading, so equal seeds replay identically.
func NewWorld(cfg Config, seed int64) *World {
	return &World{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation only
	}
}

func (w *World) Config() *Config { return &w.cfg }
func (w *World) Units() []*Unit  { return w.units }
func (w *World) Tick() int       { return w.tick }

// Step advances the simulation one tick: repulsion is resolved across
// all pairs first, then every unit integrates its motion. No consumer
// ever observes the state between the two passes.
func (w *World) Step() {
	ResolveCollisions(w.units)
	for _, u := range w.units {
		u.Update()
	}
	w.tick++
}

// SpawnGrid places count units of one team in a jittered grid of
// half-extent radius centred at (cx, cz) and adds them to the board.
func (w *World) SpawnGrid(team Team, cx, cz float64, count int, radius float64) []*Unit {
	positions := GridPlacement(w.rng, cx, cz, count, radius, w.cfg.GridJitter)
	spawned := make([]*Unit, 0, count)
	for _, p := range positions {
		u := NewUnit(&w.cfg, clamp(p[0], -w.cfg.BoardHalf, w.cfg.BoardHalf),
			clamp(p[1], -w.cfg.BoardHalf, w.cfg.BoardHalf), team)
		w.units = append(w.units, u)
		spawned = append(spawned, u)
	}
	return spawned
}

// SpawnScattered places count units uniformly at random across the board.
func (w *World) SpawnScattered(team Team, count int) []*Unit {
	spawned := make([]*Unit, 0, count)
	for i := 0; i < count; i++ {
		x := (w.rng.Float64()*2 - 1) * w.cfg.BoardHalf
		z := (w.rng.Float64()*2 - 1) * w.cfg.BoardHalf
		u := NewUnit(&w.cfg, x, z, team)
		w.units = append(w.units, u)
		spawned = append(spawned, u)
	}
	return spawned
}

// Clear removes every unit in one bulk operation. There is no partial
// teardown; the renderer drops all visuals the same frame.
func (w *World) Clear() {
	w.units = w.units[:0]
}

// MoveGroupTo issues a move order to a group. Groups larger than one
// unit fan out over a uniform disk around the target so they do not
// all fight for the exact same point; a single unit goes to the point
// itself. An empty group is a no-op.
func (w *World) MoveGroupTo(units []*Unit, target Vec3) {
	switch len(units) {
	case 0:
		return
	case 1:
		w.MoveOneTo(units[0], target)
		return
	}
	radius := SpreadRadius(w.cfg, len(units))
	for _, u := range units {
		dx, dz := DiskOffset(w.rng, radius)
		w.MoveOneTo(u, Vec3{X: target.X + dx, Z: target.Z + dz})
	}
}

// MoveOneTo sends a single unit to the exact point.
func (w *World) MoveOneTo(u *Unit, target Vec3) {
	if u == nil {
		return
	}
	u.MoveTo(target)
}

// Selected returns the units currently marked selected.
func (w *World) Selected() []*Unit {
	var sel []*Unit
	for _, u := range w.units {
		if u.Selected() {
			sel = append(sel, u)
		}
	}
	return sel
}

// ClearSelection deselects every unit.
func (w *World) ClearSelection() {
	for _, u := range w.units {
		u.Deselect()
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
