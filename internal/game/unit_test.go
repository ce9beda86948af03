package game

import (
	"math"
	"testing"
)

func newTestUnit(cfg *Config, x, z float64) *Unit {
	return NewUnit(cfg, x, z, TeamRed)
}

func TestUnit_RestsOnBoard(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 3, -7)
	if u.Position().Y != cfg.RestingHeight() {
		t.Fatalf("expected resting height %.2f, got %.2f", cfg.RestingHeight(), u.Position().Y)
	}
	if u.CollisionRadius() != cfg.UnitSize/2*cfg.RadiusFactor {
		t.Fatalf("collision radius should be (size/2)*%.1f, got %.3f", cfg.RadiusFactor, u.CollisionRadius())
	}
}

func TestUnit_SeekConstantSpeed(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.MoveTo(Vec3{X: 10})
	u.Update()
	if math.Abs(u.Position().X-cfg.MovementSpeed) > 1e-12 {
		t.Fatalf("expected x=%.3f after one tick, got %.6f", cfg.MovementSpeed, u.Position().X)
	}
	if u.Position().Y != cfg.RestingHeight() {
		t.Fatalf("integration must not touch the vertical position")
	}
	// Speed stays constant regardless of remaining distance.
	u.Update()
	if math.Abs(u.Position().X-2*cfg.MovementSpeed) > 1e-12 {
		t.Fatalf("expected constant-speed travel, got x=%.6f", u.Position().X)
	}
}

func TestUnit_TargetVerticalForcedToRestingHeight(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.MoveTo(Vec3{X: 5, Y: 99, Z: 5})
	target, ok := u.Target()
	if !ok {
		t.Fatalf("expected an active target")
	}
	if target.Y != u.Position().Y {
		t.Fatalf("target Y should be forced to resting height, got %.2f", target.Y)
	}
}

func TestUnit_ArrivalClearsTargetOnce(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.MoveTo(Vec3{X: 0.15}) // inside the 0.2 arrival threshold
	u.Update()
	if _, ok := u.Target(); ok {
		t.Fatalf("target should be cleared on arrival")
	}
	pos := u.Position()
	for i := 0; i < 10; i++ {
		u.Update()
	}
	if u.Position() != pos {
		t.Fatalf("position must not drift after arrival: %v -> %v", pos, u.Position())
	}
}

func TestUnit_DampingSnapsSmallVelocityToZero(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.AddForce(Vec3{X: 0.005}) // 0.005*0.95 < 0.01 rest threshold
	u.Update()
	if u.Velocity() != (Vec3{}) {
		t.Fatalf("sub-threshold velocity should snap to zero, got %v", u.Velocity())
	}
	if u.Position().X != 0 {
		t.Fatalf("snapped velocity must not move the unit, got x=%.6f", u.Position().X)
	}
}

func TestUnit_DampingAppliesWithoutTarget(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.AddForce(Vec3{X: 0.02})
	u.Update()
	want := 0.02 * cfg.Damping
	if math.Abs(u.Position().X-want) > 1e-12 {
		t.Fatalf("expected damped shift %.6f, got %.6f", want, u.Position().X)
	}
}

func TestUnit_RepulsionNotDampedWhileSeeking(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.MoveTo(Vec3{X: 10})
	u.AddForce(Vec3{Z: 0.02})
	u.Update()
	// Directed travel plus the full, undamped impulse.
	if math.Abs(u.Position().X-cfg.MovementSpeed) > 1e-12 {
		t.Fatalf("seek component wrong: x=%.6f", u.Position().X)
	}
	if math.Abs(u.Position().Z-0.02) > 1e-12 {
		t.Fatalf("repulsion should not be damped while a target is active: z=%.6f", u.Position().Z)
	}
}

func TestUnit_ForceResetEachTick(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.AddForce(Vec3{X: 0.05})
	u.Update()
	posAfterImpulse := u.Position()
	u.Update() // no new force: damping+snap must bring the unit to rest
	u.Update()
	moved := u.Position().Sub(posAfterImpulse).Length()
	if moved > 0.05 {
		t.Fatalf("accumulated force leaked across ticks: moved %.4f after reset", moved)
	}
	u.Update()
	if u.Velocity().Length() > 0.05*cfg.Damping {
		t.Fatalf("velocity should bleed off without fresh impulses, got %.4f", u.Velocity().Length())
	}
}

func TestUnit_SelectDeselect(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	if u.Selected() {
		t.Fatalf("units spawn deselected")
	}
	u.Select()
	if !u.Selected() {
		t.Fatalf("Select should mark the unit")
	}
	u.Deselect()
	if u.Selected() {
		t.Fatalf("Deselect should clear the mark")
	}
}

func TestUnit_StopClearsTarget(t *testing.T) {
	cfg := DefaultConfig()
	u := newTestUnit(&cfg, 0, 0)
	u.MoveTo(Vec3{X: 10})
	u.Stop()
	if _, ok := u.Target(); ok {
		t.Fatalf("Stop should clear the move order")
	}
}
