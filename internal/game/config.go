package game

// Config holds every tunable constant of the motion and camera systems.
// A Config value is taken by copy at construction and never mutated
// afterwards, so there is no shared-constant reassignment at runtime.
type Config struct {
	// Board half-extent: the playable plane spans [-BoardHalf, BoardHalf]
	// on X and Z, at Y=0.
	BoardHalf float64

	// UnitSize is the edge length of a unit cube. Units rest with their
	// centre at UnitSize/2 above the board.
	UnitSize float64

	// Motion.
	MovementSpeed    float64 // world units per tick while seeking a target
	ArrivalThreshold float64 // distance at which a target counts as reached
	Damping          float64 // velocity multiplier applied when no target is set
	RestSpeed        float64 // below this (and with no target) velocity snaps to zero

	// Collision.
	RadiusFactor      float64 // collision radius = (UnitSize/2) * RadiusFactor
	RepulsionStrength float64 // peak repulsion force at full overlap

	// Formation placement.
	SpreadRadiusScale float64 // disk radius = max(SpreadRadiusMin, sqrt(N)*scale)
	SpreadRadiusMin   float64
	GridJitter        float64 // per-axis jitter as a fraction of grid spacing

	// Camera.
	CamMinHeight   float64
	CamMaxHeight   float64
	ZoomAccel      float64 // base velocity gain per wheel notch
	ZoomMaxVel     float64 // |zoomVelocity| clamp
	ZoomBrakeZone  float64 // acceleration fades linearly within this of a bound
	ZoomBrakeFloor float64 // acceleration never fades below this fraction of ZoomAccel
	ZoomDamping    float64 // per-tick velocity multiplier
	ZoomNearDamp   float64 // harsher multiplier within ZoomNearZone of a bound
	ZoomNearZone   float64
	ZoomRestVel    float64 // below this |velocity| snaps to zero
	CamFovY        float64 // vertical field of view, radians
	CamTiltForward float64 // forward lean of the view direction (0 = straight down)
}

// DefaultConfig returns the tuned defaults. The spread and jitter values
// are empirical; they are fields rather than consts so callers can
// override them without editing the package.
func DefaultConfig() Config {
	return Config{
		BoardHalf: 50,
		UnitSize:  1,

		MovementSpeed:    0.1,
		ArrivalThreshold: 0.2,
		Damping:          0.95,
		RestSpeed:        0.01,

		RadiusFactor:      1.8,
		RepulsionStrength: 0.02,

		SpreadRadiusScale: 0.8,
		SpreadRadiusMin:   2,
		GridJitter:        0.2,

		CamMinHeight:   5,
		CamMaxHeight:   60,
		ZoomAccel:      0.02,
		ZoomMaxVel:     0.12,
		ZoomBrakeZone:  3,
		ZoomBrakeFloor: 0.15,
		ZoomDamping:    0.9,
		ZoomNearDamp:   0.5,
		ZoomNearZone:   1,
		ZoomRestVel:    0.0001,
		CamFovY:        1.0471975511965976, // 60 degrees
		CamTiltForward: 0.5,
	}
}

// CollisionRadius derives the inflated overlap radius for a unit of the
// configured size.
func (c Config) CollisionRadius() float64 {
	return c.UnitSize / 2 * c.RadiusFactor
}

// RestingHeight is the fixed Y coordinate of every unit's centre.
func (c Config) RestingHeight() float64 {
	return c.UnitSize / 2
}
