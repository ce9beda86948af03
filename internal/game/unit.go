package game

// Team distinguishes the two spawned armies. It only affects display
// colour and spawn placement; there is no rules engine behind it.
type Team int

const (
	TeamRed Team = iota
	TeamBlue
)

func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Unit is a movable piece on the board. Its centre rests at a fixed
// height above the XZ plane; all motion is horizontal.
type Unit struct {
	cfg  *Config
	team Team

	pos   Vec3
	vel   Vec3
	force Vec3 // repulsion accumulated this tick, zeroed after integration

	target    Vec3
	hasTarget bool

	radius   float64 // inflated collision radius
	selected bool
}

// NewUnit creates a unit resting on the board at (x, z).
func NewUnit(cfg *Config, x, z float64, team Team) *Unit {
	return &Unit{
		cfg:    cfg,
		team:   team,
		pos:    Vec3{X: x, Y: cfg.RestingHeight(), Z: z},
		radius: cfg.CollisionRadius(),
	}
}

func (u *Unit) Position() Vec3           { return u.pos }
func (u *Unit) Velocity() Vec3           { return u.vel }
func (u *Unit) CollisionRadius() float64 { return u.radius }
func (u *Unit) Team() Team               { return u.team }
func (u *Unit) Selected() bool           { return u.selected }

func (u *Unit) Select()   { u.selected = true }
func (u *Unit) Deselect() { u.selected = false }

// Target returns the current move target, if any.
func (u *Unit) Target() (Vec3, bool) {
	return u.target, u.hasTarget
}

// MoveTo orders the unit to travel to the given point. The target's
// vertical component is forced to the unit's resting height so the
// seek direction stays in the horizontal plane.
func (u *Unit) MoveTo(p Vec3) {
	p.Y = u.pos.Y
	u.target = p
	u.hasTarget = true
}

// Stop clears any pending move order.
func (u *Unit) Stop() {
	u.hasTarget = false
}

// AddForce accumulates a repulsion impulse for the current tick.
func (u *Unit) AddForce(f Vec3) {
	u.force = u.force.Add(f)
}

// Update integrates one tick of motion. Ordering matters: the directed
// seek velocity is computed first, this tick's repulsion is added on
// top, and damping applies only when no target is active so that
// directed travel is never attenuated by the settling factor.
func (u *Unit) Update() {
	u.vel = Vec3{}

	if u.hasTarget {
		to := u.target.Sub(u.pos).Horizontal()
		dist := to.Length()
		if dist < u.cfg.ArrivalThreshold {
			u.hasTarget = false
		} else {
			u.vel = to.Normalize().Scale(u.cfg.MovementSpeed)
		}
	}

	u.vel = u.vel.Add(u.force)

	if !u.hasTarget {
		u.vel = u.vel.Scale(u.cfg.Damping)
		if u.vel.Length() < u.cfg.RestSpeed {
			u.vel = Vec3{}
		}
	}

	u.pos.X += u.vel.X
	u.pos.Z += u.vel.Z

	u.force = Vec3{}
}
