package game

import "math"

// Camera is a fixed-orientation perspective camera above the board.
// Panning and zooming move only its position; the view direction never
// changes, which is what makes the anchor math below exact.
type Camera struct {
	cfg Config

	pos Vec3
	// Orthonormal view basis, fixed at construction.
	forward Vec3
	right   Vec3
	up      Vec3

	screenW int
	screenH int

	// Pan drag state. The ray origin is frozen at drag start: casting
	// against the live camera would move the anchor as the camera moves
	// and feed the displacement back into itself.
	panning      bool
	panAnchor    Vec3
	panCamStart  Vec3
	panRayOrigin Vec3

	// Zoom state.
	zoomVel       float64
	zoomAnchor    Vec3
	hasZoomAnchor bool
}

// NewCamera places the camera above the origin at a mid-range height,
// tilted forward by cfg.CamTiltForward radians from straight down.
func NewCamera(cfg Config) *Camera {
	tilt := cfg.CamTiltForward
	forward := Vec3{Y: -math.Cos(tilt), Z: -math.Sin(tilt)}
	right := Vec3{X: 1}
	up := right.Cross(forward)

	startHeight := (cfg.CamMinHeight + cfg.CamMaxHeight) / 2
	// Back the camera off along -forward so the look-at point is the origin.
	t := startHeight / -forward.Y
	pos := Vec3{}.Sub(forward.Scale(t))

	return &Camera{
		cfg:     cfg,
		pos:     pos,
		forward: forward,
		right:   right,
		up:      up,
	}
}

// SetViewport tells the camera the screen size in pixels. Until it is
// called, every screen-space operation is a no-op.
func (c *Camera) SetViewport(w, h int) {
	c.screenW = w
	c.screenH = h
}

func (c *Camera) Position() Vec3  { return c.pos }
func (c *Camera) Height() float64 { return c.pos.Y }

func (c *Camera) ready() bool {
	return c.screenW > 0 && c.screenH > 0
}

func (c *Camera) tanHalf() (tx, ty float64) {
	ty = math.Tan(c.cfg.CamFovY / 2)
	tx = ty * float64(c.screenW) / float64(c.screenH)
	return tx, ty
}

// screenRay returns the world-space direction of the ray through the
// given screen pixel, for a camera at the (possibly frozen) origin.
func (c *Camera) screenRay(mx, my float64) Vec3 {
	tx, ty := c.tanHalf()
	ndcX := 2*mx/float64(c.screenW) - 1
	ndcY := 1 - 2*my/float64(c.screenH)
	dir := c.forward.
		Add(c.right.Scale(ndcX * tx)).
		Add(c.up.Scale(ndcY * ty))
	return dir.Normalize()
}

// groundHit intersects a ray with the board plane Y=0.
func groundHit(origin, dir Vec3) (Vec3, bool) {
	if dir.Y >= -1e-9 {
		return Vec3{}, false // parallel to or pointing away from the board
	}
	t := -origin.Y / dir.Y
	if t <= 0 {
		return Vec3{}, false
	}
	hit := origin.Add(dir.Scale(t))
	hit.Y = 0
	return hit, true
}

// GroundPoint returns the world point on the board under the given
// screen pixel, using the live camera.
func (c *Camera) GroundPoint(mx, my float64) (Vec3, bool) {
	if !c.ready() {
		return Vec3{}, false
	}
	return groundHit(c.pos, c.screenRay(mx, my))
}

// WorldToScreen projects a world point to screen pixels. The second
// return is false when the point is behind the camera.
func (c *Camera) WorldToScreen(p Vec3) (sx, sy float64, ok bool) {
	if !c.ready() {
		return 0, 0, false
	}
	v := p.Sub(c.pos)
	depth := v.Dot(c.forward)
	if depth <= 1e-9 {
		return 0, 0, false
	}
	tx, ty := c.tanHalf()
	ndcX := v.Dot(c.right) / (depth * tx)
	ndcY := v.Dot(c.up) / (depth * ty)
	sx = (ndcX + 1) / 2 * float64(c.screenW)
	sy = (1 - ndcY) / 2 * float64(c.screenH)
	return sx, sy, true
}

// --- Pan controller ---

// BeginPan grabs the ground point under the cursor. While the drag
// lasts, that point stays glued to the cursor.
func (c *Camera) BeginPan(mx, my float64) {
	if !c.ready() {
		return
	}
	hit, ok := groundHit(c.pos, c.screenRay(mx, my))
	if !ok {
		return
	}
	c.panning = true
	c.panAnchor = hit
	c.panCamStart = c.pos
	c.panRayOrigin = c.pos
}

// PanTo moves the camera so the grabbed point follows the cursor. All
// intersections use the frozen drag-start origin.
func (c *Camera) PanTo(mx, my float64) {
	if !c.panning || !c.ready() {
		return
	}
	hit, ok := groundHit(c.panRayOrigin, c.screenRay(mx, my))
	if !ok {
		return
	}
	// Camera moves opposite to the world-point displacement.
	c.pos.X = c.panCamStart.X - (hit.X - c.panAnchor.X)
	c.pos.Z = c.panCamStart.Z - (hit.Z - c.panAnchor.Z)
}

// EndPan releases the drag.
func (c *Camera) EndPan() {
	c.panning = false
}

// Panning reports whether a pan drag is in progress.
func (c *Camera) Panning() bool { return c.panning }

// --- Zoom controller ---

// HandleWheel accumulates zoom velocity from one wheel event and
// records the ground point under the cursor as the zoom anchor.
// wheelY > 0 zooms in (height decreases).
func (c *Camera) HandleWheel(mx, my, wheelY float64) {
	if !c.ready() || wheelY == 0 {
		return
	}
	dir := 1.0 // zoom out
	if wheelY > 0 {
		dir = -1
	}

	if hit, ok := groundHit(c.pos, c.screenRay(mx, my)); ok {
		c.zoomAnchor = hit
		c.hasZoomAnchor = true
	}
	if !c.hasZoomAnchor {
		return
	}

	// Pinned at a limit in the requested direction: bleed velocity off
	// instead of piling it up against the clamp.
	if (dir < 0 && c.pos.Y <= c.cfg.CamMinHeight) || (dir > 0 && c.pos.Y >= c.cfg.CamMaxHeight) {
		if c.zoomVel*dir > 0 {
			c.zoomVel = 0
		}
		return
	}

	// Soft braking: acceleration fades linearly within the brake zone
	// of whichever bound we are approaching. The floor keeps the last
	// impulse large enough to actually reach the bound and clamp,
	// instead of creeping toward it forever.
	accel := c.cfg.ZoomAccel
	var room float64
	if dir < 0 {
		room = c.pos.Y - c.cfg.CamMinHeight
	} else {
		room = c.cfg.CamMaxHeight - c.pos.Y
	}
	if room < c.cfg.ZoomBrakeZone {
		scale := room / c.cfg.ZoomBrakeZone
		if scale < c.cfg.ZoomBrakeFloor {
			scale = c.cfg.ZoomBrakeFloor
		}
		accel *= scale
	}

	c.zoomVel += dir * accel
	if c.zoomVel > c.cfg.ZoomMaxVel {
		c.zoomVel = c.cfg.ZoomMaxVel
	}
	if c.zoomVel < -c.cfg.ZoomMaxVel {
		c.zoomVel = -c.cfg.ZoomMaxVel
	}
}

// StepZoom advances the inertial zoom by one tick. Height change is
// multiplicative in the current height so the perceived zoom rate is
// constant across scales, and the horizontal position is rescaled
// about the anchor so the point under the cursor stays put on screen.
func (c *Camera) StepZoom() {
	if c.zoomVel == 0 || !c.hasZoomAnchor {
		return
	}

	oldH := c.pos.Y
	newH := oldH + oldH*c.zoomVel
	if newH <= c.cfg.CamMinHeight {
		newH = c.cfg.CamMinHeight
		c.zoomVel = 0
	} else if newH >= c.cfg.CamMaxHeight {
		newH = c.cfg.CamMaxHeight
		c.zoomVel = 0
	}

	ratio := newH / oldH
	c.pos.X = c.zoomAnchor.X + (c.pos.X-c.zoomAnchor.X)*ratio
	c.pos.Z = c.zoomAnchor.Z + (c.pos.Z-c.zoomAnchor.Z)*ratio
	c.pos.Y = newH

	damp := c.cfg.ZoomDamping
	if newH-c.cfg.CamMinHeight < c.cfg.ZoomNearZone || c.cfg.CamMaxHeight-newH < c.cfg.ZoomNearZone {
		damp = c.cfg.ZoomNearDamp
	}
	c.zoomVel *= damp
	if math.Abs(c.zoomVel) < c.cfg.ZoomRestVel {
		c.zoomVel = 0
	}
}

// ZoomVelocity exposes the current inertial zoom velocity.
func (c *Camera) ZoomVelocity() float64 { return c.zoomVel }
