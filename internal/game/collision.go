package game

// ResolveCollisions scans every unordered unit pair once and applies
// symmetric repulsion to overlapping pairs. O(n²) per tick — fine for
// the populations this sandbox runs (a few hundred units); a spatial
// grid is the upgrade path beyond that.
func ResolveCollisions(units []*Unit) {
	for i := 0; i < len(units); i++ {
		for j := i + 1; j < len(units); j++ {
			applyRepulsion(units[i], units[j])
		}
	}
}

// applyRepulsion pushes a and b apart if they overlap. The force is
// linear in penetration depth and is always applied to both units with
// equal magnitude and opposite direction.
func applyRepulsion(a, b *Unit) {
	delta := a.pos.Sub(b.pos).Horizontal()
	dist := delta.Length()
	radiusSum := a.radius + b.radius
	if dist >= radiusSum {
		return
	}

	// Exact overlap has no direction to normalize; fall back to a
	// deterministic axis rather than dividing by zero.
	var dir Vec3
	if dist == 0 {
		dir = Vec3{X: 1}
	} else {
		dir = delta.Scale(1 / dist)
	}

	mag := a.cfg.RepulsionStrength * (1 - dist/radiusSum)
	a.AddForce(dir.Scale(mag))
	b.AddForce(dir.Scale(-mag))
}
