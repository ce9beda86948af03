package game

import (
	"math"
	"math/rand"
)

// GridPlacement computes spawn positions for count units as a centred
// square grid of half-extent radius around (cx, cz). unitsPerRow is
// ceil(sqrt(count)); each position gets independent per-axis jitter of
// up to jitter×spacing so the lattice is not perfectly regular (a
// perfect lattice reads as artificial and produces simultaneous
// collision ties on the first tick).
func GridPlacement(rng *rand.Rand, cx, cz float64, count int, radius, jitter float64) [][2]float64 {
	positions := make([][2]float64, 0, count)
	if count <= 0 {
		return positions
	}

	unitsPerRow := int(math.Ceil(math.Sqrt(float64(count))))
	spacing := 2 * radius / float64(unitsPerRow)

	// Offset so the whole grid is centred on (cx, cz).
	origin := -radius + spacing/2

	for i := 0; i < count; i++ {
		row := i / unitsPerRow
		col := i % unitsPerRow
		jx := (rng.Float64()*2 - 1) * jitter * spacing
		jz := (rng.Float64()*2 - 1) * jitter * spacing
		positions = append(positions, [2]float64{
			cx + origin + float64(col)*spacing + jx,
			cz + origin + float64(row)*spacing + jz,
		})
	}
	return positions
}

// SpreadRadius is the disk radius used to fan out a group move order.
func SpreadRadius(cfg Config, count int) float64 {
	return math.Max(cfg.SpreadRadiusMin, math.Sqrt(float64(count))*cfg.SpreadRadiusScale)
}

// DiskOffset samples a point uniformly inside a disk of the given
// radius. The sqrt transform on r is what makes the density uniform by
// area — sampling r directly would pile points up at the centre.
func DiskOffset(rng *rand.Rand, radius float64) (dx, dz float64) {
	r := math.Sqrt(rng.Float64()) * radius
	theta := rng.Float64() * 2 * math.Pi
	return r * math.Cos(theta), r * math.Sin(theta)
}
