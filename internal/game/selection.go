package game

// SelectionBox is the screen-space drag rectangle. It owns no hit
// testing against units itself; callers project unit positions through
// the camera and ask Contains.
type SelectionBox struct {
	active bool
	startX float64
	startY float64
	curX   float64
	curY   float64
}

// Begin starts a drag at the given screen position.
func (sb *SelectionBox) Begin(x, y float64) {
	sb.active = true
	sb.startX, sb.startY = x, y
	sb.curX, sb.curY = x, y
}

// Drag updates the moving corner.
func (sb *SelectionBox) Drag(x, y float64) {
	if !sb.active {
		return
	}
	sb.curX, sb.curY = x, y
}

// End finishes the drag and returns the normalized rectangle.
func (sb *SelectionBox) End() (x0, y0, x1, y1 float64) {
	sb.active = false
	return sb.Rect()
}

// Cancel discards the drag with no selection change.
func (sb *SelectionBox) Cancel() {
	sb.active = false
}

func (sb *SelectionBox) Active() bool { return sb.active }

// Rect returns the rectangle with corners ordered min..max.
func (sb *SelectionBox) Rect() (x0, y0, x1, y1 float64) {
	x0, x1 = sb.startX, sb.curX
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 = sb.startY, sb.curY
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1
}

// Contains reports whether a screen point lies inside the rectangle.
func (sb *SelectionBox) Contains(x, y float64) bool {
	x0, y0, x1, y1 := sb.Rect()
	return x >= x0 && x <= x1 && y >= y0 && y <= y1
}
