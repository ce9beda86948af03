package game

import "testing"

func TestSelectionBox_RectNormalized(t *testing.T) {
	var sb SelectionBox
	sb.Begin(300, 200)
	sb.Drag(100, 400) // drag up-left to down-right inverted on X
	x0, y0, x1, y1 := sb.Rect()
	if x0 != 100 || y0 != 200 || x1 != 300 || y1 != 400 {
		t.Fatalf("rect not normalized: (%.0f,%.0f)-(%.0f,%.0f)", x0, y0, x1, y1)
	}
}

func TestSelectionBox_Contains(t *testing.T) {
	var sb SelectionBox
	sb.Begin(100, 100)
	sb.Drag(200, 150)
	if !sb.Contains(150, 125) {
		t.Fatalf("interior point should be inside")
	}
	if sb.Contains(99, 125) || sb.Contains(150, 151) {
		t.Fatalf("exterior points should be outside")
	}
	if !sb.Contains(100, 100) || !sb.Contains(200, 150) {
		t.Fatalf("rectangle edges are inclusive")
	}
}

func TestSelectionBox_EndDeactivates(t *testing.T) {
	var sb SelectionBox
	sb.Begin(0, 0)
	sb.Drag(50, 50)
	sb.End()
	if sb.Active() {
		t.Fatalf("End should finish the drag")
	}
	sb.Drag(500, 500) // must be ignored while inactive
	_, _, x1, y1 := sb.Rect()
	if x1 != 50 || y1 != 50 {
		t.Fatalf("inactive drag moved the corner: (%.0f,%.0f)", x1, y1)
	}
}

func TestSelectionBox_CancelDiscards(t *testing.T) {
	var sb SelectionBox
	sb.Begin(10, 10)
	sb.Drag(60, 60)
	sb.Cancel()
	if sb.Active() {
		t.Fatalf("Cancel should deactivate the box")
	}
}
