package game

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	// armySize units per team are spawned at start and on respawn.
	armySize = 50

	// clickSlop is the pixel distance below which a drag counts as a click.
	clickSlop = 4.0
)

// Game wires input and rendering around the motion core. It implements
// ebiten.Game: one simulation tick per frame at 1x speed.
type Game struct {
	cfg      Config
	world    *World
	cam      *Camera
	selBox   SelectionBox
	reporter *SimReporter

	prevKeys  map[ebiten.Key]bool
	prevLeft  bool
	prevRight bool

	// Right-button drag state: a right press becomes a pan once the
	// cursor moves past clickSlop, otherwise it is a move order.
	rightDownX float64
	rightDownY float64
	rightPan   bool

	showRadius bool
	showHUD    bool
	simSpeed   float64
	tickAccum  float64
}

func New() *Game {
	cfg := DefaultConfig()
	g := &Game{
		cfg:      cfg,
		world:    NewWorld(cfg, time.Now().UnixNano()),
		cam:      NewCamera(cfg),
		reporter: NewSimReporter(60, 30),
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
		simSpeed: 1.0,
	}
	g.cam.SetViewport(screenWidth, screenHeight)
	g.spawnArmies()
	return g
}

// spawnArmies clears the board and places the two grid armies facing
// each other across the centre line.
func (g *Game) spawnArmies() {
	g.world.Clear()
	half := g.cfg.BoardHalf
	g.world.SpawnGrid(TeamRed, -half/2, 0, armySize, 8)
	g.world.SpawnGrid(TeamBlue, half/2, 0, armySize, 8)
}

func (g *Game) Update() error {
	g.handleInput()

	// Camera inertia runs every frame, independent of sim speed.
	g.cam.StepZoom()

	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1 {
		g.tickAccum--
		g.world.Step()
		g.reporter.Observe(g.world.Tick(), g.world.Units())
	}
	return nil
}

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	mxi, myi := ebiten.CursorPosition()
	mx, my := float64(mxi), float64(myi)

	// Wheel zoom, anchored under the cursor.
	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.cam.HandleWheel(mx, my, wy)
	}

	// Left button: drag-select rectangle.
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case left && !g.prevLeft:
		g.selBox.Begin(mx, my)
	case left:
		g.selBox.Drag(mx, my)
	case g.prevLeft && g.selBox.Active():
		g.selBox.Drag(mx, my)
		g.applySelection()
	}
	g.prevLeft = left

	// Right button: drag pans, click issues a move order.
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	switch {
	case right && !g.prevRight:
		g.rightDownX, g.rightDownY = mx, my
		g.rightPan = false
	case right:
		if !g.rightPan && math.Hypot(mx-g.rightDownX, my-g.rightDownY) > clickSlop {
			g.cam.BeginPan(g.rightDownX, g.rightDownY)
			g.rightPan = true
		}
		if g.rightPan {
			g.cam.PanTo(mx, my)
		}
	case g.prevRight:
		if g.rightPan {
			g.cam.EndPan()
		} else if target, ok := g.cam.GroundPoint(mx, my); ok {
			g.world.MoveGroupTo(g.world.Selected(), target)
		}
	}
	g.prevRight = right

	// Escape: atomically drop every in-progress interaction.
	if pressed(ebiten.KeyEscape) {
		g.selBox.Cancel()
		g.cam.EndPan()
		g.rightPan = false
		g.world.ClearSelection()
	}

	if pressed(ebiten.KeyC) {
		g.showRadius = !g.showRadius
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyG) {
		g.spawnArmies()
	}
	if pressed(ebiten.KeyX) {
		g.world.Clear()
	}
	if pressed(ebiten.KeyR) {
		// Best effort: headless CI has no clipboard.
		_ = clipboard.WriteAll(g.reporter.Text())
	}

	// Sim speed: P pause/resume, comma slower, period faster.
	speeds := []float64{0, 0.5, 1, 2, 4}
	if pressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if pressed(ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = speeds[i-1]
				break
			}
		}
	}
	if pressed(ebiten.KeyPeriod) {
		for i, s := range speeds {
			if s <= g.simSpeed && i < len(speeds)-1 && speeds[i+1] > g.simSpeed {
				g.simSpeed = speeds[i+1]
				break
			}
		}
	}

	g.prevKeys = currentKeys
}

// applySelection replaces the current selection with the units whose
// projected positions fall inside the finished rectangle.
func (g *Game) applySelection() {
	x0, y0, x1, y1 := g.selBox.End()
	g.world.ClearSelection()
	if x1-x0 < clickSlop && y1-y0 < clickSlop {
		return
	}
	for _, u := range g.world.Units() {
		sx, sy, ok := g.cam.WorldToScreen(u.Position())
		if ok && sx >= x0 && sx <= x1 && sy >= y0 && sy <= y1 {
			u.Select()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 16, B: 20, A: 255})

	g.drawBoard(screen)
	g.drawUnits(screen)

	// Selection rectangle, screen space.
	if g.selBox.Active() {
		x0, y0, x1, y1 := g.selBox.Rect()
		vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0),
			color.RGBA{R: 90, G: 160, B: 90, A: 40}, false)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0),
			1.0, color.RGBA{R: 120, G: 220, B: 120, A: 200}, false)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("h=%.1f tick=%d", g.cam.Height(), g.world.Tick()), 6, 6)
}

// drawBoard renders the ground grid by projecting line endpoints.
func (g *Game) drawBoard(screen *ebiten.Image) {
	half := g.cfg.BoardHalf
	gridCol := color.RGBA{R: 36, G: 42, B: 52, A: 255}
	edgeCol := color.RGBA{R: 70, G: 85, B: 105, A: 255}

	for v := -half; v <= half; v += 10 {
		col := gridCol
		if v == -half || v == half {
			col = edgeCol
		}
		g.drawGroundLine(screen, Vec3{X: v, Z: -half}, Vec3{X: v, Z: half}, col)
		g.drawGroundLine(screen, Vec3{X: -half, Z: v}, Vec3{X: half, Z: v}, col)
	}
}

func (g *Game) drawGroundLine(screen *ebiten.Image, a, b Vec3, col color.Color) {
	ax, ay, aok := g.cam.WorldToScreen(a)
	bx, by, bok := g.cam.WorldToScreen(b)
	if !aok || !bok {
		return
	}
	ebitenutil.DrawLine(screen, ax, ay, bx, by, col)
}

// drawUnits paints far units first so near ones overlap them.
func (g *Game) drawUnits(screen *ebiten.Image) {
	units := g.world.Units()
	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}
	campos := g.cam.Position()
	sort.Slice(order, func(i, j int) bool {
		di := units[order[i]].Position().Sub(campos).LengthSquared()
		dj := units[order[j]].Position().Sub(campos).LengthSquared()
		return di > dj
	})

	for _, idx := range order {
		u := units[idx]
		sx, sy, ok := g.cam.WorldToScreen(u.Position())
		if !ok {
			continue
		}
		// Screen-space half-size: project a point one half-edge to the right.
		ex, _, ok := g.cam.WorldToScreen(u.Position().Add(Vec3{X: g.cfg.UnitSize / 2}))
		if !ok {
			continue
		}
		hs := math.Abs(ex - sx)
		if hs < 1 {
			hs = 1
		}

		normal, selCol := TeamColors(u.Team())
		col := normal
		if u.Selected() {
			col = selCol
		}
		vector.FillRect(screen, float32(sx-hs), float32(sy-hs), float32(2*hs), float32(2*hs), col, false)

		if g.showRadius {
			rx, _, rok := g.cam.WorldToScreen(u.Position().Add(Vec3{X: u.CollisionRadius()}))
			if rok {
				vector.StrokeCircle(screen, float32(sx), float32(sy), float32(math.Abs(rx-sx)),
					1.0, color.RGBA{R: 230, G: 210, B: 80, A: 160}, true)
			}
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	report := ""
	if r, ok := g.reporter.Latest(); ok {
		report = fmt.Sprintf("units %d  moving %d  settled %d  overlaps %d",
			r.Units, r.Moving, r.Settled, r.OverlapPairs)
	}
	lines := fmt.Sprintf(
		"drag-L select | R-click move | R-drag pan | wheel zoom\n"+
			"C radius  G respawn  X clear  R report->clipboard  P , . speed(%.1fx)  H hud\n%s",
		g.simSpeed, report)
	text.Draw(screen, lines, basicfont.Face7x13, 8, screenHeight-34, color.RGBA{R: 190, G: 200, B: 190, A: 255})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
