//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"thermvox/internal/render"
	"thermvox/internal/server"
	"thermvox/internal/sim"
	"thermvox/internal/ui"
)

type renderMode int

const (
	modeWorldMap renderMode = iota
	modeChunkView
)

// View layout.
const (
	WindowW = 1280
	WindowH = 800

	headerHeight = 64
	pixelScale   = 4 // cell pixels in chunk view
	mapTileSize  = 64
	mapMargin    = 10
)

// Game adapts the sim server to the ebiten.Game interface: a world map of
// chunk tiles and a per-chunk slice view, with paint editing while paused.
// Drawing try-locks the publish lock so a busy swap never stalls the frame.
type Game struct {
	srv *server.Server

	mode             renderMode
	selCX, selCZ     int
	focusCX, focusCZ int
	zSlice           int

	ctrl  bool
	shift bool

	slice    *render.SlicePainter
	gradient *render.GradientBar
}

// New constructs the view for a server whose world is already seeded.
func New(srv *server.Server) *Game {
	g := &Game{
		srv:      srv,
		zSlice:   sim.ChunkD / 2,
		slice:    render.NewSlicePainter(),
		gradient: render.NewGradientBar(WindowW),
	}

	srv.Lock()
	defer srv.Unlock()
	for coord := range srv.World.Chunks {
		g.selCX, g.selCZ = coord.CX, coord.CZ
		break
	}
	if len(srv.World.Chunks) <= 1 {
		g.mode = modeChunkView
		g.focusCX, g.focusCZ = g.selCX, g.selCZ
	}
	return g
}

// Update handles input. Painting happens here, under the publish lock,
// and only while the sim is paused.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.srv.SetPaused(!g.srv.IsPaused())
	}

	g.ctrl = ebiten.IsKeyPressed(ebiten.KeyControl)
	g.shift = ebiten.IsKeyPressed(ebiten.KeyShift)

	switch g.mode {
	case modeWorldMap:
		if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			g.selCZ--
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			g.selCZ++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			g.selCX--
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			g.selCX++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.mode = modeChunkView
			g.focusCX, g.focusCZ = g.selCX, g.selCZ
		}
	case modeChunkView:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modeWorldMap
			g.selCX, g.selCZ = g.focusCX, g.focusCZ
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			if g.zSlice < sim.ChunkD-1 {
				g.zSlice++
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			if g.zSlice > 0 {
				g.zSlice--
			}
		}
		g.paint()
	}
	return nil
}

// paint applies the mouse edit: left 0 K, middle 300 K, right 6000 K, with
// Shift extending to every z layer.
func (g *Game) paint() {
	if !g.srv.IsPaused() {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !middle && !right {
		return
	}

	mx, my := ebiten.CursorPosition()
	localX := mx / pixelScale
	localY := (my - headerHeight) / pixelScale
	if my < headerHeight || localX < 0 || localX >= sim.ChunkW || localY < 0 || localY >= sim.ChunkH {
		return
	}

	g.srv.Lock()
	defer g.srv.Unlock()
	c := g.srv.World.Find(g.focusCX, g.focusCZ)
	if c == nil {
		return
	}

	stamp := func(t float32) {
		if g.shift {
			sim.PaintColumn(c, &g.srv.World.Materials, localX, localY, sim.SolidIx, t)
			return
		}
		sim.PaintCell(c, &g.srv.World.Materials, localX, localY, g.zSlice, sim.SolidIx, t)
	}
	if left {
		stamp(sim.TempMin)
	}
	if middle {
		stamp(300)
	}
	if right {
		stamp(sim.TempMax)
	}
}

// Draw renders the current mode, or a placeholder frame when the publish
// lock is busy.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.srv.TryLock() {
		screen.Fill(color.Black)
		ui.DrawText(screen, "Updating simulation...", 10, 10)
		return
	}
	defer g.srv.Unlock()

	screen.Fill(color.Black)
	switch g.mode {
	case modeWorldMap:
		g.drawWorldMap(screen)
	case modeChunkView:
		g.drawChunkView(screen)
	}
}

func (g *Game) drawWorldMap(screen *ebiten.Image) {
	world := g.srv.World

	minCX, maxCX := g.selCX, g.selCX
	minCZ, maxCZ := g.selCZ, g.selCZ
	for coord := range world.Chunks {
		minCX = min(minCX, coord.CX)
		maxCX = max(maxCX, coord.CX)
		minCZ = min(minCZ, coord.CZ)
		maxCZ = max(maxCZ, coord.CZ)
	}

	scaleMin, scaleMax := float32(sim.TempMin), float32(sim.TempMax)
	if g.ctrl {
		any := false
		for _, c := range world.Chunks {
			mn, mx, ok := sim.ChunkMinMax(c)
			if !ok {
				continue
			}
			if !any {
				scaleMin, scaleMax, any = mn, mx, true
				continue
			}
			scaleMin = min(scaleMin, mn)
			scaleMax = max(scaleMax, mx)
		}
		if !any {
			scaleMin, scaleMax = sim.TempMin, sim.TempMax
		}
	}

	totalMs := 0.0
	chunksWithWork := 0

	for cz := minCZ; cz <= maxCZ; cz++ {
		for cx := minCX; cx <= maxCX; cx++ {
			ox := (cx-minCX)*mapTileSize + mapMargin
			oy := headerHeight + (cz-minCZ)*mapTileSize + mapMargin

			c := world.Find(cx, cz)
			col := color.RGBA{A: 255}
			if c != nil {
				if avg, ok := sim.ChunkAvg(c); ok {
					col = render.TemperatureColor(avg, scaleMin, scaleMax)
				}
				totalMs += c.ChunkMsLast
				if c.ChunkMsLast > 0 {
					chunksWithWork++
				}
			}
			render.FillRect(screen, ox, oy, mapTileSize, mapTileSize, col)
			render.StrokeRect(screen, ox, oy, mapTileSize, mapTileSize, color.RGBA{R: 40, G: 40, B: 40, A: 255})
			if cx == g.selCX && cz == g.selCZ {
				render.StrokeRect(screen, ox-1, oy-1, mapTileSize+2, mapTileSize+2, color.White)
			}
			if c != nil {
				ui.DrawTextCentered(screen, fmtMs(c.ChunkMsLast), ox+mapTileSize/2, oy+mapTileSize/2)
			}
		}
	}

	avgMs := 0.0
	if chunksWithWork > 0 {
		avgMs = totalMs / float64(chunksWithWork)
	}

	g.gradient.Blit(screen, 0, 10, 20)
	info := fmt.Sprintf(
		"[WORLD] chunks=%d  sel=(%d,%d)  frame=%d  paused=%v  | per-frame: avg/chunk=%.3f ms  total=%.3f ms  (WASD/arrows, Enter=open, Space=pause)",
		len(world.Chunks), g.selCX, g.selCZ, g.srv.Frames(), g.srv.IsPaused(), avgMs, totalMs)
	ui.DrawText(screen, info, 10, 36)
}

func (g *Game) drawChunkView(screen *ebiten.Image) {
	c := g.srv.World.Find(g.focusCX, g.focusCZ)

	scaleMin, scaleMax := float32(sim.TempMin), float32(sim.TempMax)
	if g.ctrl && c != nil {
		scaleMin, scaleMax = sim.SliceMinMax(c, g.zSlice)
		if scaleMax-scaleMin < 1e-6 {
			scaleMin, scaleMax = sim.TempMin, sim.TempMax
		}
	}

	g.gradient.Blit(screen, 0, 10, 20)

	if c == nil {
		line := fmt.Sprintf("[CHUNK] at (%d,%d)  z=%d  frame=%d  paused=%v",
			g.focusCX, g.focusCZ, g.zSlice, g.srv.Frames(), g.srv.IsPaused())
		ui.DrawText(screen, line, 10, 36)
		return
	}

	g.slice.Blit(screen, c, g.zSlice, scaleMin, scaleMax, pixelScale, 0, headerHeight)

	totalMs := 0.0
	loaded := 0
	for sy := 0; sy < sim.SectionsY; sy++ {
		if !c.SectionLoaded[sy] {
			continue
		}
		totalMs += c.SectionMsLast[sy]
		loaded++
	}
	avgMs := 0.0
	if loaded > 0 {
		avgMs = totalMs / float64(loaded)
	}

	head := fmt.Sprintf(
		"[CHUNK] (%d,%d)  z=%d  frame=%d  paused=%v  | per-frame: avg/section=%.3f ms  total sections=%.3f ms  (Up/Down slice, Esc=back, Space=pause, Shift+Click=paint all layers)",
		g.focusCX, g.focusCZ, g.zSlice, g.srv.Frames(), g.srv.IsPaused(), avgMs, totalMs)
	ui.DrawText(screen, head, 10, 36)

	cx := sim.ChunkW * pixelScale / 2
	for sy := 0; sy < sim.SectionsY; sy++ {
		if !c.SectionLoaded[sy] && c.SectionMsLast[sy] <= 0 {
			continue
		}
		yCenter := headerHeight + (sy*sim.SectionEdge+sim.SectionEdge/2)*pixelScale
		ui.DrawTextCentered(screen, fmtMs(c.SectionMsLast[sy]), cx, yCenter)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowW, WindowH
}

func fmtMs(ms float64) string {
	if ms < 0.001 {
		return "<0.001"
	}
	return fmt.Sprintf("%.2f", ms)
}
