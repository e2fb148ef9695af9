//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"life3d/internal/core"
	"life3d/internal/render"
	"life3d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const ageCap = 8

// cellToggler is implemented by sims that support painting cells from the UI.
type cellToggler interface {
	ToggleCell(x, y, z int)
}

// Game adapts a core simulation to the ebiten.Game interface, viewing the
// cubic lattice one z-slice at a time.
type Game struct {
	sim     core.Sim
	painter *render.SlicePainter
	ages    *render.AgeField
	palette []color.RGBA
	overlay *ui.Overlay
	stepper *core.FixedStep

	sliceBuf []uint8
	scale    int
	slice    int
	paused   bool
	tickOnce bool
	flat     bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	n := sim.Grid().Size()
	g := &Game{
		sim:     sim,
		painter: render.NewSlicePainter(n),
		ages:    render.NewAgeField(n, ageCap),
		palette: render.AgePalette(
			color.RGBA{R: 10, G: 10, B: 14, A: 255},
			color.RGBA{R: 90, G: 220, B: 255, A: 255},
			color.RGBA{R: 30, G: 70, B: 160, A: 255},
			ageCap,
		),
		overlay: ui.NewOverlay([]string{
			"space pause", "n step", "r reset", "s shuffle",
			"up/down slice", "a flat colors", "click paint", "tab hud", "q quit",
		}),
		stepper: core.NewFixedStep(cfg.StepsPS),
		scale:   cfg.Scale,
		slice:   n / 2,
		seed:    cfg.Seed,
	}
	g.ages.Reset(sim.Grid())
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.ages.Reset(g.sim.Grid())
	g.stepper.Resume()
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on its own
// fixed-step cadence, independent of the display rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.stepper.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.flat = !g.flat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	n := g.sim.Grid().Size()
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && g.slice < n-1 {
		g.slice++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.slice > 0 {
		g.slice--
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if toggler, ok := g.sim.(cellToggler); ok {
			mx, my := ebiten.CursorPosition()
			x, y := screenToCell(mx, my, g.scale)
			toggler.ToggleCell(x, y, g.slice)
			g.ages.Sync(g.sim.Grid())
		}
	}

	g.overlay.Update()

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.ages.Advance(g.sim.Grid())
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current z-slice and the status overlay. Flat mode skips
// the age palette and shows cells as plain alive or dead.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.flat {
		g.sliceBuf = g.sim.Grid().Slice(g.slice, g.sliceBuf)
		g.painter.BlitBinary(screen, g.sliceBuf, g.palette[1], g.palette[0], g.scale)
	} else {
		g.sliceBuf = g.ages.SliceAges(g.slice, g.sliceBuf)
		g.painter.BlitAges(screen, g.sliceBuf, g.palette, g.scale)
	}

	status := fmt.Sprintf("slice z=%d/%d", g.slice, g.sim.Grid().Size()-1)
	if g.paused {
		status += "  [paused]"
	}
	if provider, ok := g.sim.(core.ParameterProvider); ok {
		g.overlay.Draw(screen, provider.Parameters(), status)
	} else {
		g.overlay.Draw(screen, core.ParameterSnapshot{}, status)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.sim.Grid().Size()
	return n * g.scale, n * g.scale
}
