package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"life3d/internal/sims/life3d"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// TermUI is an interactive gocui frontend viewing the lattice one z-slice at
// a time.
type TermUI struct {
	runner *Runner
	g      *gocui.Gui
	k      []keyBinding

	slice    int
	sliceBuf []uint8

	liveFiller string
	deadFiller string
	seed       int64
}

var modeDescr = map[Mode]string{
	ModeManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
	ModeRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
	ModeFinished: aurora.Colorize("finished", aurora.RedFg).String(),
}

// NewTermUI constructs the terminal frontend around a runner.
func NewTermUI(runner *Runner, seed int64) *TermUI {
	t := &TermUI{
		runner:     runner,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		seed:       seed,
	}
	t.runner.View(func(w *life3d.World) {
		t.slice = w.Grid().Size() / 2
	})

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Randomize", t.cmdRandomize, ""},
		{gocui.KeyArrowUp, "UP", "Slice up", t.cmdSliceUp, ""},
		{gocui.KeyArrowDown, "DOWN", "Slice down", t.cmdSliceDown, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, "lattice"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings(t.k)
	return t
}

func (t *TermUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the gocui main loop until the user exits.
func (t *TermUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

// Refresh redraws the dynamic views. Safe to call from any goroutine.
func (t *TermUI) Refresh() {
	t.renderLattice()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *TermUI) renderLattice() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("lattice")
		if e != nil {
			return e
		}
		v.Clear()
		v.Title = fmt.Sprintf("Lattice (slice z=%d)", t.slice)

		var n int
		t.runner.View(func(w *life3d.World) {
			n = w.Grid().Size()
			t.sliceBuf = w.Grid().Slice(t.slice, t.sliceBuf)
		})

		maxW, maxH := v.Size()
		crop := n > maxW || n > maxH

		var b bytes.Buffer
		for y := 0; y < n; y++ {
			if y >= maxH {
				break
			}
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == maxH-1 {
				b.WriteString(aurora.Red("The slice is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < n; x++ {
				if x >= maxW {
					break
				}
				if t.sliceBuf[y*n+x] != 0 {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *TermUI) renderStatus() {
	s := t.runner.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", s.Population))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
			mode := modeDescr[s.Mode]
			if s.Reason != "" {
				mode = fmt.Sprintf("%s (%s)", mode, s.Reason)
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		}
		return nil
	})
}

func (t *TermUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("configuration")
		if e != nil {
			return nil
		}
		v.Clear()
		t.runner.View(func(w *life3d.World) {
			for _, group := range w.Parameters().Groups {
				for _, p := range group.Params {
					_, _ = fmt.Fprintln(v, t.renderProp(p.Label, "%v", p.Value))
				}
			}
		})
		return nil
	})
}

func (t *TermUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *TermUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 16

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("lattice")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "3D Life — cubic cellular automaton"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("lattice", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
		t.renderLattice()
	} else {
		t.renderLattice()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *TermUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *TermUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *TermUI) cmdStep(_ *gocui.View) error {
	t.runner.Step()
	return nil
}

func (t *TermUI) cmdRun(_ *gocui.View) error {
	t.runner.Run()
	return nil
}

func (t *TermUI) cmdStop(_ *gocui.View) error {
	t.runner.Stop()
	return nil
}

func (t *TermUI) cmdClear(_ *gocui.View) error {
	t.runner.Clear()
	return nil
}

func (t *TermUI) cmdRandomize(_ *gocui.View) error {
	t.seed = time.Now().UnixNano()
	t.runner.Reset(t.seed)
	return nil
}

func (t *TermUI) cmdSliceUp(_ *gocui.View) error {
	t.runner.View(func(w *life3d.World) {
		if t.slice < w.Grid().Size()-1 {
			t.slice++
		}
	})
	t.Refresh()
	return nil
}

func (t *TermUI) cmdSliceDown(_ *gocui.View) error {
	if t.slice > 0 {
		t.slice--
	}
	t.Refresh()
	return nil
}

func (t *TermUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	// Cursor coordinates may land outside the lattice; the bounds-safe write
	// drops those.
	t.runner.Do(func(w *life3d.World) {
		w.ToggleCell(cx, cy, t.slice)
	})
	return nil
}
