//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"life3d/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a toggleable status panel over the simulation view.
type Overlay struct {
	visible bool
	help    []string
}

// NewOverlay constructs a visible overlay with the provided help lines.
func NewOverlay(help []string) *Overlay {
	return &Overlay{visible: true, help: help}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the parameter snapshot and help text when visible.
func (o *Overlay) Draw(screen *ebiten.Image, snap core.ParameterSnapshot, extra ...string) {
	if !o.visible {
		return
	}
	var b strings.Builder
	for _, group := range snap.Groups {
		b.WriteString(group.Name)
		b.WriteString(": ")
		for i, p := range group.Params {
			if i != 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%s=%s", p.Label, p.Value)
		}
		b.WriteByte('\n')
	}
	for _, line := range extra {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(o.help) > 0 {
		b.WriteString(strings.Join(o.help, "  "))
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)
}
