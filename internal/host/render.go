package host

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/jmylchreest/huepoint/internal/colour"
	"github.com/jmylchreest/huepoint/internal/session"
)

const (
	markerRune = '█'

	hintLive   = "move to blend · click/enter to freeze · q to quit"
	hintFrozen = "right-click/r to resume · q to quit"
)

// Draw renders the surface, marker, label and hint.
func (h *Host) Draw() {
	bg := h.session.Colour()
	fg := colour.Contrasting(bg)
	base := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(fg))

	w, ht := h.screen.Size()
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			h.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	x0, y0, x1, y1 := h.markerCells()
	for y := max(y0, 0); y < min(y1, ht); y++ {
		for x := max(x0, 0); x < min(x1, w); x++ {
			h.screen.SetContent(x, y, markerRune, nil, base)
		}
	}

	if h.session.State() == session.Frozen {
		if label := h.Label(); label != "" && ht > 2 {
			drawCentred(h.screen, ht/2, label, base.Bold(true))
		}
		drawCentred(h.screen, ht-1, hintFrozen, base)
	} else {
		drawCentred(h.screen, ht-1, hintLive, base)
	}

	h.screen.Show()
	h.dirty = false
}

// Label returns the frozen caption, or "" while Live.
func (h *Host) Label() string {
	resolved, ok := h.session.Resolved()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s  %s  (%s)", resolved.RGB.Hex(), resolved.Label(), resolved.Object)
}

// drawCentred writes text centred on row y, truncating to the screen width.
func drawCentred(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	text = runewidth.Truncate(text, w, "…")
	x := (w - runewidth.StringWidth(text)) / 2
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func tcellColor(c colour.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
