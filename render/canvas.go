package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/parameter"
	"github.com/lixenwraith/gaze-browse/status"
	"github.com/lixenwraith/gaze-browse/vmath"
)

// gaugeWidth is the deviation gauge length in cells
const gaugeWidth = 10

// focusRadius is the surface distance within which dimming ramps in
const focusRadius = 0.25

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Canvas draws action views onto a tcell screen
// Row 0 is the header, the last row the status bar, everything between shows the page
type Canvas struct {
	screen tcell.Screen
	page   *Page
	frames *Frames

	gaze   vmath.Vec2F
	gazeOK bool
}

// NewCanvas creates a canvas over screen; frames may be nil when no overlay is used
func NewCanvas(screen tcell.Screen, page *Page, frames *Frames) *Canvas {
	return &Canvas{screen: screen, page: page, frames: frames}
}

// pageArea returns the page region in screen cells
func (c *Canvas) pageArea() (x0, y0, w, h int) {
	sw, sh := c.screen.Size()
	h = sh - parameter.TopMargin - parameter.BottomMargin
	return 0, parameter.TopMargin, sw, max(h, 1)
}

// RelativeAt converts a screen cell to a normalized surface coordinate
func (c *Canvas) RelativeAt(x, y int) (vmath.Vec2F, bool) {
	x0, y0, w, h := c.pageArea()
	if x < x0 || x >= x0+w || y < y0 || y >= y0+h || w == 0 {
		return vmath.Vec2F{}, false
	}
	return vmath.Vec2F{
		X: (float64(x-x0) + 0.5) / float64(w),
		Y: (float64(y-y0) + 0.5) / float64(h),
	}, true
}

// cellAt converts a normalized surface coordinate to a screen cell
func (c *Canvas) cellAt(rel vmath.Vec2F) (x, y int, ok bool) {
	if !vmath.V2FFinite(rel) || rel.X < 0 || rel.X >= 1 || rel.Y < 0 || rel.Y >= 1 {
		return 0, 0, false
	}
	x0, y0, w, h := c.pageArea()
	return x0 + int(rel.X*float64(w)), y0 + int(rel.Y*float64(h)), true
}

// SetGaze sets the marker drawn for the current input
func (c *Canvas) SetGaze(gaze vmath.Vec2F, ok bool) {
	c.gaze, c.gazeOK = gaze, ok
}

func (c *Canvas) Clear() {
	c.screen.Fill(' ', style(RgbPageText, RgbBackground))
}

func (c *Canvas) Show() {
	c.screen.Show()
}

// DrawPage draws the page without magnification
func (c *Canvas) DrawPage() {
	c.drawPageView(action.ZoomView{Coordinate: vmath.Center, LogZoom: 1})
	c.drawGaze()
	c.drawText(0, 0, "gaze-browse  [z] zoom  [k] text input  [d] freeze  [p] pause  [esc] abort  [q] quit", style(RgbStatusBar, RgbStatusBg), true)
}

// DrawZoom draws the magnified page, crosshair and header
func (c *Canvas) DrawZoom(v action.ZoomView) {
	c.drawPageView(v)

	if x, y, ok := c.cellAt(v.ScreenAt(v.Coordinate)); ok {
		fg := RgbCrosshair
		if v.State == action.StateDebugFixed {
			fg = RgbFrozen
		}
		_, _, st, _ := c.screen.GetContent(x, y)
		_, bg, _ := st.Decompose()
		c.screen.SetContent(x, y, parameter.CrosshairRune, nil, style(fg, TcellToRGB(bg)))
	}
	c.drawGaze()
	c.drawHeader(v)
}

func (c *Canvas) drawPageView(v action.ZoomView) {
	x0, y0, w, h := c.pageArea()
	focus := v.ScreenAt(v.Coordinate)
	cellW := v.LogZoom / float64(w)
	cellH := v.LogZoom / float64(h)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			rel, _ := c.RelativeAt(x, y)
			p := v.PageAt(rel)

			r, hit := c.page.RuneAt(p)
			fg, bg := RgbPageText, RgbBackground
			if hit {
				fg, bg = RgbTargetText, RgbTargetBg
			} else if r == ' ' && onGrid(p, cellW, cellH) {
				r, fg = '·', RgbPageGrid
			}

			if v.Dimming > 0 {
				amount := v.Dimming * vmath.Clamp01(vmath.V2FDist(rel, focus)/focusRadius)
				fg, bg = Dim(fg, amount), Dim(bg, amount)
			}
			c.screen.SetContent(x, y, r, nil, style(fg, bg))
		}
	}
}

// onGrid reports whether a grid line crosses the page area covered by one cell
func onGrid(p vmath.Vec2F, cellW, cellH float64) bool {
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return false
	}
	fx := p.X/parameter.PageGridSpacingX - math.Floor(p.X/parameter.PageGridSpacingX)
	fy := p.Y/parameter.PageGridSpacingY - math.Floor(p.Y/parameter.PageGridSpacingY)
	return fx < cellW/parameter.PageGridSpacingX && fy < cellH/parameter.PageGridSpacingY
}

func (c *Canvas) drawGaze() {
	if !c.gazeOK {
		return
	}
	if x, y, ok := c.cellAt(c.gaze); ok {
		_, _, st, _ := c.screen.GetContent(x, y)
		_, bg, _ := st.Decompose()
		c.screen.SetContent(x, y, 'o', nil, style(RgbGaze, TcellToRGB(bg)))
	}
}

func (c *Canvas) drawHeader(v action.ZoomView) {
	base := style(RgbStatusBar, RgbStatusBg)
	label := fmt.Sprintf(" %s  log %.3f  lin %.3f  samples %2d  dev ", v.Phase, v.LogZoom, v.LinZoom, v.Samples)
	x := c.drawText(0, 0, label, base, true)

	filled := int(math.Round(vmath.Clamp01(v.Deviation) * gaugeWidth))
	gauge := style(GaugeColor(v.Deviation), RgbStatusBg)
	for i := 0; i < gaugeWidth; i++ {
		r := '.'
		if i < filled {
			r = '#'
		}
		c.screen.SetContent(x+i, 0, r, nil, gauge)
	}
	x += gaugeWidth
	if v.State == action.StateDebugFixed {
		c.drawText(x, 0, "  FIXED", style(RgbFrozen, RgbStatusBg), false)
	}
}

// DrawKeyboard draws the keyboard frame when its overlay frame is open
func (c *Canvas) DrawKeyboard(v action.KeyboardView) {
	if c.frames != nil {
		if _, ok := c.frames.Name(v.Frame); !ok {
			return
		}
	}
	c.DrawPage()

	x0, y0, w, h := c.pageArea()
	fh := max(int(float64(h)*parameter.KeyboardHeightPercent), len(keyboardRows)+3)
	top := y0 + h - fh
	bg := style(RgbKeyboardKey, RgbKeyboardBg)
	for y := max(top, y0); y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			c.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	c.drawText(x0+2, top+1, "> "+v.Text+"_", style(RgbKeyboardText, RgbKeyboardBg), false)
	for i, row := range keyboardRows {
		keys := row
		if v.Shift {
			keys = strings.ToUpper(row)
		}
		spaced := strings.Join(strings.Split(keys, ""), " ")
		c.drawText(x0+4+i, top+3+i, spaced, bg, false)
	}
	shift := style(RgbKeyboardKey, RgbKeyboardBg)
	if v.Shift {
		shift = style(RgbShiftOn, RgbKeyboardBg)
	}
	c.drawText(x0+2, top+3+len(keyboardRows), "[shift] [space] [bksp] [enter] submit  [tab] done", shift, false)
}

// DimScreen darkens everything drawn so far by amount in [0,1]
func (c *Canvas) DimScreen(amount float64) {
	if amount <= 0 {
		return
	}
	w, h := c.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, comb, st, _ := c.screen.GetContent(x, y)
			fg, bg, attr := st.Decompose()
			dimmed := style(Dim(TcellToRGB(fg), amount), Dim(TcellToRGB(bg), amount)).Attributes(attr)
			c.screen.SetContent(x, y, r, comb, dimmed)
		}
	}
}

// DrawPaused marks the surface as paused in the middle of the page
func (c *Canvas) DrawPaused() {
	x0, y0, w, h := c.pageArea()
	label := " PAUSED  [p] resume "
	c.drawText(x0+max(0, (w-len(label))/2), y0+h/2, label, style(RgbFrozen, RgbStatusBg), false)
}

// DrawStatus draws the status bar with a message and formatted metrics
func (c *Canvas) DrawStatus(entries []status.Entry, message string) {
	_, sh := c.screen.Size()
	var b strings.Builder
	if message != "" {
		b.WriteString(" ")
		b.WriteString(message)
		b.WriteString(" |")
	}
	for _, e := range entries {
		fmt.Fprintf(&b, " %s=%s", e.Key, e.Value)
	}
	c.drawText(0, sh-1, b.String(), style(RgbStatusBar, RgbStatusBg), true)
}

// drawText writes s at (x, y) and returns the column after it
// fill pads the row to the screen width
func (c *Canvas) drawText(x, y int, s string, st tcell.Style, fill bool) int {
	sw, _ := c.screen.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		c.screen.SetContent(x, y, r, nil, st)
		x++
	}
	end := x
	if fill {
		for ; x < sw; x++ {
			c.screen.SetContent(x, y, ' ', nil, st)
		}
	}
	return end
}
