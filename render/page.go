package render

import (
	"strings"

	"github.com/lixenwraith/gaze-browse/vmath"
)

// Target is a clickable region of the page in cell coordinates
type Target struct {
	Label      string
	X, Y, W, H int
}

func (t Target) contains(x, y int) bool {
	return x >= t.X && x < t.X+t.W && y >= t.Y && y < t.Y+t.H
}

// Page is a synthetic document of fixed cell size shown behind the zoom
type Page struct {
	cols, rows int
	lines      [][]rune
	targets    []Target
}

var pageWords = strings.Fields(`gaze browse zoom page link search news mail video
	forum login home about contact help settings account profile archive
	article comment share reply next previous more open close menu`)

// NewPage generates a deterministic page of cols x rows cells with linked targets
func NewPage(cols, rows int, seed uint64) *Page {
	cols = max(cols, 8)
	rows = max(rows, 4)
	rng := vmath.NewFastRand(seed)

	p := &Page{cols: cols, rows: rows, lines: make([][]rune, rows)}
	for y := range p.lines {
		line := make([]rune, cols)
		for x := range line {
			line[x] = ' '
		}
		// Every third line is body text, the rest stay blank
		if y%3 == 1 {
			x := 2
			for x < cols-2 {
				w := []rune(pageWords[int(rng.Next()%uint64(len(pageWords)))])
				if x+len(w) >= cols-2 {
					break
				}
				copy(line[x:], w)
				x += len(w) + 1
			}
		}
		p.lines[y] = line
	}

	// Targets sit on blank lines between text
	for y := 3; y+1 < rows; y += 6 {
		for x := 4; x+10 < cols; x += 18 {
			if rng.Float64() < 0.5 {
				continue
			}
			label := strings.ToUpper(pageWords[int(rng.Next()%uint64(len(pageWords)))])
			t := Target{Label: label, X: x, Y: y, W: len(label) + 2, H: 1}
			copy(p.lines[y][x+1:], []rune(label))
			p.targets = append(p.targets, t)
		}
	}
	return p
}

func (p *Page) Size() (cols, rows int) { return p.cols, p.rows }

// Targets returns the page targets
func (p *Page) Targets() []Target {
	return p.targets
}

// cell maps a normalized page coordinate to cell indices
func (p *Page) cell(rel vmath.Vec2F) (x, y int, ok bool) {
	if rel.X < 0 || rel.X >= 1 || rel.Y < 0 || rel.Y >= 1 {
		return 0, 0, false
	}
	return int(rel.X * float64(p.cols)), int(rel.Y * float64(p.rows)), true
}

// RuneAt returns the page character at a normalized coordinate and whether it belongs to a target
func (p *Page) RuneAt(rel vmath.Vec2F) (rune, bool) {
	x, y, ok := p.cell(rel)
	if !ok {
		return ' ', false
	}
	_, hit := p.targetAt(x, y)
	return p.lines[y][x], hit
}

func (p *Page) targetAt(x, y int) (Target, bool) {
	for _, t := range p.targets {
		if t.contains(x, y) {
			return t, true
		}
	}
	return Target{}, false
}

// TargetAt returns the target under a content coordinate
func (p *Page) TargetAt(content vmath.Vec2F) (Target, bool) {
	if content.X < 0 || content.Y < 0 {
		return Target{}, false
	}
	return p.targetAt(int(content.X), int(content.Y))
}

// ContentFromRelative converts a normalized page coordinate to page cells
func (p *Page) ContentFromRelative(rel vmath.Vec2F) vmath.Vec2F {
	rel = vmath.V2FClamp01(rel)
	return vmath.Vec2F{X: rel.X * float64(p.cols), Y: rel.Y * float64(p.rows)}
}
