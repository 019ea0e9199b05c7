package trace

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	colorLogZoom   = color.RGBA{R: 61, G: 89, B: 161, A: 255}
	colorDeviation = color.RGBA{R: 247, G: 118, B: 142, A: 255}
	colorDimming   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorPath      = color.RGBA{R: 255, G: 165, A: 255}
	colorGaze      = color.RGBA{R: 125, G: 207, B: 255, A: 160}
)

// Export writes <name>_zoom.png and <name>_path.png into dir and returns the written paths
func (r *Recorder) Export(dir, name string) ([]string, error) {
	ticks := r.Ticks()
	if len(ticks) == 0 {
		return nil, ErrNoSamples
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create trace dir: %w", err)
	}

	zoomFile := filepath.Join(dir, name+"_zoom.png")
	if err := saveZoomPlot(ticks, name, zoomFile); err != nil {
		return nil, fmt.Errorf("zoom plot: %w", err)
	}
	pathFile := filepath.Join(dir, name+"_path.png")
	if err := savePathPlot(ticks, name, pathFile); err != nil {
		return nil, fmt.Errorf("path plot: %w", err)
	}
	return []string{zoomFile, pathFile}, nil
}

func addLine(p *plot.Plot, label string, pts plotter.XYs, c color.Color) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// saveZoomPlot plots log zoom, deviation and dimming over time
func saveZoomPlot(ticks []Tick, name, file string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Zoom Progression", name)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Value"
	p.Y.Min, p.Y.Max = 0, 1

	logZoom := make(plotter.XYs, len(ticks))
	deviation := make(plotter.XYs, len(ticks))
	dimming := make(plotter.XYs, len(ticks))
	for i, t := range ticks {
		logZoom[i] = plotter.XY{X: t.Time, Y: t.View.LogZoom}
		deviation[i] = plotter.XY{X: t.Time, Y: t.View.Deviation}
		dimming[i] = plotter.XY{X: t.Time, Y: t.View.Dimming}
	}

	if err := addLine(p, "log zoom", logZoom, colorLogZoom); err != nil {
		return err
	}
	if err := addLine(p, "deviation", deviation, colorDeviation); err != nil {
		return err
	}
	if err := addLine(p, "dimming", dimming, colorDimming); err != nil {
		return err
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p.Save(10*vg.Inch, 5*vg.Inch, file)
}

// savePathPlot plots the page gaze samples and the zoom coordinate path
func savePathPlot(ticks []Tick, name, file string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Page Coordinates", name)
	p.X.Label.Text = "Page X"
	p.Y.Label.Text = "Page Y"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	path := make(plotter.XYs, 0, len(ticks))
	gaze := make(plotter.XYs, 0, len(ticks))
	for _, t := range ticks {
		// Page space has y down; flip so the plot reads like the screen
		path = append(path, plotter.XY{X: t.View.Coordinate.X, Y: 1 - t.View.Coordinate.Y})
		if t.Input.Valid {
			g := t.PageGaze()
			gaze = append(gaze, plotter.XY{X: g.X, Y: 1 - g.Y})
		}
	}

	if len(gaze) > 0 {
		sc, err := plotter.NewScatter(gaze)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = colorGaze
		sc.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(sc)
		p.Legend.Add("page gaze", sc)
	}
	if err := addLine(p, "zoom coordinate", path, colorPath); err != nil {
		return err
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}
