/*
package plot draws plan and vertical section views of interpolated well
paths as PNG files, interactive HTML pages, or matplotlib figures.
*/
package plot

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/phil-mansfield/wellpath/trajectory"
)

// Track is one sampled well path. Positions are (north, east, down).
type Track struct {
	Name      string
	Positions []r3.Vector
}

// NewTrack samples points evenly spaced positions along ip using the given
// number of workers.
func NewTrack(ip *trajectory.Interpolator, points, workers int) (Track, error) {
	ps, err := ip.SampleProjections(points, workers)
	if err != nil {
		return Track{}, err
	}
	return Track{Name: ip.StrategyName(), Positions: ps}, nil
}

// View selects which projection of a track is drawn.
type View int

const (
	// PlanView shows north against east, as seen from above.
	PlanView View = iota
	// SectionView shows true vertical depth against horizontal distance
	// from the surface location, depth increasing downwards.
	SectionView
)

func (v View) String() string {
	switch v {
	case PlanView:
		return "plan"
	case SectionView:
		return "section"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

func (v View) labels() (x, y string) {
	if v == PlanView {
		return "East", "North"
	}
	return "Horizontal Distance", "True Vertical Depth"
}

// project returns the plotted coordinates of every position in tr.
func (v View) project(tr Track) (xs, ys []float64) {
	xs = make([]float64, len(tr.Positions))
	ys = make([]float64, len(tr.Positions))
	for i, p := range tr.Positions {
		if v == PlanView {
			xs[i], ys[i] = p.Y, p.X
		} else {
			xs[i], ys[i] = math.Hypot(p.X, p.Y), p.Z
		}
	}
	return xs, ys
}

// New creates a gonum plot of the given view with one line per track.
func New(v View, title string, tracks []Track) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = title
	p.X.Label.Text, p.Y.Label.Text = v.labels()
	if v == SectionView {
		p.Y.Scale = gplot.InvertedScale{Normalizer: p.Y.Scale}
	}

	for i, tr := range tracks {
		xs, ys := v.project(tr)
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j].X, pts[j].Y = xs[j], ys[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("track '%s': %w", tr.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(tr.Name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = v == SectionView
	return p, nil
}

// FileName returns the name of the figure of view v for an output prefix.
func FileName(prefix string, v View, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, v, ext)
}

// SavePNG writes plan and section PNGs to prefix_plan.png and
// prefix_section.png. width and height are in inches.
func SavePNG(prefix, title string, tracks []Track, width, height float64) ([]string, error) {
	files := []string{}
	for _, v := range []View{PlanView, SectionView} {
		p, err := New(v, title, tracks)
		if err != nil {
			return nil, err
		}
		file := FileName(prefix, v, "png")
		w, h := vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch
		if err := p.Save(w, h, file); err != nil {
			return nil, fmt.Errorf("save %s plot: %w", v, err)
		}
		files = append(files, file)
	}
	return files, nil
}
