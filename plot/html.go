package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// newChart creates an interactive scatter chart of view v with one series
// per track. Section views plot the negated vertical depth so that the well
// descends down the page.
func newChart(v View, title string, tracks []Track) *charts.Scatter {
	xLabel, yLabel := v.labels()
	if v == SectionView {
		yLabel = "-" + yLabel
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title, Width: "800px", Height: "800px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: v.String()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xLabel, NameLocation: "middle", NameGap: 25,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yLabel, NameLocation: "middle", NameGap: 40,
		}),
	)

	for _, tr := range tracks {
		xs, ys := v.project(tr)
		pts := make([]opts.ScatterData, len(xs))
		for i := range xs {
			y := ys[i]
			if v == SectionView {
				y = -y
			}
			pts[i] = opts.ScatterData{Value: []interface{}{xs[i], y}}
		}
		scatter.AddSeries(tr.Name, pts,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}),
		)
	}
	return scatter
}

// WriteHTML renders plan and section charts of tracks as a single HTML page.
func WriteHTML(title string, tracks []Track, wr io.Writer) error {
	page := components.NewPage()
	page.AddCharts(
		newChart(PlanView, title, tracks),
		newChart(SectionView, title, tracks),
	)
	if err := page.Render(wr); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// SaveHTML is WriteHTML into prefix.html. It returns the file name.
func SaveHTML(prefix, title string, tracks []Track) (string, error) {
	file := prefix + ".html"
	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	if err = WriteHTML(title, tracks, f); err != nil {
		f.Close()
		return "", err
	}
	return file, f.Close()
}
