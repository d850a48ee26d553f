package plot

import (
	plt "github.com/phil-mansfield/pyplot"
)

// pyplotStyles cycles through the line styles used for successive tracks.
var pyplotStyles = []string{"k", "r", "b", "g", "m", "c"}

// QueuePyplot adds matplotlib plan and section figures of tracks to the
// pending pyplot script. The figures are saved to prefix_plan.png and
// prefix_section.png when plt.Execute is called.
func QueuePyplot(prefix, title string, tracks []Track) {
	for _, v := range []View{PlanView, SectionView} {
		plt.Figure(plt.FigSize(8, 8))

		lo, hi := 0.0, 0.0
		for i, tr := range tracks {
			xs, ys := v.project(tr)
			style := pyplotStyles[i%len(pyplotStyles)]
			plt.Plot(xs, ys, style, plt.LW(2))
			for _, y := range ys {
				if y < lo {
					lo = y
				}
				if y > hi {
					hi = y
				}
			}
		}

		xLabel, yLabel := v.labels()
		plt.Title(title + " (" + trackNames(tracks) + ")")
		plt.XLabel(xLabel, plt.FontSize(16))
		plt.YLabel(yLabel, plt.FontSize(16))
		if v == SectionView && hi > lo {
			// Depth increases downwards.
			plt.YLim(hi, lo)
		}
		plt.SaveFig(FileName(prefix, v, "png"))
	}
}

// trackNames lists track names in drawing order, which matches the order of
// pyplotStyles.
func trackNames(tracks []Track) string {
	s := ""
	for i, tr := range tracks {
		if i > 0 {
			s += ", "
		}
		s += tr.Name + ": " + pyplotStyles[i%len(pyplotStyles)]
	}
	return s
}
