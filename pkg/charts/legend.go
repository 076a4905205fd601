package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// legendEntry is one context switch series in the chart legend.
type legendEntry struct {
	Label string
	Color drawing.Color
}

// seriesLegend returns a renderable that draws a horizontal legend along the
// top of the canvas, one color swatch per context switch series. go-chart
// only ships a legend for chart.Chart series, so bar charts draw their own.
func seriesLegend(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		textStyle := chart.Style{
			Font:      defaults.Font,
			FontSize:  9.0,
			FontColor: chart.DefaultTextColor,
		}
		textStyle.WriteTextOptionsToRenderer(r)
		const swatch = 10
		const pad = 6
		x := cb.Left + pad
		y := cb.Top + pad
		for _, e := range entries {
			r.SetFillColor(e.Color)
			r.MoveTo(x, y)
			r.LineTo(x+swatch, y)
			r.LineTo(x+swatch, y+swatch)
			r.LineTo(x, y+swatch)
			r.Close()
			r.Fill()

			tx := x + swatch + 4
			tb := r.MeasureText(e.Label)
			r.Text(e.Label, tx, y+swatch-1)
			x = tx + tb.Width() + 3*pad
		}
	}
}

// xAxisCaption returns a renderable that centers a caption below the bar
// labels, inside the bottom background padding.
func xAxisCaption(caption string) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		textStyle := chart.Style{
			Font:      defaults.Font,
			FontSize:  10.0,
			FontColor: chart.DefaultTextColor,
		}
		textStyle.WriteTextOptionsToRenderer(r)
		tb := r.MeasureText(caption)
		x := cb.Left + (cb.Width()-tb.Width())/2
		r.Text(caption, x, cb.Bottom+36)
	}
}
