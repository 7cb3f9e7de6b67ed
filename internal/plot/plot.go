// Package plot renders the count distribution of one width as an SVG chart.
package plot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

// ErrEmpty is returned for a table without any counted value; go-chart
// cannot range an empty series.
var ErrEmpty = errors.New("plot: no values to chart")

// Series converts t into parallel X (value) and Y (count) slices in
// ascending value order.
func Series(t store.Table) (xvals, yvals []float64) {
	xvals = make([]float64, 0, t.Len())
	yvals = make([]float64, 0, t.Len())
	for v, c := range t.Ascending() {
		xvals = append(xvals, float64(v))
		yvals = append(yvals, float64(c))
	}
	return xvals, yvals
}

// Render writes a scatter plot of t's counts as SVG.
func Render(w io.Writer, t store.Table, title string) error {
	xvals, yvals := Series(t)
	if len(xvals) == 0 {
		return ErrEmpty
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{
			Name: fmt.Sprintf("value (width %d)", t.Width()),
		},
		YAxis: chart.YAxis{
			Name: "occurrences",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	// A flat series has a zero-width range, which go-chart rejects.
	if lo, hi := bounds(xvals); lo == hi {
		graph.XAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	if lo, hi := bounds(yvals); lo == hi {
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: hi + 1}
	}

	return graph.Render(chart.SVG, w)
}

func bounds(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// RenderFile is Render into a newly created file at path.
func RenderFile(path string, t store.Table, title string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(fh, t, title); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
