package grid

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/weihan/gridmate/internal/models"
)

// RenderBoundsChart renders a PNG chart of the close series with the grid
// envelope overlaid: closes (blue solid), upper and lower bounds (red and
// green dashed). Returns raw PNG bytes.
func (s *Service) RenderBoundsChart(series *models.PriceSeries, bounds *models.GridBounds) ([]byte, error) {
	if series == nil || bounds == nil {
		return nil, fmt.Errorf("series and bounds are required")
	}

	var xValues []time.Time
	var closeY []float64
	for _, b := range series.Bars {
		t, err := time.Parse("2006-01-02", b.Date)
		if err != nil {
			continue
		}
		xValues = append(xValues, t)
		closeY = append(closeY, b.Close)
	}
	if len(xValues) < 2 {
		return nil, fmt.Errorf("need at least 2 dated bars, got %d", len(xValues))
	}

	upperY := make([]float64, len(xValues))
	lowerY := make([]float64, len(xValues))
	for i := range xValues {
		upperY[i] = bounds.Upper
		lowerY[i] = bounds.Lower
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: closeY,
	}
	upperSeries := chart.TimeSeries{
		Name: "Upper Bound",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("dc2626"), // red-600
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: upperY,
	}
	lowerSeries := chart.TimeSeries{
		Name: "Lower Bound",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("16a34a"), // green-600
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: lowerY,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Grid Bounds", bounds.Symbol),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("01-02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			closeSeries,
			upperSeries,
			lowerSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
