package server

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/quantfold/tvm/internal/finance"
)

// RenderScheduleChart renders a PNG line chart from an amortization schedule.
// Two series: Remaining Balance (blue solid) and Interest (gray dashed).
// Returns raw PNG bytes.
func RenderScheduleChart(rows []finance.ScheduleRow) ([]byte, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(rows))
	}

	xValues := make([]float64, len(rows))
	balanceY := make([]float64, len(rows))
	interestY := make([]float64, len(rows))

	for i, row := range rows {
		xValues[i] = float64(row.Period)
		balanceY[i] = row.Balance
		interestY[i] = -row.Interest
	}

	balanceSeries := chart.ContinuousSeries{
		Name: "Remaining Balance",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: balanceY,
	}

	interestSeries := chart.ContinuousSeries{
		Name: "Interest",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: interestY,
		YAxis:   chart.YAxisSecondary,
	}

	graph := chart.Chart{
		Title:  "Amortization Schedule",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			balanceSeries,
			interestSeries,
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
