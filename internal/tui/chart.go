package tui

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/jask/retrobank/internal/ledger"
)

const trendHeight = 6

// renderTrend draws the running balance as a braille line. It needs at least
// two points to draw anything.
func renderTrend(points []ledger.Point, width int, loc *time.Location) string {
	if len(points) < 2 || width < 10 {
		return mutedStyle.Render("NOT ENOUGH HISTORY FOR A TREND")
	}

	start, end := points[0].Time.In(loc), points[len(points)-1].Time.In(loc)
	if !end.After(start) {
		end = start.Add(time.Minute)
	}
	minVal, maxVal := points[0].Balance.InexactFloat64(), points[0].Balance.InexactFloat64()
	for _, p := range points[1:] {
		v := p.Balance.InexactFloat64()
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	pad := (maxVal - minVal) * 0.1
	if pad == 0 {
		pad = 1
	}

	chart := tslc.New(width, trendHeight)
	chart.SetStyle(chartLineStyle)
	chart.AxisStyle = chartAxisStyle
	chart.LabelStyle = chartLabelStyle
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(max(0, minVal-pad), maxVal+pad)
	chart.SetViewYRange(max(0, minVal-pad), maxVal+pad)
	for _, p := range points {
		chart.Push(tslc.TimePoint{Time: p.Time.In(loc), Value: p.Balance.InexactFloat64()})
	}
	chart.DrawBraille()
	return chart.View()
}
