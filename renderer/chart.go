package renderer

import (
	"strconv"
	"strings"

	"github.com/etnz/tradebook"
)

// narrowMonthlyPoints is the number of months displayed on a narrow viewport.
const narrowMonthlyPoints = 8

// Chart is the revenue line chart.
//
// Series is the full revenue series as returned by the backend. Only
// Series[Offset:] is displayed: Labels and Values have one entry per
// displayed point. Tooltip maps a displayed index back into Series.
type Chart struct {
	Period tradebook.Period
	Title  string // series label
	Series []tradebook.RevenuePoint
	Offset int
	Labels []string
	Values []float64
	Empty  *Placeholder

	cur tradebook.Currency
}

// Tooltip is shown when hovering a point of the chart.
type Tooltip struct {
	Title     string // original period of the point
	Indicator string // direction of the revenue
	Body      string
}

func (t Tooltip) String() string { return t.Title + ": " + t.Body }

// NewChart builds the revenue chart of a series for a period and a viewport.
//
// A narrow viewport shows only the last 8 months of a monthly series. The
// truncation is display only, Tooltip still reports the original period.
func NewChart(series []tradebook.RevenuePoint, period tradebook.Period, vp Viewport, loc Locale) Chart {
	c := Chart{Period: period, Title: loc.SeriesLabel, Series: series, cur: loc.Currency}
	if len(series) == 0 {
		c.Empty = &Placeholder{Icon: "chart-line", Title: loc.EmptyChart}
		return c
	}
	if vp.Narrow() && period == tradebook.Monthly && len(series) > narrowMonthlyPoints {
		c.Offset = len(series) - narrowMonthlyPoints
	}
	for _, p := range series[c.Offset:] {
		c.Labels = append(c.Labels, label(p.Period, period, loc))
		c.Values = append(c.Values, p.Revenue.InexactFloat64())
	}
	return c
}

// Len returns the number of displayed points.
func (c Chart) Len() int { return len(c.Labels) }

// Tooltip returns the tooltip of the i-th displayed point.
func (c Chart) Tooltip(i int) (Tooltip, bool) {
	if i < 0 || i >= c.Len() {
		return Tooltip{}, false
	}
	p := c.Series[c.Offset+i]
	indicator := "📈"
	if p.Revenue.IsNegative() {
		indicator = "📉"
	}
	return Tooltip{
		Title:     p.Period,
		Indicator: indicator,
		Body:      indicator + " " + c.Title + ": " + c.cur.Format(p.Revenue),
	}, true
}

// label formats the period label of a point for the x axis: weekly labels
// are already short ("09/08"), monthly ones ("2025-09") are reduced to the
// month number, and yearly ones get the year suffix.
func label(s string, period tradebook.Period, loc Locale) string {
	switch period {
	case tradebook.Monthly:
		_, month, ok := strings.Cut(s, "-")
		if !ok {
			return s
		}
		m, err := strconv.Atoi(month)
		if err != nil {
			return s
		}
		return strconv.Itoa(m) + loc.MonthSuffix
	case tradebook.Yearly:
		return s + loc.YearSuffix
	default:
		return s
	}
}
