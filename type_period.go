package tradebook

import (
	"fmt"

	"github.com/etnz/tradebook/date"
)

// Period is the aggregation granularity of statistics and of the revenue chart.
type Period = date.Period

// Periods supported by the backend statistics.
const (
	Weekly  = date.Weekly
	Monthly = date.Monthly
	Yearly  = date.Yearly
)

// Periods lists the supported periods in display order.
var Periods = []Period{Weekly, Monthly, Yearly}

// ParsePeriod parses "weekly", "monthly" or "yearly" (or "week", "month", "year").
func ParsePeriod(p string) (Period, error) {
	period, err := date.ParsePeriod(p)
	if err != nil {
		return Weekly, err
	}
	if period == date.Daily {
		return Weekly, fmt.Errorf("unsupported period %s", p)
	}
	return period, nil
}
