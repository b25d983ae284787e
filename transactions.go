package tradebook

import (
	"github.com/etnz/tradebook/date"
)

// Transaction is one realized trade result recorded in the ledger.
type Transaction struct {
	ID          int       `json:"id"`
	Date        date.Date `json:"date"`
	CompanyName string    `json:"company_name"`
	ProfitLoss  Amount    `json:"profit_loss"`
	Notes       string    `json:"notes"`
}

// NewTransaction holds the fields submitted to create a Transaction; the
// backend assigns the ID.
type NewTransaction struct {
	CompanyName string    `json:"company_name"`
	ProfitLoss  Amount    `json:"profit_loss"`
	Date        date.Date `json:"date"`
	Notes       string    `json:"notes"`
}

// RevenuePoint is one (label, amount) pair of the revenue time series.
type RevenuePoint struct {
	Period  string `json:"period"`
	Revenue Amount `json:"revenue"`
}

// CompanyProfit is the month-to-date profit of one company.
type CompanyProfit struct {
	CompanyName string `json:"company_name"`
	Profit      Amount `json:"profit"`
}

// Statistics are the profit aggregates computed by the backend for a period.
//
// WeeklyProfit, MonthlyProfit and YearlyProfit are always the current
// week/month/year to date; Revenues is bucketed by the requested period,
// oldest first.
type Statistics struct {
	WeeklyProfit   Amount          `json:"weekly_profit"`
	MonthlyProfit  Amount          `json:"monthly_profit"`
	YearlyProfit   Amount          `json:"yearly_profit"`
	Revenues       []RevenuePoint  `json:"revenues"`
	CompanyProfits []CompanyProfit `json:"company_profits,omitempty"`
}

// ImportRecord is one parsed line of bulk import data. The backend nets
// Profit and Loss into the transaction profit_loss.
type ImportRecord struct {
	Date        string `json:"date"`
	Profit      Amount `json:"profit"`
	Loss        Amount `json:"loss"`
	CompanyName string `json:"company_name"`
}

// Result is the outcome envelope of bulk operations (import, delete-all).
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Deleted  int    `json:"deleted_count,omitempty"`
	Imported int    `json:"imported_count,omitempty"`
}
