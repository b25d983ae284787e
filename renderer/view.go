package renderer

import (
	"strconv"

	"github.com/etnz/tradebook"
)

// CSS-like classes of signed amounts.
const (
	ClassIncome  = "amount-income"  // non-negative amounts
	ClassExpense = "amount-expense" // negative amounts
)

// Colors of signed statistics.
const (
	ColorPositive = "#27ae60"
	ColorNegative = "#e74c3c"
)

// NarrowWidth is the widest viewport, in logical pixels, considered narrow.
const NarrowWidth = 768

// Viewport describes the rendering surface.
type Viewport struct {
	Width int // in logical pixels, 0 if unknown
}

// Narrow reports whether the viewport is a narrow one (mobile). An unknown
// width is not narrow.
func (v Viewport) Narrow() bool { return v.Width > 0 && v.Width <= NarrowWidth }

// Input is everything a View is built from.
type Input struct {
	Transactions []tradebook.Transaction
	Statistics   tradebook.Statistics
	Period       tradebook.Period
	Viewport     Viewport
	Locale       Locale
	Notices      []Notice
	Modals       []string // visible modals
}

// View is the full set of render instructions of the ledger screen.
type View struct {
	Table     Table
	Panel     Panel
	Companies []CompanyRow
	Chart     Chart
	Notices   []Notice
	Modals    []string
	Locale    Locale
}

// Table is the transaction table. Empty is set, and Rows nil, when there is
// no transaction.
type Table struct {
	Title   string
	Columns [5]string
	Rows    []Row
	Empty   *Placeholder
}

// Placeholder is the empty state of a table or chart.
type Placeholder struct {
	Icon  string
	Title string
	Hint  string
}

// Row is one transaction in the table.
type Row struct {
	ID      int
	Date    string
	Company string
	Amount  string // "+" prefixed when non-negative
	Class   string // ClassIncome or ClassExpense
	Notes   string // "-" when empty
	Delete  Action
}

// Action is a command bound to a UI element, dispatched by name.
type Action struct {
	Name string
	Args []string
}

func (a Action) String() string {
	s := a.Name
	for _, arg := range a.Args {
		s += " " + arg
	}
	return s
}

// Panel holds the week, month and year to date profits.
type Panel struct {
	Stats [3]Stat
}

// Stat is a labelled amount colored by its sign.
type Stat struct {
	Label string
	Text  string
	Color string // ColorPositive or ColorNegative
}

// CompanyRow is the month-to-date profit of a company.
type CompanyRow struct {
	Company string
	Amount  string
	Class   string
}

// Build computes the View of the ledger. It is a pure function of its input.
func Build(in Input) View {
	loc := in.Locale
	v := View{
		Table:   transactionTable(in.Transactions, loc),
		Panel:   statisticsPanel(in.Statistics, loc),
		Chart:   NewChart(in.Statistics.Revenues, in.Period, in.Viewport, loc),
		Notices: in.Notices,
		Modals:  in.Modals,
		Locale:  loc,
	}
	for _, cp := range in.Statistics.CompanyProfits {
		v.Companies = append(v.Companies, CompanyRow{
			Company: cp.CompanyName,
			Amount:  loc.Currency.Signed(cp.Profit),
			Class:   class(cp.Profit),
		})
	}
	return v
}

func transactionTable(txs []tradebook.Transaction, loc Locale) Table {
	t := Table{Title: loc.TableTitle, Columns: loc.Columns}
	if len(txs) == 0 {
		t.Empty = &Placeholder{Icon: "chart-line", Title: loc.EmptyTitle, Hint: loc.EmptyHint}
		return t
	}
	t.Rows = make([]Row, 0, len(txs))
	for _, tx := range txs {
		notes := tx.Notes
		if notes == "" {
			notes = "-"
		}
		t.Rows = append(t.Rows, Row{
			ID:      tx.ID,
			Date:    tx.Date.Format(loc.DateLayout),
			Company: tx.CompanyName,
			Amount:  loc.Currency.Signed(tx.ProfitLoss),
			Class:   class(tx.ProfitLoss),
			Notes:   notes,
			Delete:  Action{Name: "delete", Args: []string{strconv.Itoa(tx.ID)}},
		})
	}
	return t
}

func statisticsPanel(s tradebook.Statistics, loc Locale) Panel {
	var p Panel
	for i, a := range []tradebook.Amount{s.WeeklyProfit, s.MonthlyProfit, s.YearlyProfit} {
		p.Stats[i] = Stat{Label: loc.StatLabels[i], Text: loc.Currency.Format(a), Color: color(a)}
	}
	return p
}

func class(a tradebook.Amount) string {
	if a.IsNegative() {
		return ClassExpense
	}
	return ClassIncome
}

func color(a tradebook.Amount) string {
	if a.IsNegative() {
		return ColorNegative
	}
	return ColorPositive
}
