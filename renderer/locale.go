package renderer

import "github.com/etnz/tradebook"

// Locale groups the display-language specific texts and formats.
type Locale struct {
	Currency   tradebook.Currency
	DateLayout string // time layout of transaction dates

	MonthSuffix string // appended to the month number of monthly chart labels
	YearSuffix  string // appended to yearly chart labels
	SeriesLabel string // name of the revenue series

	TableTitle string
	Columns    [5]string // date, company, profit/loss, notes, action
	StatLabels [3]string // weekly, monthly, yearly profit

	EmptyTitle string // no transaction placeholder
	EmptyHint  string
	EmptyChart string // no revenue placeholder
}

// TW is the Traditional Chinese locale with amounts in New Taiwan dollars.
var TW = Locale{
	Currency:    tradebook.MustCurrency("TWD"),
	DateLayout:  "2006/01/02",
	MonthSuffix: "月",
	YearSuffix:  "年",
	SeriesLabel: "營收",
	TableTitle:  "交易記錄",
	Columns:     [5]string{"日期", "公司", "損益", "備註", "操作"},
	StatLabels:  [3]string{"本週收益", "本月收益", "本年收益"},
	EmptyTitle:  "尚無交易記錄",
	EmptyHint:   "點擊「新增交易」開始記錄股票交易",
	EmptyChart:  "尚無營收記錄",
}

// EN is the English locale, amounts in US dollars.
var EN = Locale{
	Currency:    tradebook.MustCurrency("USD"),
	DateLayout:  "2006-01-02",
	MonthSuffix: "",
	YearSuffix:  "",
	SeriesLabel: "Revenue",
	TableTitle:  "Transactions",
	Columns:     [5]string{"Date", "Company", "Profit/Loss", "Notes", "Action"},
	StatLabels:  [3]string{"This week", "This month", "This year"},
	EmptyTitle:  "No transactions yet",
	EmptyHint:   "Use add to record a stock trade",
	EmptyChart:  "No revenue yet",
}

// LookupLocale returns the locale by name ("tw" or "en").
func LookupLocale(name string) (Locale, bool) {
	switch name {
	case "tw", "zh-TW", "zh-tw":
		return TW, true
	case "en":
		return EN, true
	default:
		return Locale{}, false
	}
}

// WithCurrency returns a copy of l displaying amounts in cur.
func (l Locale) WithCurrency(cur tradebook.Currency) Locale {
	l.Currency = cur
	return l
}
