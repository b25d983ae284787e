// Package tradebooktest provides an in-process ledger backend for tests.
//
// The Backend implements the REST API consumed by tradebook.Client with a
// fiber application and an in-memory store. It is served without a
// listener: Backend is an http.RoundTripper that hands every request to
// fiber's test entry point.
package tradebooktest

import (
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/date"
	"github.com/gofiber/fiber/v2"
)

// URL is the base url to give to tradebook.NewClient with Backend.Client.
const URL = "http://backend.test"

// Backend is a fake ledger backend. Its zero value is not usable, use New.
type Backend struct {
	app *fiber.App

	mu     sync.Mutex
	txs    []tradebook.Transaction
	nextID int
	hits   map[string]int
	fail   map[string]int
	today  date.Date
}

// New returns an empty Backend whose statistics are computed as of today.
func New() *Backend {
	b := &Backend{
		nextID: 1,
		hits:   make(map[string]int),
		fail:   make(map[string]int),
	}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(b.record)
	app.Get("/api/transactions", b.list)
	app.Post("/api/transactions", b.create)
	// delete-all must be registered before the :id route that would shadow it.
	app.Delete("/api/transactions/delete-all", b.deleteAll)
	app.Delete("/api/transactions/:id", b.delete)
	app.Get("/api/statistics", b.statistics)
	app.Post("/api/import-data", b.importData)
	b.app = app
	return b
}

// Client returns an http.Client served by b.
func (b *Backend) Client() *http.Client { return &http.Client{Transport: b} }

// NewClient returns a tradebook.Client connected to b.
func (b *Backend) NewClient() *tradebook.Client {
	c, err := tradebook.NewClient(URL, b.Client())
	if err != nil {
		panic(err) // URL is valid
	}
	return c
}

// RoundTrip implements http.RoundTripper.
func (b *Backend) RoundTrip(req *http.Request) (*http.Response, error) {
	return b.app.Test(req.Clone(req.Context()), -1)
}

// SetToday sets the reference day of statistics.
func (b *Backend) SetToday(d date.Date) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.today = d
}

// Seed stores transactions as if they were created through the API.
func (b *Backend) Seed(txs ...tradebook.NewTransaction) []tradebook.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	created := make([]tradebook.Transaction, 0, len(txs))
	for _, tx := range txs {
		created = append(created, b.insert(tx))
	}
	return created
}

// Transactions returns a copy of the stored transactions in insertion order.
func (b *Backend) Transactions() []tradebook.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.txs)
}

// Hits returns the number of requests received for a route, e.g.
// "GET /api/transactions".
func (b *Backend) Hits(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

// TotalHits returns the number of requests received on all routes.
func (b *Backend) TotalHits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, v := range b.hits {
		n += v
	}
	return n
}

// ResetHits clears the request counters.
func (b *Backend) ResetHits() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.hits)
}

// FailWith makes every request to route answer with status, 0 restores the route.
func (b *Backend) FailWith(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == 0 {
		delete(b.fail, route)
		return
	}
	b.fail[route] = status
}

func (b *Backend) record(c *fiber.Ctx) error {
	route := c.Method() + " " + c.Path()
	b.mu.Lock()
	b.hits[route]++
	status := b.fail[route]
	b.mu.Unlock()
	if status != 0 {
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("forced failure %d", status),
		})
	}
	return c.Next()
}

// insert must be called with b.mu held.
func (b *Backend) insert(tx tradebook.NewTransaction) tradebook.Transaction {
	created := tradebook.Transaction{
		ID:          b.nextID,
		Date:        tx.Date,
		CompanyName: tx.CompanyName,
		ProfitLoss:  tx.ProfitLoss,
		Notes:       tx.Notes,
	}
	if created.Date.IsZero() {
		created.Date = b.reference()
	}
	b.nextID++
	b.txs = append(b.txs, created)
	return created
}

// reference must be called with b.mu held.
func (b *Backend) reference() date.Date {
	if b.today.IsZero() {
		return date.Today()
	}
	return b.today
}

func (b *Backend) list(c *fiber.Ctx) error {
	b.mu.Lock()
	txs := slices.Clone(b.txs)
	b.mu.Unlock()
	// most recent first
	slices.SortStableFunc(txs, func(x, y tradebook.Transaction) int {
		switch {
		case x.Date.After(y.Date):
			return -1
		case x.Date.Before(y.Date):
			return 1
		default:
			return 0
		}
	})
	return c.JSON(txs)
}

func (b *Backend) create(c *fiber.Ctx) error {
	var tx tradebook.NewTransaction
	if err := c.BodyParser(&tx); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	b.mu.Lock()
	created := b.insert(tx)
	b.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (b *Backend) delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.IndexFunc(b.txs, func(tx tradebook.Transaction) bool { return tx.ID == id })
	if i < 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	b.txs = slices.Delete(b.txs, i, i+1)
	return c.SendStatus(fiber.StatusNoContent)
}

func (b *Backend) deleteAll(c *fiber.Ctx) error {
	b.mu.Lock()
	n := len(b.txs)
	b.txs = nil
	b.mu.Unlock()
	return c.JSON(fiber.Map{
		"success":       true,
		"deleted_count": n,
		"message":       fmt.Sprintf("成功刪除 %d 筆交易記錄", n),
	})
}

func (b *Backend) importData(c *fiber.Ctx) error {
	var body struct {
		Transactions []tradebook.ImportRecord `json:"transactions"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("匯入失敗: %v", err),
		})
	}
	b.mu.Lock()
	imported := 0
	for _, rec := range body.Transactions {
		day, err := date.Parse(rec.Date)
		if err != nil {
			continue
		}
		b.insert(tradebook.NewTransaction{
			CompanyName: rec.CompanyName,
			ProfitLoss:  rec.Profit.Sub(rec.Loss),
			Date:        day,
			Notes:       fmt.Sprintf("匯入資料 - 賺: %s, 虧: %s", rec.Profit, rec.Loss),
		})
		imported++
	}
	b.mu.Unlock()
	return c.JSON(fiber.Map{
		"success":        true,
		"imported_count": imported,
		"message":        fmt.Sprintf("成功匯入 %d 筆交易記錄", imported),
	})
}

func (b *Backend) statistics(c *fiber.Ctx) error {
	period, err := tradebook.ParsePeriod(c.Query("period", "monthly"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	b.mu.Lock()
	txs := slices.Clone(b.txs)
	today := b.reference()
	b.mu.Unlock()

	sum := func(r date.Range) tradebook.Amount {
		var total tradebook.Amount
		for _, tx := range txs {
			if r.Contains(tx.Date) {
				total = total.Add(tx.ProfitLoss)
			}
		}
		return total
	}
	toDate := func(p date.Period) date.Range { return date.Range{From: today.StartOf(p), To: today} }

	stats := tradebook.Statistics{
		WeeklyProfit:  sum(toDate(date.Weekly)),
		MonthlyProfit: sum(toDate(date.Monthly)),
		YearlyProfit:  sum(toDate(date.Yearly)),
	}

	month := toDate(date.Monthly)
	var companies []string
	for _, tx := range txs {
		if month.Contains(tx.Date) && !slices.Contains(companies, tx.CompanyName) {
			companies = append(companies, tx.CompanyName)
		}
	}
	for _, name := range companies {
		var profit tradebook.Amount
		for _, tx := range txs {
			if tx.CompanyName == name && month.Contains(tx.Date) {
				profit = profit.Add(tx.ProfitLoss)
			}
		}
		stats.CompanyProfits = append(stats.CompanyProfits, tradebook.CompanyProfit{CompanyName: name, Profit: profit})
	}

	stats.Revenues = []tradebook.RevenuePoint{}
	switch period {
	case date.Weekly:
		for i := 11; i >= 0; i-- {
			r := date.NewRange(today.Add(-7*i), date.Weekly)
			stats.Revenues = append(stats.Revenues, tradebook.RevenuePoint{Period: r.From.Format("01/02"), Revenue: sum(r)})
		}
	case date.Monthly:
		for i := 11; i >= 0; i-- {
			r := date.NewRange(today.AddMonths(-i), date.Monthly)
			stats.Revenues = append(stats.Revenues, tradebook.RevenuePoint{Period: r.From.Format("2006-01"), Revenue: sum(r)})
		}
	case date.Yearly:
		for i := 4; i >= 0; i-- {
			r := date.NewRange(date.New(today.Year()-i, 1, 1), date.Yearly)
			stats.Revenues = append(stats.Revenues, tradebook.RevenuePoint{Period: r.From.Format("2006"), Revenue: sum(r)})
		}
	}
	return c.JSON(stats)
}
