// Package app implements the flows of the ledger screen on top of a
// tradebook backend: loading, adding, deleting and importing transactions,
// with confirmations, modals and notifications.
//
// App is independent of any user interface. A host (the tb command line,
// a terminal shell) binds its events to the actions of the Dispatcher
// returned by App.Commands and renders App.View.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/date"
	"github.com/etnz/tradebook/renderer"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatisticsTTL is how long statistics of a period are reused without
// asking the backend again. Every mutation invalidates them.
const StatisticsTTL = time.Minute

var (
	// ErrDeclined is returned when the user declines a confirmation.
	ErrDeclined = errors.New("declined")
	// ErrRejected is returned when the backend answers an operation with
	// an unsuccessful result.
	ErrRejected = errors.New("rejected by the backend")
)

// Backend is the ledger REST API, implemented by *tradebook.Client.
type Backend interface {
	ListTransactions(ctx context.Context) ([]tradebook.Transaction, error)
	CreateTransaction(ctx context.Context, tx tradebook.NewTransaction) (tradebook.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) error
	DeleteAllTransactions(ctx context.Context) (tradebook.Result, error)
	Statistics(ctx context.Context, period tradebook.Period) (tradebook.Statistics, error)
	Import(ctx context.Context, records []tradebook.ImportRecord) (tradebook.Result, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc is a func Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// AlwaysConfirm accepts every confirmation.
var AlwaysConfirm = ConfirmFunc(func(context.Context, string) bool { return true })

// App is the ledger screen controller.
type App struct {
	Modals   *Modals
	Notifier *Notifier

	backend Backend
	confirm Confirmer
	log     *zap.Logger
	msg     Messages
	locale  renderer.Locale
	today   func() date.Date

	stats *cache.Cache // tradebook.Statistics by period name
	state State
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger of failures and diagnostics.
func WithLogger(log *zap.Logger) Option { return func(a *App) { a.log = log } }

// WithNotifier sets the notifier, typically one with a sink.
func WithNotifier(n *Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithLocale sets the locale of the View and the language of messages.
func WithLocale(loc renderer.Locale, msg Messages) Option {
	return func(a *App) { a.locale, a.msg = loc, msg }
}

// WithClock sets the function returning the current day.
func WithClock(today func() date.Date) Option { return func(a *App) { a.today = today } }

// New returns an App on backend. Confirmations are asked to c.
func New(backend Backend, c Confirmer, opts ...Option) *App {
	a := &App{
		Modals:  &Modals{},
		backend: backend,
		confirm: c,
		log:     zap.NewNop(),
		msg:     TW,
		locale:  renderer.TW,
		today:   date.Today,
		stats:   cache.New(StatisticsTTL, 2*StatisticsTTL),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Notifier == nil {
		a.Notifier = NewNotifier(nil)
	}
	a.state.period = tradebook.Weekly
	a.state.form = Form{Date: a.today()}
	return a
}

// State returns the state of the screen.
func (a *App) State() *State { return &a.state }

// fail logs err, shows msg as an error notification and returns err.
func (a *App) fail(msg string, err error) error {
	a.log.Error(msg, zap.Error(err))
	a.Notifier.Push(renderer.Error, msg)
	return err
}

// reject notifies an unsuccessful result with the backend message, or
// fallback if there is none.
func (a *App) reject(res tradebook.Result, fallback string) error {
	msg := res.Message
	if msg == "" {
		msg = fallback
	}
	return a.fail(msg, fmt.Errorf("%w: %s", ErrRejected, msg))
}

// LoadTransactions fetches the transaction list and replaces the state's.
// On failure the previous list is kept.
func (a *App) LoadTransactions(ctx context.Context) error {
	txs, err := a.backend.ListTransactions(ctx)
	if err != nil {
		return a.fail(a.msg.LoadTransactionsFailed, err)
	}
	a.state.setTransactions(txs)
	return nil
}

// LoadStatistics fetches the statistics of period p, reusing the ones
// fetched during the last StatisticsTTL, and replaces the state's. On
// failure the previous statistics are kept. Refresh drops the reused
// statistics, only switching periods goes through the cache.
func (a *App) LoadStatistics(ctx context.Context, p tradebook.Period) error {
	if v, found := a.stats.Get(p.String()); found {
		a.state.setStatistics(p, v.(tradebook.Statistics))
		return nil
	}
	stats, err := a.backend.Statistics(ctx, p)
	if err != nil {
		return a.fail(a.msg.LoadStatisticsFailed, err)
	}
	a.stats.Set(p.String(), stats, cache.DefaultExpiration)
	a.state.setStatistics(p, stats)
	return nil
}

// Refresh loads the transactions and the statistics of the selected
// period concurrently, bypassing cached statistics. Both loads run to
// completion, the first error is returned.
func (a *App) Refresh(ctx context.Context) error {
	a.stats.Flush()
	var g errgroup.Group
	g.Go(func() error { return a.LoadTransactions(ctx) })
	g.Go(func() error { return a.LoadStatistics(ctx, a.state.Period()) })
	return g.Wait()
}

// ChangePeriod selects the period p and loads its statistics.
func (a *App) ChangePeriod(ctx context.Context, p tradebook.Period) error {
	a.state.setPeriod(p)
	return a.LoadStatistics(ctx, p)
}

// mutated reloads the screen after a successful mutation. Load failures
// are already notified.
func (a *App) mutated(ctx context.Context) {
	if err := a.Refresh(ctx); err != nil {
		a.log.Warn("refresh after mutation", zap.Error(err))
	}
}

// Create records tx. A zero date is today. On success the add modal is
// closed and the form reset.
func (a *App) Create(ctx context.Context, tx tradebook.NewTransaction) (tradebook.Transaction, error) {
	if tx.Date.IsZero() {
		tx.Date = a.today()
	}
	created, err := a.backend.CreateTransaction(ctx, tx)
	if err != nil {
		return created, a.fail(a.msg.CreateFailed, err)
	}
	a.log.Info("transaction created", zap.Int("id", created.ID), zap.String("company", tx.CompanyName))
	a.Notifier.Push(renderer.Success, a.msg.Created)
	a.Modals.Close(AddTransactionModal)
	a.state.setForm(Form{Date: a.today()})
	a.mutated(ctx)
	return created, nil
}

// Delete deletes the transaction id once the user confirmed it.
func (a *App) Delete(ctx context.Context, id int) error {
	if !a.confirm.Confirm(ctx, a.msg.ConfirmDelete) {
		return ErrDeclined
	}
	if err := a.backend.DeleteTransaction(ctx, id); err != nil {
		return a.fail(a.msg.DeleteFailed, err)
	}
	a.log.Info("transaction deleted", zap.Int("id", id))
	a.Notifier.Push(renderer.Success, a.msg.Deleted)
	a.mutated(ctx)
	return nil
}

// DeleteAll deletes every transaction once the user confirmed it twice.
// The backend message is shown as is.
func (a *App) DeleteAll(ctx context.Context) (tradebook.Result, error) {
	if !a.confirm.Confirm(ctx, a.msg.ConfirmDeleteAll) {
		return tradebook.Result{}, ErrDeclined
	}
	if !a.confirm.Confirm(ctx, a.msg.ConfirmDeleteAllAgain) {
		return tradebook.Result{}, ErrDeclined
	}
	res, err := a.backend.DeleteAllTransactions(ctx)
	if err != nil {
		return res, a.fail(a.msg.DeleteAllFailed, err)
	}
	if !res.Success {
		return res, a.reject(res, a.msg.DeleteAllFailed)
	}
	a.log.Info("transactions deleted", zap.Int("count", res.Deleted))
	a.Notifier.Push(renderer.Success, res.Message)
	a.mutated(ctx)
	return res, nil
}

// Import parses text (see tradebook.ParseImport) and sends all its records
// in a single request. Nothing is sent when text holds no record. The
// backend message is shown as is.
func (a *App) Import(ctx context.Context, text string) (tradebook.Result, error) {
	report, err := tradebook.ParseImport(text)
	switch {
	case errors.Is(err, tradebook.ErrNoImportData):
		return tradebook.Result{}, a.fail(a.msg.NoImportData, err)
	case errors.Is(err, tradebook.ErrNoImportRecords):
		return tradebook.Result{}, a.fail(a.msg.NoImportRecords, err)
	case err != nil:
		return tradebook.Result{}, a.fail(a.msg.ImportFailed, err)
	}
	if report.Skipped > 0 {
		a.log.Info("import lines skipped", zap.Int("skipped", report.Skipped), zap.Int("records", len(report.Records)))
	}

	res, err := a.backend.Import(ctx, report.Records)
	if err != nil {
		return res, a.fail(a.msg.ImportFailed, err)
	}
	if !res.Success {
		return res, a.reject(res, a.msg.ImportFailed)
	}
	a.log.Info("transactions imported", zap.Int("count", res.Imported))
	a.Notifier.Push(renderer.Success, res.Message)
	a.Modals.Close(ImportModal)
	a.mutated(ctx)
	return res, nil
}

// View returns the render instructions of the screen for a viewport.
func (a *App) View(vp renderer.Viewport) renderer.View {
	s := a.state.Snapshot()
	return renderer.Build(renderer.Input{
		Transactions: s.Transactions,
		Statistics:   s.Statistics,
		Period:       s.Period,
		Viewport:     vp,
		Locale:       a.locale,
		Notices:      a.Notifier.Active(),
		Modals:       a.Modals.List(),
	})
}
