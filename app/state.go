package app

import (
	"sync"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/date"
)

// Form holds the defaults of the add transaction form.
type Form struct {
	Date date.Date
}

// Snapshot is a consistent copy of the State.
type Snapshot struct {
	Transactions []tradebook.Transaction
	Statistics   tradebook.Statistics
	Period       tradebook.Period
	Form         Form
}

// State is the client state of the ledger screen. Values are swapped under
// the lock, never mutated in place.
type State struct {
	mu           sync.Mutex
	transactions []tradebook.Transaction
	statistics   tradebook.Statistics
	period       tradebook.Period
	form         Form
}

// Snapshot returns a copy of the state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Transactions: s.transactions,
		Statistics:   s.statistics,
		Period:       s.period,
		Form:         s.form,
	}
}

// Period returns the selected period.
func (s *State) Period() tradebook.Period {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

func (s *State) setTransactions(txs []tradebook.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = txs
}

func (s *State) setStatistics(p tradebook.Period, stats tradebook.Statistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period, s.statistics = p, stats
}

func (s *State) setPeriod(p tradebook.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = p
}

func (s *State) setForm(f Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}
