package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/date"
)

// ErrUsage is returned when an action is dispatched with invalid arguments.
var ErrUsage = errors.New("usage")

// Action is a named operation of the screen, bound to user events.
type Action struct {
	Usage string
	Run   func(ctx context.Context, args ...string) error
}

// Dispatcher maps action names to actions.
type Dispatcher map[string]Action

// Dispatch runs the action name with args.
func (d Dispatcher) Dispatch(ctx context.Context, name string, args ...string) error {
	action, ok := d[name]
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	if err := action.Run(ctx, args...); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: %s %s", err, name, action.Usage)
		}
		return err
	}
	return nil
}

// Names returns the action names, sorted.
func (d Dispatcher) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Commands returns the actions of the screen:
//
//	refresh                              reload transactions and statistics
//	period <weekly|monthly|yearly>       select the chart period
//	add <company> <amount> [date] [notes]
//	delete <id>
//	delete-all
//	import <line>...                     each argument is a line of import data
//	open|close|backdrop <modal>
func (a *App) Commands() Dispatcher {
	return Dispatcher{
		"refresh": {Run: func(ctx context.Context, args ...string) error {
			return a.Refresh(ctx)
		}},
		"period": {Usage: "<weekly|monthly|yearly>", Run: func(ctx context.Context, args ...string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			p, err := tradebook.ParsePeriod(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return a.ChangePeriod(ctx, p)
		}},
		"add": {Usage: "<company> <amount> [date] [notes]", Run: func(ctx context.Context, args ...string) error {
			tx, err := parseNewTransaction(args)
			if err != nil {
				return err
			}
			_, err = a.Create(ctx, tx)
			return err
		}},
		"delete": {Usage: "<id>", Run: func(ctx context.Context, args ...string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: invalid id %q", ErrUsage, args[0])
			}
			return a.Delete(ctx, id)
		}},
		"delete-all": {Run: func(ctx context.Context, args ...string) error {
			_, err := a.DeleteAll(ctx)
			return err
		}},
		"import": {Usage: "<line>...", Run: func(ctx context.Context, args ...string) error {
			_, err := a.Import(ctx, strings.Join(args, "\n"))
			return err
		}},
		"open":     {Usage: "<add|import>", Run: a.modalAction(a.Modals.Open)},
		"close":    {Usage: "<add|import>", Run: a.modalAction(a.Modals.Close)},
		"backdrop": {Usage: "<add|import>", Run: a.modalAction(func(id ModalID) { a.Modals.Backdrop(id) })},
	}
}

func (a *App) modalAction(f func(ModalID)) func(context.Context, ...string) error {
	return func(_ context.Context, args ...string) error {
		if len(args) != 1 {
			return ErrUsage
		}
		id, err := ParseModal(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		f(id)
		return nil
	}
}

// parseNewTransaction parses the arguments of the add action. An
// unparsable amount is an error, a missing date is today.
func parseNewTransaction(args []string) (tradebook.NewTransaction, error) {
	var tx tradebook.NewTransaction
	if len(args) < 2 {
		return tx, ErrUsage
	}
	tx.CompanyName = strings.TrimSpace(args[0])
	if tx.CompanyName == "" {
		return tx, fmt.Errorf("%w: empty company name", ErrUsage)
	}
	amount, err := tradebook.ParseAmount(args[1])
	if err != nil {
		return tx, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	tx.ProfitLoss = amount
	if len(args) > 2 && args[2] != "" {
		if tx.Date, err = date.Parse(args[2]); err != nil {
			return tx, fmt.Errorf("%w: %w", ErrUsage, err)
		}
	}
	if len(args) > 3 {
		tx.Notes = strings.Join(args[3:], " ")
	}
	return tx, nil
}
