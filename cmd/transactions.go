package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/tradebook/date"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

// --- List Command ---

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the transactions in backend order" }
func (*listCmd) Usage() string {
	return `tb list

  Lists all the transactions of the ledger with their profit or loss.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	if err := a.LoadTransactions(ctx); err != nil {
		return status(err)
	}
	printMarkdown(renderer.TableMarkdown(a.View(viewport()).Table))
	return subcommands.ExitSuccess
}

// --- Add Command ---

type addCmd struct {
	date  string
	notes string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record the profit or loss of a trade" }
func (*addCmd) Usage() string {
	return `tb add [-d <date>] [-n <notes>] <company> <amount>

  Records a transaction. A loss is a negative amount.

Usage Examples:
$ tb add -d 2025-09-01 台積電 1500
$ tb add -n "stop loss" 鴻海 -300
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.notes, "n", "", "Optional notes")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	return status(a.Commands().Dispatch(ctx, "add", f.Arg(0), f.Arg(1), c.date, c.notes))
}

// --- Delete Command ---

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `tb delete <id>

  Deletes the transaction id, as listed by 'tb list', after confirmation.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	return status(a.Commands().Dispatch(ctx, "delete", f.Arg(0)))
}

// --- Delete All Command ---

type deleteAllCmd struct{}

func (*deleteAllCmd) Name() string     { return "delete-all" }
func (*deleteAllCmd) Synopsis() string { return "delete every transaction" }
func (*deleteAllCmd) Usage() string {
	return `tb delete-all

  Deletes every transaction of the ledger. It cannot be undone, so it is
  confirmed twice.
`
}

func (*deleteAllCmd) SetFlags(*flag.FlagSet) {}

func (*deleteAllCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	return status(a.Commands().Dispatch(ctx, "delete-all"))
}

// --- Import Command ---

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from spreadsheet data" }
func (*importCmd) Usage() string {
	return `tb import [<file>]

  Imports tab separated lines of date, profit, loss and company name, as
  copied from a spreadsheet. A first line holding column titles is ignored,
  and so are lines with fewer than 4 fields. The data is read from stdin
  when no file is given.

Usage Examples:
$ tb import trades.tsv
$ pbpaste | tb import
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	var data []byte
	var err error
	if f.NArg() == 1 {
		data, err = os.ReadFile(f.Arg(0))
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error reading import data: %v\n", err)
		return subcommands.ExitFailure
	}

	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	res, err := a.Import(ctx, string(data))
	if err != nil {
		return status(err)
	}
	fmt.Fprintln(stdout, res.Message)
	return subcommands.ExitSuccess
}
