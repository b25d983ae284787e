package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tradebook/app"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the ledger interactively" }
func (*shellCmd) Usage() string {
	return `tb shell

  Starts an interactive session on the ledger screen. Each line is an
  action followed by its arguments:

    refresh                              reload transactions and statistics
    period <weekly|monthly|yearly>       select the chart period
    add <company> <amount> [date] [notes]
    delete <id>
    delete-all
    import [<line>]                      a tab separated line, or paste lines and end with an empty one
    open|close|backdrop <add|import>
    view                                 display the screen
    help
    quit

  Arguments are separated by spaces, or by tabs when the line holds one, so
  that a company name keeps its spaces:

    add<TAB>Acme Corp<TAB>500

  The screen is displayed again after every action.
`
}

func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(stdin)
	// confirmations and actions share the same input.
	stdin = in
	a, log, err := newApp()
	if err != nil {
		return status(err)
	}
	defer log.Sync()
	defer a.Notifier.Stop()

	d := a.Commands()
	if err := d.Dispatch(ctx, "refresh"); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	display(a)
	for {
		fmt.Fprint(stderr, "tb> ")
		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			if err != io.EOF {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Fprintln(stderr)
			return subcommands.ExitSuccess
		}
		name, rest := cutAction(line)
		if name == "" {
			continue
		}
		args := splitArgs(rest)
		switch name {
		case "quit", "exit":
			return subcommands.ExitSuccess
		case "help":
			fmt.Fprintf(stdout, "actions: %s, view, help, quit\n", strings.Join(d.Names(), ", "))
			continue
		case "view":
			display(a)
			continue
		case "import":
			if rest != "" {
				args = []string{rest}
			} else {
				args = readBlock(in)
			}
		}
		if err := d.Dispatch(ctx, name, args...); err != nil && status(err) == subcommands.ExitUsageError {
			continue
		}
		display(a)
	}
}

// cutAction returns the action name of a shell line and the arguments
// following it.
func cutAction(line string) (name, rest string) {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i:])
	}
	return line, ""
}

// splitArgs splits the arguments of a shell line on tabs when they hold
// one, on spaces otherwise.
func splitArgs(line string) []string {
	if !strings.Contains(line, "\t") {
		return strings.Fields(line)
	}
	var args []string
	for _, f := range strings.Split(line, "\t") {
		if f = strings.TrimSpace(f); f != "" {
			args = append(args, f)
		}
	}
	return args
}

// readBlock reads lines up to an empty line or the end of input.
func readBlock(in *bufio.Reader) []string {
	var lines []string
	for {
		line, err := in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			return lines
		}
		lines = append(lines, line)
		if err != nil {
			return lines
		}
	}
}

// display prints the screen: statistics, chart and transactions.
func display(a *app.App) {
	v := a.View(viewport())
	fmt.Fprintln(stdout, renderer.PanelText(v.Panel))
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, renderer.Plot(v.Chart))
	fmt.Fprintln(stdout)
	printMarkdown(renderer.Markdown(v))
	if len(v.Modals) > 0 {
		fmt.Fprintf(stdout, "open: %s\n", strings.Join(v.Modals, ", "))
	}
}
