// Package cmd implements the CLI application to manage a stock trading ledger.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/app"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	EnvServer   = "TRADEBOOK_SERVER"
	EnvCurrency = "TRADEBOOK_CURRENCY"
	EnvLang     = "TRADEBOOK_LANG"

	DefaultServer = "http://localhost:5001"
)

// Commands are the subcommands of the application.
var Commands = []subcommands.Command{
	&listCmd{},
	&addCmd{},
	&deleteCmd{},
	&deleteAllCmd{},
	&importCmd{},
	&statsCmd{},
	&shellCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, group(cmd.Name()))
	}
}

func group(name string) string {
	switch name {
	case "stats":
		return "reports"
	case "shell":
		return "interactive"
	case "topic":
		return "help"
	default:
		return "transactions"
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var server = flag.String("server", "", "Backend base url (defaults to $"+EnvServer+" or "+DefaultServer+")")
var currency = flag.String("currency", "", "Display currency, ISO 4217 code (defaults to $"+EnvCurrency+" or "+tradebook.DefaultCurrency+")")
var lang = flag.String("lang", "", "Display language, tw or en (defaults to $"+EnvLang+" or tw)")
var width = flag.Int("width", 0, "Viewport width in logical pixels (defaults to the terminal width)")
var Verbose = flag.Bool("v", false, "Log requests and diagnostics")
var yes = flag.Bool("y", false, "Answer yes to every confirmation")

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	httpClient *http.Client // nil for the default client
)

// LoadEnv loads the .env file of the working directory, if any. Variables
// already set in the environment are kept.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setting returns the flag value, or else the environment variable, or else def.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// newLogger returns a development logger, at debug level in verbose mode.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if *Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = !*Verbose
	return cfg.Build()
}

// locale returns the display locale and messages from the flags.
func locale() (renderer.Locale, app.Messages, error) {
	name := setting(*lang, EnvLang, "tw")
	loc, ok := renderer.LookupLocale(name)
	if !ok {
		return loc, app.Messages{}, fmt.Errorf("unknown language %q", name)
	}
	msg := app.TW
	if name == "en" {
		msg = app.EN
	}
	code := setting(*currency, EnvCurrency, loc.Currency.Code())
	cur, err := tradebook.NewCurrency(code)
	if err != nil {
		return loc, msg, err
	}
	return loc.WithCurrency(cur), msg, nil
}

// newApp returns the application connected to the configured backend.
// Notifications are printed on stderr as they are pushed.
func newApp() (*app.App, *zap.Logger, error) {
	log, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}
	loc, msg, err := locale()
	if err != nil {
		return nil, nil, err
	}
	client, err := tradebook.NewClient(setting(*server, EnvServer, DefaultServer), httpClient)
	if err != nil {
		return nil, nil, err
	}
	client.WithLogger(log.Named("http"))

	var c app.Confirmer = app.AlwaysConfirm
	if !*yes {
		c = &promptConfirmer{in: bufio.NewReader(stdin), out: stderr}
	}
	notifier := app.NewNotifier(func(n renderer.Notice) {
		fmt.Fprintln(stderr, renderer.NoticeText(n))
	})
	a := app.New(client, c,
		app.WithLogger(log),
		app.WithNotifier(notifier),
		app.WithLocale(loc, msg),
	)
	return a, log, nil
}

// promptConfirmer asks confirmations on the terminal.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "是":
		return true
	default:
		return false
	}
}

// viewport returns the rendering surface: the -width flag, or the terminal
// columns at 8 logical pixels each, or an unknown width.
func viewport() renderer.Viewport {
	if *width > 0 {
		return renderer.Viewport{Width: *width}
	}
	if f, ok := stdout.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			return renderer.Viewport{Width: cols * 8}
		}
	}
	return renderer.Viewport{}
}

// status reports err and returns the matching exit status.
func status(err error) subcommands.ExitStatus {
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.Is(err, app.ErrDeclined):
		fmt.Fprintln(stderr, "Cancelled")
		return subcommands.ExitSuccess
	case errors.Is(err, app.ErrUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}
