package cmd

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/date"
	"github.com/etnz/tradebook/tradebooktest"
	"github.com/google/subcommands"
)

var today = date.New(2025, 9, 10)

// setup connects the commands to a fake backend, with in as stdin.
func setup(t *testing.T, in string) (b *tradebooktest.Backend, out, errOut *bytes.Buffer) {
	t.Helper()
	b = tradebooktest.New()
	b.SetToday(today)
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}

	oldIn, oldOut, oldErr, oldClient := stdin, stdout, stderr, httpClient
	oldServer, oldYes, oldWidth, oldLang, oldCurrency := *server, *yes, *width, *lang, *currency
	t.Cleanup(func() {
		stdin, stdout, stderr, httpClient = oldIn, oldOut, oldErr, oldClient
		*server, *yes, *width, *lang, *currency = oldServer, oldYes, oldWidth, oldLang, oldCurrency
	})
	for _, env := range []string{EnvServer, EnvCurrency, EnvLang} {
		t.Setenv(env, "")
	}

	stdin, stdout, stderr, httpClient = strings.NewReader(in), out, errOut, b.Client()
	*server, *yes, *width, *lang, *currency = tradebooktest.URL, false, 0, "", ""
	return b, out, errOut
}

// run parses args with the flags of c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("invalid %s arguments %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), fs)
}

func seed(b *tradebooktest.Backend) {
	b.Seed(
		tradebook.NewTransaction{CompanyName: "台積電", ProfitLoss: tradebook.A(1500), Date: date.New(2025, 9, 9), Notes: "當沖"},
		tradebook.NewTransaction{CompanyName: "鴻海", ProfitLoss: tradebook.A(-300), Date: date.New(2025, 9, 1)},
	)
}

func TestList(t *testing.T) {
	b, out, _ := setup(t, "")
	seed(b)

	if got := run(t, &listCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("list = %v, want success", got)
	}
	if got := (&listCmd{}).Synopsis(); strings.Contains(got, "recent") {
		t.Errorf("list synopsis %q claims an order the client does not apply", got)
	}
	for _, want := range []string{"## 交易記錄", "**台積電**", "+NT$1,500", "-NT$300", "`delete 1`", "2025/09/09"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output does not contain %q:\n%s", want, out)
		}
	}
}

func TestListBackendDown(t *testing.T) {
	b, _, errOut := setup(t, "")
	b.FailWith("GET /api/transactions", 503)

	if got := run(t, &listCmd{}); got != subcommands.ExitFailure {
		t.Errorf("list = %v, want failure", got)
	}
	if !strings.Contains(errOut.String(), "載入交易記錄失敗") {
		t.Errorf("stderr does not show the notification:\n%s", errOut)
	}
}

func TestAdd(t *testing.T) {
	b, _, errOut := setup(t, "")

	if got := run(t, &addCmd{}, "-d", "2025-09-01", "-n", "停損", "鴻海", "-300"); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success:\n%s", got, errOut)
	}
	txs := b.Transactions()
	if len(txs) != 1 || txs[0].CompanyName != "鴻海" || !txs[0].ProfitLoss.Equal(tradebook.A(-300)) || txs[0].Date != date.New(2025, 9, 1) || txs[0].Notes != "停損" {
		t.Errorf("created %+v", txs)
	}
	if !strings.Contains(errOut.String(), "交易記錄新增成功") {
		t.Errorf("stderr does not show the notification:\n%s", errOut)
	}
}

func TestAddUsage(t *testing.T) {
	tests := [][]string{
		{"鴻海"},
		{"鴻海", "abc"},
		{"-d", "tomorrow", "鴻海", "10"},
	}
	for _, args := range tests {
		b, _, _ := setup(t, "")
		if got := run(t, &addCmd{}, args...); got != subcommands.ExitUsageError {
			t.Errorf("add %q = %v, want usage error", args, got)
		}
		if got := b.TotalHits(); got != 0 {
			t.Errorf("add %q sent %d requests", args, got)
		}
	}
}

func TestDelete(t *testing.T) {
	b, _, errOut := setup(t, "n\n")
	seed(b)

	if got := run(t, &deleteCmd{}, "1"); got != subcommands.ExitSuccess {
		t.Errorf("declined delete = %v, want success", got)
	}
	if b.TotalHits() != 0 || len(b.Transactions()) != 2 {
		t.Errorf("declined delete sent %d requests", b.TotalHits())
	}
	if !strings.Contains(errOut.String(), "確定要刪除這筆交易記錄嗎？ [y/N]") || !strings.Contains(errOut.String(), "Cancelled") {
		t.Errorf("stderr:\n%s", errOut)
	}

	stdin = strings.NewReader("y\n")
	if got := run(t, &deleteCmd{}, "1"); got != subcommands.ExitSuccess {
		t.Errorf("delete = %v, want success", got)
	}
	if got := len(b.Transactions()); got != 1 {
		t.Errorf("%d transactions after delete, want 1", got)
	}
}

func TestDeleteAll(t *testing.T) {
	b, _, errOut := setup(t, "y\nn\n")
	seed(b)

	if got := run(t, &deleteAllCmd{}); got != subcommands.ExitSuccess {
		t.Errorf("declined delete-all = %v, want success", got)
	}
	if got := b.TotalHits(); got != 0 {
		t.Errorf("declined delete-all sent %d requests", got)
	}

	*yes = true
	if got := run(t, &deleteAllCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("delete-all = %v, want success:\n%s", got, errOut)
	}
	if len(b.Transactions()) != 0 || !strings.Contains(errOut.String(), "成功刪除 2 筆交易記錄") {
		t.Errorf("delete-all left %d transactions:\n%s", len(b.Transactions()), errOut)
	}
}

func TestImport(t *testing.T) {
	data := "日期\t賺\t虧\t公司\n2025/09/01\t1000\t0\t台積電\n2025/09/02\t0\t300\t鴻海\n"

	t.Run("stdin", func(t *testing.T) {
		b, out, _ := setup(t, data)
		if got := run(t, &importCmd{}); got != subcommands.ExitSuccess {
			t.Fatalf("import = %v, want success", got)
		}
		if !strings.Contains(out.String(), "成功匯入 2 筆交易記錄") || b.Hits("POST /api/import-data") != 1 {
			t.Errorf("import output:\n%s", out)
		}
	})

	t.Run("file", func(t *testing.T) {
		b, _, _ := setup(t, "")
		file := filepath.Join(t.TempDir(), "trades.tsv")
		if err := os.WriteFile(file, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if got := run(t, &importCmd{}, file); got != subcommands.ExitSuccess {
			t.Fatalf("import = %v, want success", got)
		}
		if got := len(b.Transactions()); got != 2 {
			t.Errorf("imported %d transactions, want 2", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		b, _, errOut := setup(t, "  \n")
		if got := run(t, &importCmd{}); got != subcommands.ExitFailure {
			t.Errorf("import = %v, want failure", got)
		}
		if b.TotalHits() != 0 || !strings.Contains(errOut.String(), "請輸入要匯入的資料") {
			t.Errorf("empty import sent %d requests:\n%s", b.TotalHits(), errOut)
		}
	})
}

func TestStats(t *testing.T) {
	b, out, _ := setup(t, "")
	seed(b)
	*width = 375

	if got := run(t, &statsCmd{}, "-p", "month"); got != subcommands.ExitSuccess {
		t.Fatalf("stats = %v, want success", got)
	}
	for _, want := range []string{"本月收益", "NT$1,200", "營收 (monthly)", "2月  3月  4月  5月  6月  7月  8月  9月", "| 鴻海 | -NT$300 |"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stats output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out.String(), "1月  2月") {
		t.Errorf("narrow monthly chart is not truncated:\n%s", out)
	}

	if got := run(t, &statsCmd{}, "-p", "daily"); got != subcommands.ExitUsageError {
		t.Errorf("stats -p daily = %v, want usage error", got)
	}
}

func TestShell(t *testing.T) {
	b, out, errOut := setup(t, "period year\nopen add\nhelp\nadd 聯發科 oops\nimport\n2025/09/03\t50\t0\t聯發科\n\ndelete 1\ny\nquit\n")
	seed(b)

	if got := run(t, &shellCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("shell = %v, want success:\n%s", got, errOut)
	}
	for _, want := range []string{"2025年", "open: addTransactionModal", "actions: add, backdrop, close"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("shell output does not contain %q", want)
		}
	}
	if !strings.Contains(errOut.String(), "usage") {
		t.Errorf("invalid add not reported:\n%s", errOut)
	}
	txs := b.Transactions()
	if len(txs) != 2 || txs[1].CompanyName != "聯發科" {
		t.Errorf("transactions after shell = %+v", txs)
	}
}

func TestShellTabArguments(t *testing.T) {
	b, _, errOut := setup(t, "add\tAcme Corp\t500\nimport 2025/09/04\t100\t0\tGlobex Inc\nquit\n")

	if got := run(t, &shellCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("shell = %v, want success:\n%s", got, errOut)
	}
	txs := b.Transactions()
	if len(txs) != 2 {
		t.Fatalf("transactions after shell = %+v, want 2", txs)
	}
	if txs[0].CompanyName != "Acme Corp" || !txs[0].ProfitLoss.Equal(tradebook.A(500)) {
		t.Errorf("added transaction = %+v", txs[0])
	}
	if txs[1].CompanyName != "Globex Inc" || !txs[1].ProfitLoss.Equal(tradebook.A(100)) {
		t.Errorf("imported transaction = %+v", txs[1])
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs []string
	}{
		{"refresh\n", "refresh", nil},
		{"  add 聯發科 100 2025-09-01 big win\n", "add", []string{"聯發科", "100", "2025-09-01", "big", "win"}},
		{"add\tAcme Corp\t100\t2025-09-01\tnotes here\t\n", "add", []string{"Acme Corp", "100", "2025-09-01", "notes here"}},
		{"add Acme Corp\t100\n", "add", []string{"Acme Corp", "100"}},
		{"\n", "", nil},
	}
	for _, tc := range tests {
		name, rest := cutAction(tc.line)
		args := splitArgs(rest)
		if name != tc.wantName || !slices.Equal(args, tc.wantArgs) {
			t.Errorf("%q = %q %q, want %q %q", tc.line, name, args, tc.wantName, tc.wantArgs)
		}
	}
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"是\n", true},
		{"\n", false},
		{"no\n", false},
		{"", false},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		p := &promptConfirmer{in: bufio.NewReader(strings.NewReader(tc.in)), out: &out}
		if got := p.Confirm(context.Background(), "sure?"); got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if !strings.HasPrefix(out.String(), "sure? [y/N] ") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestLocale(t *testing.T) {
	setup(t, "")

	loc, msg, err := locale()
	if err != nil || loc.Currency.Code() != "TWD" || msg.Created != "交易記錄新增成功" {
		t.Errorf("default locale = %s %q %v", loc.Currency.Code(), msg.Created, err)
	}

	*lang = "en"
	loc, msg, err = locale()
	if err != nil || loc.Currency.Code() != "USD" || msg.Created != "Transaction added" {
		t.Errorf("en locale = %s %q %v", loc.Currency.Code(), msg.Created, err)
	}

	t.Setenv(EnvCurrency, "jpy")
	if loc, _, _ := locale(); loc.Currency.Code() != "JPY" {
		t.Errorf("currency from environment = %s, want JPY", loc.Currency.Code())
	}

	*currency = "XXX1"
	if _, _, err := locale(); err == nil {
		t.Errorf("locale() accepted an unknown currency")
	}
	*lang = "fr"
	if _, _, err := locale(); err == nil {
		t.Errorf("locale() accepted an unknown language")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvServer, "")
	os.Unsetenv(EnvServer)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvServer+"=http://ledger.example:8080\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := setting("", EnvServer, DefaultServer); got != "http://ledger.example:8080" {
		t.Errorf("server = %q, want the .env value", got)
	}
	if got := setting("http://flag.example", EnvServer, DefaultServer); got != "http://flag.example" {
		t.Errorf("server = %q, want the flag value", got)
	}

	t.Chdir(t.TempDir())
	if err := LoadEnv(); err != nil {
		t.Errorf("LoadEnv() without .env failed: %v", err)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("no completion for %s", cmd.Name())
		}
	}
	for _, name := range []string{"server", "currency", "width", "v", "y"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("no completion for the -%s flag", name)
		}
	}
	got := c.Sub["stats"].Flags["p"].Predict("")
	if strings.Join(got, ",") != "weekly,monthly,yearly" {
		t.Errorf("stats -p predictions = %q", got)
	}
}

func TestTopic(t *testing.T) {
	_, out, _ := setup(t, "")
	if got := run(t, &topicCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("topic = %v, want success", got)
	}
	if !strings.Contains(out.String(), "* import:") {
		t.Errorf("topic without argument does not list topics:\n%s", out)
	}
	if got := run(t, &topicCmd{}, "nope"); got != subcommands.ExitFailure {
		t.Errorf("topic nope = %v, want failure", got)
	}
	if got := Completion().Sub["topic"].Args.Predict(""); !slices.Contains(got, "import") {
		t.Errorf("topic predictions = %q", got)
	}
}
