package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown renders md on stdout, styled when stdout is a terminal and
// as is otherwise.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, md)
		return
	}
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
		opts = append(opts, glamour.WithWordWrap(cols))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
