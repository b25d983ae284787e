package renderer

import (
	"fmt"
	"strings"
)

// markdownRenderer accumulates a markdown document.
type markdownRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r markdownRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// Markdown renders the transaction table, the statistics and the company
// profits of a View as a markdown document.
func Markdown(v View) string {
	r := markdownRenderer{&strings.Builder{}}
	r.renderPanel(v.Panel)
	r.renderCompanies(v.Companies, v.Locale)
	r.renderTable(v.Table)
	return r.String()
}

// TableMarkdown renders only the transaction table.
func TableMarkdown(t Table) string {
	r := markdownRenderer{&strings.Builder{}}
	r.renderTable(t)
	return r.String()
}

func (r markdownRenderer) renderTable(t Table) {
	r.Printf("## %s\n\n", t.Title)
	if t.Empty != nil {
		r.Printf("> 📈 **%s**\n>\n> %s\n\n", t.Empty.Title, t.Empty.Hint)
		return
	}
	r.Printf("| %s |\n", strings.Join(t.Columns[:], " | "))
	r.Printf("|:---|:---|---:|:---|:---|\n")
	for _, row := range t.Rows {
		r.Printf("| %s | **%s** | %s | %s | `%s` |\n", row.Date, cell(row.Company), row.Amount, cell(row.Notes), row.Delete)
	}
	r.Printf("\n")
}

func (r markdownRenderer) renderPanel(p Panel) {
	labels := make([]string, len(p.Stats))
	texts := make([]string, len(p.Stats))
	for i, s := range p.Stats {
		labels[i], texts[i] = s.Label, s.Text
	}
	r.Printf("| %s |\n", strings.Join(labels, " | "))
	r.Printf("|%s\n", strings.Repeat("---:|", len(labels)))
	r.Printf("| %s |\n\n", strings.Join(texts, " | "))
}

func (r markdownRenderer) renderCompanies(rows []CompanyRow, loc Locale) {
	if len(rows) == 0 {
		return
	}
	r.Printf("| %s | %s |\n", loc.Columns[1], loc.StatLabels[1])
	r.Printf("|:---|---:|\n")
	for _, row := range rows {
		r.Printf("| %s | %s |\n", cell(row.Company), row.Amount)
	}
	r.Printf("\n")
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// StatisticsMarkdown renders only the statistics and the company profits.
func StatisticsMarkdown(v View) string {
	r := markdownRenderer{&strings.Builder{}}
	r.renderPanel(v.Panel)
	r.renderCompanies(v.Companies, v.Locale)
	return r.String()
}
