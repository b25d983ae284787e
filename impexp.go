package tradebook

import (
	"errors"
	"strings"
)

// this file contains the bulk import format: text pasted from a spreadsheet.

// HeaderKeywords are the column titles (date, profit, loss) that identify a
// header on the first line of import data.
var HeaderKeywords = []string{"日期", "賺", "虧"}

var (
	// ErrNoImportData is returned when the import text is blank.
	ErrNoImportData = errors.New("no import data")
	// ErrNoImportRecords is returned when no line of the import text holds a record.
	ErrNoImportRecords = errors.New("no valid transaction in import data")
)

// ImportReport is the result of parsing import data.
type ImportReport struct {
	Records []ImportRecord
	Skipped int // lines with less than 4 fields
}

// ParseImport parses tab separated import data.
//
// Each line holds the fields date, profit, loss and company name, in that
// order, separated by tabs; extra fields are ignored. Blank lines are
// ignored, and so is the first line if it is a header (see HeaderKeywords).
// Lines with fewer than 4 fields are skipped without error, they are only
// counted in ImportReport.Skipped. An unparsable profit or loss is 0.
//
// ParseImport returns ErrNoImportData if text is blank and ErrNoImportRecords
// if no line holds a record.
func ParseImport(text string) (ImportReport, error) {
	var report ImportReport
	text = strings.TrimSpace(text)
	if text == "" {
		return report, ErrNoImportData
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	for i, line := range lines {
		if i == 0 && isImportHeader(line) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			report.Skipped++
			continue
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		report.Records = append(report.Records, ImportRecord{
			Date:        fields[0],
			Profit:      parseAmountOrZero(fields[1]),
			Loss:        parseAmountOrZero(fields[2]),
			CompanyName: fields[3],
		})
	}
	if len(report.Records) == 0 {
		return report, ErrNoImportRecords
	}
	return report, nil
}

func isImportHeader(line string) bool {
	for _, keyword := range HeaderKeywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}
