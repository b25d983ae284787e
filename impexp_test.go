package tradebook

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseImport(t *testing.T) {
	testCases := []struct {
		name        string
		text        string
		want        []ImportRecord
		wantSkipped int
	}{
		{
			name: "single line",
			text: "01/02\t100\t0\tAcme",
			want: []ImportRecord{{Date: "01/02", Profit: A(100), Loss: A(0), CompanyName: "Acme"}},
		},
		{
			name: "non numeric profit defaults to zero",
			text: "01/02\tN/A\t0\tAcme",
			want: []ImportRecord{{Date: "01/02", Profit: A(0), Loss: A(0), CompanyName: "Acme"}},
		},
		{
			name: "profit and loss read their leading number",
			text: "01/02\t100元\t1,200\tAcme\n01/03\t$50\t-.5e1x\tGlobex",
			want: []ImportRecord{
				{Date: "01/02", Profit: A(100), Loss: A(1), CompanyName: "Acme"},
				{Date: "01/03", Profit: A(0), Loss: A(-5), CompanyName: "Globex"},
			},
		},
		{
			name: "header line is dropped",
			text: "日期\t賺\t虧\t公司\n2024/1/2\t100\t0\tAcme\n2024/1/3\t0\t25.5\tGlobex",
			want: []ImportRecord{
				{Date: "2024/1/2", Profit: A(100), Loss: A(0), CompanyName: "Acme"},
				{Date: "2024/1/3", Profit: A(0), Loss: A(25.5), CompanyName: "Globex"},
			},
		},
		{
			name: "header detected by a single keyword",
			text: "交易日期\tx\ty\tz\n2024/1/2\t1\t2\tAcme",
			want: []ImportRecord{{Date: "2024/1/2", Profit: A(1), Loss: A(2), CompanyName: "Acme"}},
		},
		{
			name: "keywords are only a header on the first line",
			text: "2024/1/2\t1\t2\tAcme\n2024/1/3\t3\t4\t賺錢公司",
			want: []ImportRecord{
				{Date: "2024/1/2", Profit: A(1), Loss: A(2), CompanyName: "Acme"},
				{Date: "2024/1/3", Profit: A(3), Loss: A(4), CompanyName: "賺錢公司"},
			},
		},
		{
			name: "short lines are skipped",
			text: "2024/1/2\t100\tAcme\n2024/1/3\t5\t1\tGlobex\nnot a record",
			want: []ImportRecord{
				{Date: "2024/1/3", Profit: A(5), Loss: A(1), CompanyName: "Globex"},
			},
			wantSkipped: 2,
		},
		{
			name: "blank lines, CRLF and padding are ignored",
			text: "\r\n  2024/1/2 \t 100 \t 0 \t Acme \r\n\n\n2024/1/3\t1\t0\tGlobex\textra\r\n",
			want: []ImportRecord{
				{Date: "2024/1/2", Profit: A(100), Loss: A(0), CompanyName: "Acme"},
				{Date: "2024/1/3", Profit: A(1), Loss: A(0), CompanyName: "Globex"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseImport(tc.text)
			if err != nil {
				t.Fatalf("ParseImport() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got.Records, cmp.Comparer(Amount.Equal)); diff != "" {
				t.Errorf("ParseImport() mismatch (-want +got):\n%s", diff)
			}
			if got.Skipped != tc.wantSkipped {
				t.Errorf("ParseImport() skipped %d lines, want %d", got.Skipped, tc.wantSkipped)
			}
		})
	}
}

func TestParseImport_Errors(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrNoImportData},
		{"blank", " \n\t\n ", ErrNoImportData},
		{"header only", "日期\t賺\t虧\t公司", ErrNoImportRecords},
		{"only short lines", "a\tb\nc", ErrNoImportRecords},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseImport(tc.text); !errors.Is(err, tc.want) {
				t.Errorf("ParseImport() error = %v, want %v", err, tc.want)
			}
		})
	}
}
