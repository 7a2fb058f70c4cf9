// Package report locates a PIN's valuation breakdown inside the assessor's
// published commercial valuation workbooks.
package report

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"PropertyTaxAnalyzer/pkg/fetch"
	"PropertyTaxAnalyzer/pkg/models"
	"PropertyTaxAnalyzer/pkg/pin"
)

// sheetNames is the fixed search order over the report's property-type
// subsections. Sheets missing from a workbook are skipped.
var sheetNames = []string{
	"Multifamily",
	"Mixed Use",
	"Hotels",
	"Industrials",
	"Offices",
	"Retail",
	"Commercial",
	"Other",
}

// Locator searches the published workbooks for a PIN's valuation row.
type Locator struct {
	fetcher fetch.Fetcher
	baseURL string
	timeout time.Duration
}

// NewLocator returns a Locator fetching workbooks under baseURL.
func NewLocator(fetcher fetch.Fetcher, baseURL string, timeout time.Duration) *Locator {
	return &Locator{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// CandidateURLs builds the ordered list of workbook locations to try. The
// assessor has published the reports under several naming conventions over
// the years, so each candidate encodes (year, township) differently.
func (l *Locator) CandidateURLs(year int, t models.Township) []string {
	name := t.DisplayName
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return []string{
		fmt.Sprintf("%s/%s/%s",
			l.baseURL,
			url.PathEscape(fmt.Sprintf("%d Commercial Valuation Reports", year)),
			url.PathEscape(fmt.Sprintf("%s Commercial Valuation Report.xlsx", name))),
		fmt.Sprintf("%s/%s",
			l.baseURL,
			url.PathEscape(fmt.Sprintf("%d %s %d Commercial.xlsx", t.ReportCode, name, year))),
		fmt.Sprintf("%s/%d/%d_%s_commercial_valuation.xlsx",
			l.baseURL, year, t.ReportCode, slug),
	}
}

// Locate tries every candidate location in order and searches each retrieved
// workbook for p. It returns the located table, or nil plus the reason for
// the miss. A miss is a reportable outcome, never an error.
func (l *Locator) Locate(ctx context.Context, p pin.Pin, t models.Township, year int) (*models.ValuationTable, string) {
	missReason := "no valuation report locations attempted"
	for _, loc := range l.CandidateURLs(year, t) {
		body, err := l.fetcher.Fetch(ctx, loc, l.timeout)
		if err != nil {
			log.Printf("Valuation report unavailable at %s: %v", loc, err)
			missReason = err.Error()
			continue
		}

		table, err := searchWorkbook(body, p)
		if err != nil {
			log.Printf("Valuation report at %s unreadable: %v", loc, err)
			missReason = err.Error()
			continue
		}
		if table != nil {
			return table, ""
		}
		missReason = fmt.Sprintf("PIN %s not found in valuation report", p.Dashed())
	}
	return nil, missReason
}

// searchWorkbook scans the known sheets of one workbook for a row whose
// first cell matches p. The first matching row in the first present sheet
// wins; the search stops there.
func searchWorkbook(body []byte, p pin.Pin) (*models.ValuationTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	// Workbook sheet names do not always match the canonical casing.
	present := make(map[string]string)
	for _, s := range f.GetSheetList() {
		present[strings.ToLower(s)] = s
	}

	for _, want := range sheetNames {
		actual, ok := present[strings.ToLower(want)]
		if !ok {
			continue
		}
		rows, err := f.GetRows(actual)
		if err != nil || len(rows) < 2 {
			continue
		}

		header := rows[0]
		for _, row := range rows[1:] {
			if len(row) == 0 || !pinMatches(row[0], p) {
				continue
			}
			return buildTable(actual, header, row), nil
		}
	}
	return nil, nil
}

// pinMatches reports whether a first-column cell identifies p, either as the
// bare 14 digits (dashes and spaces ignored) or as the exact dashed form.
func pinMatches(cell string, p pin.Pin) bool {
	trimmed := strings.TrimSpace(cell)
	stripped := strings.NewReplacer("-", "", " ", "").Replace(trimmed)
	return stripped == p.Digits || trimmed == p.Dashed()
}

// buildTable pairs header names with formatted row values, preserving the
// header's left-to-right order and dropping columns with no header.
func buildTable(sheet string, header, row []string) *models.ValuationTable {
	n := len(header)
	if len(row) < n {
		n = len(row)
	}

	fields := make([]models.ValuationField, 0, n)
	for i := 0; i < n; i++ {
		name := strings.TrimSpace(header[i])
		if name == "" {
			continue
		}
		fields = append(fields, models.ValuationField{
			Field: name,
			Value: FormatField(name, row[i]),
		})
	}
	return &models.ValuationTable{Sheet: sheet, Fields: fields}
}
