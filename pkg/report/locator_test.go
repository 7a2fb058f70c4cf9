package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"PropertyTaxAnalyzer/pkg/models"
	"PropertyTaxAnalyzer/pkg/pin"
)

// fetcherFunc adapts a function to the fetch.Fetcher interface.
type fetcherFunc func(ctx context.Context, url string, timeout time.Duration) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	return f(ctx, url, timeout)
}

var testTownship = models.Township{DisplayName: "Niles", ReportCode: 24}

func mustPin(t *testing.T, raw string) pin.Pin {
	t.Helper()
	p, err := pin.Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// buildWorkbook creates an in-memory xlsx with the given sheets, each a list
// of rows, and returns the serialized bytes.
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%q) failed: %v", name, err)
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("DeleteSheet failed: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func TestCandidateURLs(t *testing.T) {
	l := NewLocator(nil, "https://example.com/documents", time.Second)
	urls := l.CandidateURLs(2025, testTownship)
	if len(urls) != 3 {
		t.Fatalf("expected 3 candidate locations, got %d", len(urls))
	}
	for i, u := range urls {
		if !strings.HasPrefix(u, "https://example.com/documents/") {
			t.Errorf("url %d = %q, want report base prefix", i, u)
		}
		if !strings.Contains(u, "2025") {
			t.Errorf("url %d = %q, want year encoded", i, u)
		}
	}
}

func TestLocateThirdLocationMatches(t *testing.T) {
	p := mustPin(t, "10-25-316-022-0000")
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Hotels": {
			{"PIN", "Address", "Adjusted PGI", "", "Cap Rate"},
			{"99999999999999", "1 Elsewhere Ave", "50000", "ignored", "0.05"},
			{"10253160220000", "123 Main St", "123456.7", "ignored", "0.065"},
		},
	})

	var calls int
	l := NewLocator(fetcherFunc(func(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("not published here")
		}
		return workbook, nil
	}), "https://example.com/documents", time.Second)

	table, miss := l.Locate(context.Background(), p, testTownship, 2025)
	if table == nil {
		t.Fatalf("expected a match, got miss: %s", miss)
	}
	if calls != 3 {
		t.Errorf("fetch attempts = %d, want 3", calls)
	}

	want := &models.ValuationTable{
		Sheet: "Hotels",
		Fields: []models.ValuationField{
			{Field: "PIN", Value: "10253160220000"},
			{Field: "Address", Value: "123 Main St"},
			{Field: "Adjusted PGI", Value: "$123,457"},
			{Field: "Cap Rate", Value: "6.50%"},
		},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestLocateSheetPriorityOrder(t *testing.T) {
	p := mustPin(t, "10-25-316-022-0000")
	// The PIN appears in both sheets; Multifamily precedes Hotels in the
	// fixed search order, so its row must win.
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Hotels": {
			{"PIN", "Use"},
			{"10253160220000", "hotel"},
		},
		"Multifamily": {
			{"PIN", "Use"},
			{"10-25-316-022-0000", "apartments"},
		},
	})

	l := NewLocator(fetcherFunc(func(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
		return workbook, nil
	}), "https://example.com/documents", time.Second)

	table, miss := l.Locate(context.Background(), p, testTownship, 2025)
	if table == nil {
		t.Fatalf("expected a match, got miss: %s", miss)
	}
	if table.Sheet != "Multifamily" {
		t.Errorf("sheet = %q, want Multifamily", table.Sheet)
	}
}

func TestLocateMatchInLaterLocation(t *testing.T) {
	p := mustPin(t, "10-25-316-022-0000")
	empty := buildWorkbook(t, map[string][][]interface{}{
		"Hotels": {
			{"PIN", "Use"},
			{"99999999999999", "hotel"},
		},
	})
	matching := buildWorkbook(t, map[string][][]interface{}{
		"Hotels": {
			{"PIN", "Use"},
			{"10253160220000", "hotel"},
		},
	})

	var calls int
	l := NewLocator(fetcherFunc(func(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
		calls++
		if calls == 1 {
			return empty, nil
		}
		return matching, nil
	}), "https://example.com/documents", time.Second)

	table, _ := l.Locate(context.Background(), p, testTownship, 2025)
	if table == nil {
		t.Fatal("expected a match from the second location")
	}
	if calls != 2 {
		t.Errorf("fetch attempts = %d, want 2", calls)
	}
}

func TestLocateMissEverywhere(t *testing.T) {
	p := mustPin(t, "10-25-316-022-0000")
	workbook := buildWorkbook(t, map[string][][]interface{}{
		"Hotels": {
			{"PIN", "Use"},
			{"99999999999999", "hotel"},
		},
	})

	l := NewLocator(fetcherFunc(func(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
		return workbook, nil
	}), "https://example.com/documents", time.Second)

	table, miss := l.Locate(context.Background(), p, testTownship, 2025)
	if table != nil {
		t.Fatalf("expected a miss, got table from sheet %q", table.Sheet)
	}
	if !strings.Contains(miss, "not found") {
		t.Errorf("miss reason = %q, want a not-found explanation", miss)
	}
}

func TestLocateAllRetrievalsFail(t *testing.T) {
	p := mustPin(t, "10-25-316-022-0000")
	l := NewLocator(fetcherFunc(func(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
		return nil, errors.New("connection refused")
	}), "https://example.com/documents", time.Second)

	table, miss := l.Locate(context.Background(), p, testTownship, 2025)
	if table != nil {
		t.Fatal("expected a miss")
	}
	if !strings.Contains(miss, "connection refused") {
		t.Errorf("miss reason = %q, want the retrieval error", miss)
	}
}
