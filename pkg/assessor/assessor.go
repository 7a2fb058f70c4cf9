// Package assessor fetches a property's assessment page and extracts its
// current market and assessed values from the page text.
package assessor

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"PropertyTaxAnalyzer/pkg/fetch"
	"PropertyTaxAnalyzer/pkg/models"
	"PropertyTaxAnalyzer/pkg/pin"
)

// The assessor page labels the figures "Total MV" and "Total AV", optionally
// followed by a colon and a dollar sign. The first occurrence wins.
var (
	marketValueRe   = regexp.MustCompile(`(?i)total\s*mv[:\s]*\$?\s*([\d,]+)`)
	assessedValueRe = regexp.MustCompile(`(?i)total\s*av[:\s]*\$?\s*([\d,]+)`)
)

// ExtractValues scans the text of one assessment document for the market and
// assessed value labels. A missing label yields 0 for that figure; that is
// not an error, it means the value was unavailable on the page.
func ExtractValues(text string) models.AssessmentValues {
	return models.AssessmentValues{
		MarketValue:   extractAmount(marketValueRe, text),
		AssessedValue: extractAmount(assessedValueRe, text),
	}
}

func extractAmount(re *regexp.Regexp, text string) int64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Service retrieves assessment pages for PINs.
type Service struct {
	fetcher fetch.Fetcher
	baseURL string
	timeout time.Duration
}

// NewService returns a Service fetching pages under baseURL with the given
// per-page timeout.
func NewService(fetcher fetch.Fetcher, baseURL string, timeout time.Duration) *Service {
	return &Service{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// PageURL builds the assessment page URL for one PIN.
func (s *Service) PageURL(p pin.Pin) string {
	return fmt.Sprintf("%s/%s", s.baseURL, p.Digits)
}

// FetchAssessment retrieves the assessment page for p and extracts its
// values. Only the fetch itself can fail; a page without the expected labels
// returns zero values.
func (s *Service) FetchAssessment(ctx context.Context, p pin.Pin) (models.AssessmentValues, error) {
	body, err := s.fetcher.Fetch(ctx, s.PageURL(p), s.timeout)
	if err != nil {
		return models.AssessmentValues{}, fmt.Errorf("assessment page for PIN %s: %w", p.Dashed(), err)
	}

	text, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		// Fall back to the raw page; the label patterns still apply.
		log.Printf("HTML conversion failed for PIN %s, scanning raw page: %v", p.Dashed(), err)
		text = string(body)
	}

	return ExtractValues(text), nil
}
