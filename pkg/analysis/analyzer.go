// Package analysis runs the full valuation-and-tax pipeline for a batch of
// PINs in one township.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"PropertyTaxAnalyzer/pkg/assessor"
	"PropertyTaxAnalyzer/pkg/config"
	"PropertyTaxAnalyzer/pkg/fetch"
	"PropertyTaxAnalyzer/pkg/models"
	"PropertyTaxAnalyzer/pkg/pin"
	"PropertyTaxAnalyzer/pkg/report"
)

// ErrEmptyPinList indicates the request contained no PINs.
var ErrEmptyPinList = errors.New("at least one PIN is required")

// ErrUnknownTownship indicates the township is not in the jurisdiction set.
var ErrUnknownTownship = errors.New("unknown township")

// Analyzer sequences the per-PIN assessment fetches, the single valuation
// report lookup and the tax computation for one request.
type Analyzer struct {
	assessments *assessor.Service
	locator     *report.Locator

	// courtesyDelay spaces out consecutive assessor page fetches so a batch
	// does not trip the site's anti-automation defenses.
	courtesyDelay time.Duration
}

// New wires an Analyzer from the configuration and a document fetcher.
func New(cfg *config.Config, fetcher fetch.Fetcher) *Analyzer {
	return &Analyzer{
		assessments:   assessor.NewService(fetcher, cfg.AssessorBaseURL, cfg.AssessmentTimeout),
		locator:       report.NewLocator(fetcher, cfg.ReportBaseURL, cfg.ReportTimeout),
		courtesyDelay: cfg.CourtesyDelay,
	}
}

// Run processes one batch. PINs are handled strictly in order; a fetch
// failure for any PIN aborts the whole batch. The valuation report lookup
// runs once, for the first PIN only, and a lookup miss is not an error.
func (a *Analyzer) Run(ctx context.Context, req models.AnalyzeRequest) (*models.AnalysisResult, error) {
	if len(req.Pins) == 0 {
		return nil, ErrEmptyPinList
	}

	township, ok := models.LookupTownship(req.Township)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTownship, req.Township)
	}

	pins := make([]pin.Pin, 0, len(req.Pins))
	for _, raw := range req.Pins {
		p, err := pin.Normalize(raw)
		if err != nil {
			return nil, err
		}
		pins = append(pins, p)
	}

	result := &models.AnalysisResult{
		Township: township.DisplayName,
		Year:     req.Year,
		TaxRate:  req.TaxRate,
		EqFactor: req.EqFactor,
		Pins:     make([]models.PinResult, 0, len(pins)),
	}

	var totalMarket, totalAssessed int64
	for i, p := range pins {
		if i > 0 && a.courtesyDelay > 0 {
			select {
			case <-time.After(a.courtesyDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		values, err := a.assessments.FetchAssessment(ctx, p)
		if err != nil {
			return nil, err
		}

		totalMarket += values.MarketValue
		totalAssessed += values.AssessedValue
		result.Pins = append(result.Pins, models.PinResult{
			Pin:           p.Dashed(),
			MarketValue:   values.MarketValue,
			AssessedValue: values.AssessedValue,
		})
	}

	// The report groups properties by project, so one PIN of the batch is
	// enough to find the row; the first PIN is used.
	table, miss := a.locator.Locate(ctx, pins[0], township, req.Year)
	if table != nil {
		result.ValuationTable = table
	} else {
		log.Printf("No valuation table for PIN %s: %s", pins[0].Dashed(), miss)
		result.ValuationNote = miss
	}

	result.Current = models.CurrentValuation{
		MarketValue:       totalMarket,
		AssessedValue:     totalAssessed,
		EstimatedTaxes:    EstimateTaxes(totalAssessed, req.TaxRate, req.EqFactor),
		LevelOfAssessment: LevelOfAssessment(totalAssessed, totalMarket),
	}
	return result, nil
}
