package models

// AnalyzeRequest represents the request body for the analyze-pins endpoint
type AnalyzeRequest struct {
	Township string   `json:"township"`
	Year     int      `json:"year"`
	Pins     []string `json:"pins"`
	TaxRate  float64  `json:"taxRate"`
	EqFactor float64  `json:"eqFactor"`
}

// AssessmentValues holds the market and assessed values extracted for one PIN.
// Zero values mean the figure could not be found in the assessor document;
// that is not an error, it simply contributes nothing to the totals.
type AssessmentValues struct {
	MarketValue   int64 `json:"marketValue"`
	AssessedValue int64 `json:"assessedValue"`
}

// PinResult pairs a canonical (dashed) PIN with its extracted values
type PinResult struct {
	Pin           string `json:"pin"`
	MarketValue   int64  `json:"marketValue"`
	AssessedValue int64  `json:"assessedValue"`
}

// ValuationField is one (header, formatted value) column taken from the
// matched spreadsheet row. Order is significant and follows the header row.
type ValuationField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ValuationTable is the ordered field list located for a PIN, together with
// the name of the report sheet it was found on.
type ValuationTable struct {
	Sheet  string           `json:"sheet"`
	Fields []ValuationField `json:"fields"`
}

// CurrentValuation aggregates the batch totals and the computed tax figures
type CurrentValuation struct {
	MarketValue       int64   `json:"marketValue"`
	AssessedValue     int64   `json:"assessedValue"`
	EstimatedTaxes    int64   `json:"estimatedTaxes"`
	LevelOfAssessment float64 `json:"levelOfAssessment"`
}

// AnalysisResult represents the full response for one analyze-pins request
type AnalysisResult struct {
	Township       string           `json:"township"`
	Year           int              `json:"year"`
	TaxRate        float64          `json:"taxRate"`
	EqFactor       float64          `json:"eqFactor"`
	Pins           []PinResult      `json:"pins"`
	Current        CurrentValuation `json:"current"`
	ValuationTable *ValuationTable  `json:"valuationTable,omitempty"`
	ValuationNote  string           `json:"valuationNote,omitempty"`
}
