package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"PropertyTaxAnalyzer/pkg/analysis"
	"PropertyTaxAnalyzer/pkg/fetch"
	"PropertyTaxAnalyzer/pkg/models"
	"PropertyTaxAnalyzer/pkg/pin"
)

// SetupRoutes configures the HTTP routes for the application
func SetupRoutes(mux *http.ServeMux, analyzer *analysis.Analyzer) {
	mux.HandleFunc("POST /analyze-pins", func(w http.ResponseWriter, r *http.Request) {
		handleAnalyzePins(w, r, analyzer)
	})

	mux.HandleFunc("GET /health", handleHealth)
}

// handleAnalyzePins handles the /analyze-pins endpoint
func handleAnalyzePins(w http.ResponseWriter, r *http.Request, analyzer *analysis.Analyzer) {
	// Set CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

	// Handle preflight OPTIONS request
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Error parsing request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := analyzer.Run(r.Context(), req)
	if err != nil {
		status := classifyError(err)
		if status == http.StatusInternalServerError {
			log.Printf("Analysis failed: %v", err)
		}
		http.Error(w, "Error analyzing PINs: "+err.Error(), status)
		return
	}

	response := map[string]interface{}{
		"status":  "success",
		"message": "Analysis completed successfully",
		"result":  result,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// classifyError maps pipeline errors to HTTP status codes: caller mistakes
// are 400, assessor outages are 502, everything else is 500.
func classifyError(err error) int {
	var fe *fetch.FetchError
	switch {
	case errors.Is(err, analysis.ErrEmptyPinList),
		errors.Is(err, analysis.ErrUnknownTownship),
		errors.Is(err, pin.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.As(err, &fe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleHealth is the liveness endpoint for operators
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
