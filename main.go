package main

import (
	"fmt"
	"log"
	"net/http"

	"PropertyTaxAnalyzer/pkg/analysis"
	"PropertyTaxAnalyzer/pkg/api"
	"PropertyTaxAnalyzer/pkg/config"
	"PropertyTaxAnalyzer/pkg/fetch"
)

func main() {
	// Load the application configuration
	cfg := config.LoadConfig()

	// Wire the analysis pipeline with a shared HTTP document fetcher
	analyzer := analysis.New(cfg, fetch.NewClient())

	mux := http.NewServeMux()
	api.SetupRoutes(mux, analyzer)

	// Start the server
	fmt.Printf("Server starting on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
