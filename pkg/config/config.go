package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port string

	// AssessorBaseURL is the base of the per-PIN assessment page,
	// e.g. https://www.cookcountyassessor.com/pin
	AssessorBaseURL string

	// ReportBaseURL is the base under which the published commercial
	// valuation workbooks live.
	ReportBaseURL string

	// AssessmentTimeout bounds one assessor page fetch. The valuation
	// workbook gets the longer ReportTimeout since the file is much larger.
	AssessmentTimeout time.Duration
	ReportTimeout     time.Duration

	// CourtesyDelay is the pause between consecutive PIN page fetches so the
	// batch does not hammer the assessor site.
	CourtesyDelay time.Duration
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() *Config {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the .env file doesn't exist
		log.Println("No .env file found. Using system environment variables.")
	} else {
		log.Println("Loaded environment variables from .env file.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	assessorBase := os.Getenv("ASSESSOR_BASE_URL")
	if assessorBase == "" {
		assessorBase = "https://www.cookcountyassessor.com/pin"
	}

	reportBase := os.Getenv("REPORT_BASE_URL")
	if reportBase == "" {
		reportBase = "https://www.cookcountyassessor.com/documents"
	}

	return &Config{
		Port:              port,
		AssessorBaseURL:   assessorBase,
		ReportBaseURL:     reportBase,
		AssessmentTimeout: durationFromEnv("ASSESSMENT_TIMEOUT_MS", 15*time.Second),
		ReportTimeout:     durationFromEnv("REPORT_TIMEOUT_MS", 60*time.Second),
		CourtesyDelay:     durationFromEnv("COURTESY_DELAY_MS", 250*time.Millisecond),
	}
}

// durationFromEnv reads a millisecond count from the named variable,
// falling back to def when unset or unparseable.
func durationFromEnv(name string, def time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("Ignoring invalid %s value %q, using default", name, raw)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
