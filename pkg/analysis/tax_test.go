package analysis

import "testing"

func TestEstimateTaxes(t *testing.T) {
	tests := []struct {
		name     string
		assessed int64
		rate     float64
		eqFactor float64
		expected int64
	}{
		{
			name:     "Whole-dollar result",
			assessed: 100000,
			rate:     8,
			eqFactor: 1.05,
			expected: 8400,
		},
		{
			name:     "Rounds half up",
			assessed: 12345,
			rate:     8.1,
			eqFactor: 1.0,
			expected: 1000, // 999.945 rounds to 1000
		},
		{
			name:     "Zero assessed value",
			assessed: 0,
			rate:     10,
			eqFactor: 1.0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTaxes(tt.assessed, tt.rate, tt.eqFactor)
			if got != tt.expected {
				t.Errorf("EstimateTaxes(%d, %v, %v) = %d, want %d",
					tt.assessed, tt.rate, tt.eqFactor, got, tt.expected)
			}
		})
	}
}

func TestLevelOfAssessment(t *testing.T) {
	if got := LevelOfAssessment(50000, 500000); got != 0.1 {
		t.Errorf("LevelOfAssessment(50000, 500000) = %v, want 0.1", got)
	}
	if got := LevelOfAssessment(50000, 0); got != FallbackLevelOfAssessment {
		t.Errorf("LevelOfAssessment with zero market value = %v, want %v",
			got, FallbackLevelOfAssessment)
	}
}
