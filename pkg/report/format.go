package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Field classification is by substring match on the header name, evaluated
// top to bottom with first match wins. A matching class whose value fails to
// parse falls back to the literal cell text.
var formatRules = []struct {
	names  []string
	format func(raw string) (string, bool)
}{
	{
		names:  []string{"adjusted pgi", "egi", "noi", "final mv / unit", "market value"},
		format: formatCurrency,
	},
	{
		names:  []string{"v/c", "% exp", "cap rate"},
		format: formatPercentage,
	},
}

// FormatField renders one raw cell value according to its header name.
// Empty cells always render as the empty string.
func FormatField(name, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	lower := strings.ToLower(name)
	for _, rule := range formatRules {
		if !containsAny(lower, rule.names) {
			continue
		}
		if out, ok := rule.format(value); ok {
			return out
		}
		break
	}
	return value
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func formatCurrency(raw string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return "", false
	}
	return "$" + humanize.Comma(int64(math.Round(n))), true
}

func formatPercentage(raw string) (string, bool) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	// The report stores some ratios as fractions (0.065) and some already as
	// percentages (6.5). Anything below 1 is treated as a fraction.
	if n < 1 {
		n *= 100
	}
	return fmt.Sprintf("%.2f%%", n), true
}
