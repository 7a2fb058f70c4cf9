// Package pin validates and canonicalizes Cook County Property Index Numbers.
package pin

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat indicates the input is not a 14-digit PIN.
var ErrInvalidFormat = errors.New("invalid PIN format")

// Pin holds the undashed 14-digit form of a validated Property Index Number.
type Pin struct {
	Digits string
}

// Normalize strips dashes from raw and validates that exactly 14 decimal
// digits remain. Any other shape fails with ErrInvalidFormat.
func Normalize(raw string) (Pin, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if len(digits) != 14 {
		return Pin{}, fmt.Errorf("%w: %q must contain exactly 14 digits", ErrInvalidFormat, raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Pin{}, fmt.Errorf("%w: %q contains a non-digit character", ErrInvalidFormat, raw)
		}
	}
	return Pin{Digits: digits}, nil
}

// Dashed renders the canonical display form XX-XX-XXX-XXX-XXXX.
func (p Pin) Dashed() string {
	d := p.Digits
	return d[0:2] + "-" + d[2:4] + "-" + d[4:7] + "-" + d[7:10] + "-" + d[10:14]
}
