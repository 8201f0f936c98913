package errors

import (
	"math"
	"strconv"
	"strings"
)

// MaxCarriages bounds the number of loads accepted from user input.
const MaxCarriages = 100

// Formats lists the output formats a train can be rendered to.
var Formats = []string{"svg", "png", "pdf", "json"}

// ValidateLoads checks a load list before layout.
//
// Validation rules:
//   - At least one load
//   - At most MaxCarriages loads
//   - Finite values only (negative and overfull loads are accepted)
func ValidateLoads(loads []float64) error {
	if len(loads) == 0 {
		return New(ErrCodeInvalidInput, "train needs at least one carriage")
	}
	if len(loads) > MaxCarriages {
		return New(ErrCodeInvalidInput, "too many carriages: %d (max %d)", len(loads), MaxCarriages)
	}
	for i, v := range loads {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "load %d is not a finite number", i+1)
		}
	}
	return nil
}

// ValidateBounds checks that a bounding box has a positive, finite size.
func ValidateBounds(width, height float64) error {
	if !(width > 0) || math.IsInf(width, 1) {
		return New(ErrCodeInvalidInput, "width must be positive, got %v", width)
	}
	if !(height > 0) || math.IsInf(height, 1) {
		return New(ErrCodeInvalidInput, "height must be positive, got %v", height)
	}
	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// ParseLoads parses a comma-separated list such as "1.3,0.2,0.42" and
// validates the result. Blank entries are skipped.
func ParseLoads(s string) ([]float64, error) {
	var loads []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, Wrap(ErrCodeInvalidInput, err, "invalid load %q", field)
		}
		loads = append(loads, v)
	}
	if err := ValidateLoads(loads); err != nil {
		return nil, err
	}
	return loads, nil
}
