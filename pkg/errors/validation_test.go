package errors

import (
	"math"
	"slices"
	"testing"
)

func TestValidateLoads(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		wantErr bool
	}{
		{"single", []float64{0.5}, false},
		{"overfull", []float64{1.3, 0.2, 0.42, 0.9}, false},
		{"negative", []float64{-1}, false},
		{"large", []float64{12.5}, false},

		{"empty", nil, true},
		{"nan", []float64{0.2, math.NaN()}, true},
		{"infinite", []float64{math.Inf(1)}, true},
		{"too many", make([]float64, MaxCarriages+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLoads(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLoads(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"default", 660, 300, false},
		{"tiny", 0.5, 0.5, false},

		{"zero width", 0, 300, true},
		{"zero height", 660, 0, true},
		{"negative", -1, 100, true},
		{"nan", math.NaN(), 100, true},
		{"infinite", math.Inf(1), 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBounds(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	for _, f := range []string{"", "SVG", "gif", "svg "} {
		err := ValidateFormat(f)
		if !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v, want INVALID_FORMAT", f, err)
		}
	}
}

func TestParseLoads(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{"simple", "1.3,0.2,0.42,0.9", []float64{1.3, 0.2, 0.42, 0.9}, false},
		{"spaces", " 0.1 , 0.5 ", []float64{0.1, 0.5}, false},
		{"trailing comma", "0.3,", []float64{0.3}, false},
		{"negative", "-0.5", []float64{-0.5}, false},

		{"empty", "", nil, true},
		{"only commas", ",,", nil, true},
		{"garbage", "0.2,lots", nil, true},
		{"nan", "NaN", nil, true},
		{"inf", "0.5,inf", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLoads(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLoads(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseLoads(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
