package helpers

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain integer", in: "100", want: "100"},
		{name: "two decimal places", in: "120.50", want: "120.5"},
		{name: "surrounding whitespace", in: "  42.00 ", want: "42"},
		{name: "not a number", in: "abc", wantErr: ErrAmountNotANumber},
		{name: "empty", in: "", wantErr: ErrAmountNotANumber},
		{name: "zero", in: "0", wantErr: ErrAmountNotPositive},
		{name: "negative", in: "-5.00", wantErr: ErrAmountNotPositive},
		{name: "three decimal places", in: "1.005", wantErr: ErrAmountTooManyPlaces},
		{name: "trailing zeros beyond two places are fine", in: "1.0500", want: "1.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAmount(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
