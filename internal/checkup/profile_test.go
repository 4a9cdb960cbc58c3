package checkup

import (
	"strings"
	"testing"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "Ada", "Ada", false},
		{"trims", "  Ada Lovelace  ", "Ada Lovelace", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"plain", "34", 34, false},
		{"trims", " 7 ", 7, false},
		{"lower bound", "1", 1, false},
		{"upper bound", "120", 120, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"too large", "121", 0, true},
		{"not a number", "seven", 0, true},
		{"decimal", "34.5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAge(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAge(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAge(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "70", 70, false},
		{"decimal", "70.5", 70.5, false},
		{"trims", " 70.5 ", 70.5, false},
		{"zero", "0", 0, true},
		{"negative", "-70", 0, true},
		{"not a number", "heavy", 0, true},
		{"infinity", "inf", 0, true},
		{"nan", "nan", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeight(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeight(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWeight(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHeight(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
		errHint string
	}{
		{"plain", "1.75", 1.75, false, ""},
		{"tall but plausible", "2.30", 2.3, false, ""},
		{"zero", "0", 0, true, "greater than zero"},
		{"negative", "-1.75", 0, true, "greater than zero"},
		{"centimetres", "175", 0, true, "centimetres"},
		{"not a number", "tall", 0, true, "number of metres"},
		{"empty", "", 0, true, "number of metres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeight(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHeight(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHeight(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if tt.errHint != "" && !strings.Contains(err.Error(), tt.errHint) {
				t.Errorf("error %q does not mention %q", err, tt.errHint)
			}
		})
	}
}

func TestParseWeightRejectsNonFinite(t *testing.T) {
	// strconv.ParseFloat accepts these spellings, so the range check has
	// to catch them.
	for _, input := range []string{"inf", "-inf", "+inf", "nan", "Infinity"} {
		if v, err := ParseWeight(input); err == nil {
			t.Errorf("ParseWeight(%q) = %v, want error", input, v)
		}
	}
}
