package statsheet

import "testing"

func TestParseStatValue(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1,234", 1234, true},
		{"631,8", 631.8, true},
		{"1 234,56", 1234.56, true},
		{"1 234", 1234, true},
		{"12.5%", 12.5, true},
		{"0.36s", 0.36, true},
		{"-250", -250, true},
		{"abc", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatValue(tt.in)
			if ok != tt.wantOK || (ok && !almostEqual(got, tt.want)) {
				t.Errorf("ParseStatValue(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"12.5%", 12.5, true},
		{"(35%)", 35, true},
		{"40", 40, true},
		{"1,200", 1200, true},
		{"none", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePercentage(tt.in)
			if ok != tt.wantOK || (ok && !almostEqual(got, tt.want)) {
				t.Errorf("ParsePercentage(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
