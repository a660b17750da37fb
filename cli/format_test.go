// ABOUTME: Tests for CLI formatting helpers
// ABOUTME: Dollar parsing round trips and edge cases
package cli

import "testing"

func TestParseDollars(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1234.56", 123456, false},
		{"$1,234.56", 123456, false},
		{"0", 0, false},
		{"5000", 500000, false},
		{"0.5", 50, false},
		{"-12.34", -1234, false},
		{".99", 99, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.999", 0, true},
	}

	for _, tt := range tests {
		got, err := parseDollars(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDollars(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDollars(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDollars(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{1234, "$12.34"},
		{123456789, "$1,234,567.89"},
		{-500, "-$5.00"},
	}
	for _, tt := range tests {
		if got := formatDollars(tt.cents); got != tt.want {
			t.Errorf("formatDollars(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 99, 100, 123456, 100000000} {
		parsed, err := parseDollars(formatDollars(cents))
		if err != nil {
			t.Fatalf("round trip %d: %v", cents, err)
		}
		if parsed != cents {
			t.Errorf("round trip %d came back as %d", cents, parsed)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("abcdefgh-1234"); got != "abcdefgh" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("tiny"); got != "tiny" {
		t.Errorf("shortID(short) = %q", got)
	}
}
