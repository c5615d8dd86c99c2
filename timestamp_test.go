package jddf

import "testing"

func TestIsValidTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-01-02T03:04:05Z", true},
		{"2024-01-02T03:04:05.999Z", true},
		{"2024-01-02T03:04:05+01:00", true},
		{"2024-01-02T03:04:05-05:30", true},
		{"2024-01-02", false},
		{"not-a-timestamp", false},
		{"2024-13-02T03:04:05Z", false},
		{"2024-01-02T25:04:05Z", false},
		{"", false},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			if got := isValidTimestamp(tt.in); got != tt.want {
				t.Errorf("isValidTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
