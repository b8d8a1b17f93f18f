package nouns

import "testing"

func TestMapGender(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"masculine", "M"},
		{"Q499327", "M"},
		{"feminine", "F"},
		{"Q1775415", "F"},
		{"neuter", ""},
		{"Q1775461", ""},
		{"common gender", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := MapGender(tt.raw)
		if got != tt.want {
			t.Errorf("MapGender(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
