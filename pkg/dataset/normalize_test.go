package dataset

import "testing"

func TestNormalizeLowercaseASCII(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Châteaux", "chateaux"},
		{"Élève", "eleve"},
		{"naïve", "naive"},
		{"GARÇON", "garcon"},
		{"chat", "chat"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeLowercaseASCII(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeLowercaseASCII(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeLowercaseUTF8(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Châteaux", "châteaux"},
		{"ÉLÈVE", "élève"},
		{"chat", "chat"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeLowercaseUTF8(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeLowercaseUTF8(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetNormalizer(t *testing.T) {
	tests := []struct {
		mode  string
		input string
		want  string
	}{
		{"lowercase_ascii", "Élève", "eleve"},
		{"lowercase_utf8", "Élève", "élève"},
		{"none", "Élève", "Élève"},
		{"", "Élève", "Élève"},             // default = none
		{"unknown_mode", "Élève", "Élève"}, // fallback = none
	}
	for _, tt := range tests {
		fn := GetNormalizer(tt.mode)
		got := fn(tt.input)
		if got != tt.want {
			t.Errorf("GetNormalizer(%q)(%q) = %q, want %q", tt.mode, tt.input, got, tt.want)
		}
	}
}
