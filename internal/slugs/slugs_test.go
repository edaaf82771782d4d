package slugs

import "testing"

func TestIsSlug(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"awc-2024", true},
		{"final_boss", true},
		{"opener", true},
		{"", false},
		{"AWC-2024", false},
		{"2024.finals", false},
		{"-leading", false},
		{"trailing-", false},
		{"with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsSlug(tt.in); got != tt.want {
				t.Fatalf("IsSlug(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Freya", "freya"},
		{"AWC 2024 Finals", "awc-2024-finals"},
		{"UPPER CASE", "upper-case"},
		{"2024.finals", "2024-finals"},
		{"file-name", "file-name"},
		{"Special: Characters!", "special-characters"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Suggest(tt.in); got != tt.want {
				t.Fatalf("Suggest(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
