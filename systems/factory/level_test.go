package factory

import "testing"

func TestNextLevelName(t *testing.T) {
	names := []string{"meadow", "towers"}

	tests := []struct {
		current string
		want    string
	}{
		{"meadow", "towers"},
		{"towers", "meadow"},
		{"unknown", "meadow"},
	}
	for _, tt := range tests {
		if got := NextLevelName(names, tt.current); got != tt.want {
			t.Errorf("NextLevelName(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
	if got := NextLevelName(nil, "meadow"); got != "" {
		t.Errorf("NextLevelName(nil) = %q, want empty", got)
	}
}
