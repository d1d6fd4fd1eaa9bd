package buildinfo

import "testing"

func TestShort(t *testing.T) {
	orig := Commit
	defer func() { Commit = orig }()

	tests := []struct {
		commit string
		want   string
	}{
		{"none", Version},
		{"", Version},
		{"abc", Version + " (abc)"},
		{"0123456789abcdef", Version + " (0123456)"},
	}

	for _, tt := range tests {
		Commit = tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() with commit %q = %q, want %q", tt.commit, got, tt.want)
		}
	}
}
