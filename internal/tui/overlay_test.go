package tui

import "testing"

func TestOverlayAt(t *testing.T) {
	tests := []struct {
		name   string
		screen string
		block  string
		x, y   int
		want   string
	}{
		{"inside", "aaaa\nbbbb", "XY", 1, 1, "aaaa\nbXYb"},
		{"left edge clipped", "aaaa", "XYZ", -1, 0, "YZaa"},
		{"right edge clipped", "aaaa", "XYZ", 3, 0, "aaaX"},
		{"past right edge", "aaaa", "XY", 5, 0, "aaaa"},
		{"below screen", "aaaa", "XY", 0, 3, "aaaa"},
		{"short row padded", "a", "X", 2, 0, "a X "},
		{"multi-line block", "aaaa\nbbbb\ncccc", "XY\nZW", 2, 1, "aaaa\nbbXY\nccZW"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlayAt(tt.screen, tt.block, tt.x, tt.y, 4); got != tt.want {
				t.Errorf("overlayAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight() = %q, want %q", got, "ab  ")
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight() should not truncate, got %q", got)
	}
}
