package styles

import "testing"

func TestAvatarColor(t *testing.T) {
	want := []string{"#B3EBF2", "#A5D6A7", "#EF9A9A", "#B3EBF2", "#EF9A9A", "#A5D6A7", "#B3EBF2"}
	for i, w := range want {
		if got := AvatarColor(i); got != w {
			t.Errorf("AvatarColor(%d) = %s, want %s", i, got, w)
		}
	}
}

func TestShadowParams(t *testing.T) {
	tests := []struct {
		level                 float64
		offset, blur, opacity float64
	}{
		{0, 0, 0, 0},
		{4, 2, 4, 0.4},
		{-2, -1, 2, 0.2},
		{20, 10, 20, 1},
	}
	for _, tt := range tests {
		off, blur, op := ShadowParams(tt.level)
		if off != tt.offset || blur != tt.blur || op != tt.opacity {
			t.Errorf("ShadowParams(%v) = %v, %v, %v, want %v, %v, %v",
				tt.level, off, blur, op, tt.offset, tt.blur, tt.opacity)
		}
	}
}
