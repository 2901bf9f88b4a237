package tui

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"Empty", "", 0},
		{"ASCII", "abc", 3},
		{"Wide", "世界", 4},
		{"Mixed", "a世b", 4},
		{"CombiningMark", "áb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.in); got != tt.want {
				t.Errorf("DisplayWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"Fits", "abc", 5, "abc"},
		{"Exact", "abc", 3, "abc"},
		{"Cut", "abcdef", 4, "abcd"},
		{"Zero", "abc", 0, ""},
		{"Negative", "abc", -1, ""},
		{"WideFits", "世界", 4, "世界"},
		{"WideStraddleDropped", "世界", 3, "世"},
		{"WideCut", "世界", 2, "世"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.in, tt.width); got != tt.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestCutLeft(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"Zero", "abc", 0, "abc"},
		{"Negative", "abc", -2, "abc"},
		{"Cut", "abcdef", 2, "cdef"},
		{"All", "abc", 3, ""},
		{"Past", "abc", 9, ""},
		{"WideWhole", "世界", 2, "界"},
		{"WideStraddleBlanked", "世界", 1, " 界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CutLeft(tt.in, tt.n); got != tt.want {
				t.Errorf("CutLeft(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Fits", "hello", 10, "hello"},
		{"Exact", "hello", 5, "hello"},
		{"Cut", "hello", 4, "hel…"},
		{"One", "hello", 1, "…"},
		{"Zero", "hello", 0, ""},
		{"WideCut", "世界丸", 5, "世界…"},
		{"WideStraddle", "世界丸", 4, "世…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Fits", "hello", 5, "hello"},
		{"Cut", "hello", 4, "…llo"},
		{"One", "hello", 1, "…"},
		{"WideWhole", "丸世界", 5, "…世界"},
		{"WideStraddleBlanked", "丸世界", 4, "… 界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateLeft(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Fits", "abcdef", 6, "abcdef"},
		{"Cut", "abcdefgh", 5, "ab…gh"},
		{"CutEven", "abcdefgh", 6, "ab…fgh"},
		{"Tiny", "abcdef", 3, "ab…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateMiddle(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateMiddle(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, int) string
		in    string
		width int
		want  string
	}{
		{"RightPads", PadRight, "ab", 5, "ab   "},
		{"RightFull", PadRight, "abcde", 5, "abcde"},
		{"RightOver", PadRight, "abcdef", 5, "abcdef"},
		{"RightWide", PadRight, "世", 4, "世  "},
		{"LeftPads", PadLeft, "ab", 5, "   ab"},
		{"CenterPads", PadCenter, "ab", 6, "  ab  "},
		{"CenterOdd", PadCenter, "ab", 5, " ab  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in, tt.width); got != tt.want {
				t.Errorf("%s(%q, %d) = %q, want %q", tt.name, tt.in, tt.width, got, tt.want)
			}
		})
	}
}
