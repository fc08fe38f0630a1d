package matcher

import "testing"

func TestExtractLiteral(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		wantLit    string
		wantOK     bool
		wantCI     bool
	}{
		{"pure literal long", "timeout", false, "timeout", true, false},
		{"pure literal 3 chars", "foo", false, "foo", true, false},
		{"below min length", "ab", false, "", false, false},
		{"dot-star prefix", ".*timeout", false, "timeout", true, false},
		{"digits then literal", `\d+error`, false, "error", true, false},
		{"longest wins", `abc\d+defgh`, false, "defgh", true, false},
		{"plus child", `(abcd)+x`, false, "abcd", true, false},
		{"repeat min 1", `x{1,3}timeout`, false, "timeout", true, false},
		{"repeat min 0", `x{0,3}timeout`, false, "timeout", true, false},
		{"optional only", `(timeout)?`, false, "", false, false},
		{"alternation", `foo|bar`, false, "", false, false},
		{"ignore case lowered", "TimeOut", true, "timeout", true, true},
		{"inline fold", `(?i)ERROR`, false, "error", true, true},
		{"fold with k skipped", "kernel", true, "", false, false},
		{"non-ascii skipped", "héllo", false, "", false, false},
		{"dot-s flag", `(?s).*timeout`, false, "timeout", true, false},
		{"invalid pattern", "a(b", false, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := extractLiteral(tt.pattern, tt.ignoreCase)
			if ok != tt.wantOK {
				t.Fatalf("extractLiteral(%q, %v) ok = %v, want %v", tt.pattern, tt.ignoreCase, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if info.literal != tt.wantLit {
				t.Errorf("extractLiteral(%q, %v) literal = %q, want %q", tt.pattern, tt.ignoreCase, info.literal, tt.wantLit)
			}
			if info.ignoreCase != tt.wantCI {
				t.Errorf("extractLiteral(%q, %v) ignoreCase = %v, want %v", tt.pattern, tt.ignoreCase, info.ignoreCase, tt.wantCI)
			}
		})
	}
}

func TestPrefilter_Nil(t *testing.T) {
	var p *prefilter
	if !p.candidate([]byte("anything")) {
		t.Error("nil prefilter rejected a line")
	}
	if newPrefilter(`\d+`, false) != nil {
		t.Error(`newPrefilter(\d+) should be nil`)
	}
}

func TestRegexPrefilter_Correctness(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		lines      []string
		want       []bool
	}{
		{
			name:    "dot-star prefix",
			pattern: ".*timeout",
			lines:   []string{"connection timeout", "all good", "read timeout"},
			want:    []bool{true, false, true},
		},
		{
			name:    "candidate but no regex match",
			pattern: `^error\d+`,
			lines:   []string{"has error in middle", "error123"},
			want:    []bool{false, true},
		},
		{
			name:       "case insensitive",
			pattern:    "timeout",
			ignoreCase: true,
			lines:      []string{"TIMEOUT", "all good", "TimeOut"},
			want:       []bool{true, false, true},
		},
		{
			name:       "kelvin sign folds to k",
			pattern:    `kernel\d*`,
			ignoreCase: true,
			lines:      []string{"\u212Aernel", "nothing"},
			want:       []bool{true, false},
		},
		{
			name:    "empty line",
			pattern: ".*timeout",
			lines:   []string{""},
			want:    []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, invert := range []bool{false, true} {
				m, err := NewRegexMatcher(tt.pattern, tt.ignoreCase, invert)
				if err != nil {
					t.Fatalf("NewRegexMatcher(%q): %v", tt.pattern, err)
				}
				for i, line := range tt.lines {
					if got := m.Match([]byte(line)); got != (tt.want[i] != invert) {
						t.Errorf("invert=%v Match(%q) = %v, want %v", invert, line, got, tt.want[i] != invert)
					}
				}
			}
		})
	}
}

func TestMaskPrefilter(t *testing.T) {
	m, err := NewMaskMatcher("*.log", true, false)
	if err != nil {
		t.Fatal(err)
	}
	if m.pre == nil {
		t.Fatal("mask with literal run has no prefilter")
	}
	for line, want := range map[string]bool{"APP.LOG": true, "app.txt": false, "log": false} {
		if got := m.Match([]byte(line)); got != want {
			t.Errorf("Match(%q) = %v, want %v", line, got, want)
		}
	}
}

func benchLines(match string, every int) [][]byte {
	lines := make([][]byte, 10000)
	for i := range lines {
		if every > 0 && i%every == 0 {
			lines[i] = []byte(match)
		} else {
			lines[i] = []byte("the quick brown fox jumps over the lazy dog")
		}
	}
	return lines
}

func benchMatch(b *testing.B, m Matcher, lines [][]byte) {
	var n int64
	for _, l := range lines {
		n += int64(len(l))
	}
	b.SetBytes(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, l := range lines {
			m.Match(l)
		}
	}
}

func BenchmarkRegex_Prefilter_NoMatch(b *testing.B) {
	m, _ := NewRegexMatcher(".*timeout", false, false)
	benchMatch(b, m, benchLines("", 0))
}

func BenchmarkRegex_Prefilter_Sparse(b *testing.B) {
	m, _ := NewRegexMatcher(".*timeout", false, false)
	benchMatch(b, m, benchLines("ERROR: connection timeout at 2024-01-01", 100))
}

func BenchmarkRegex_Prefilter_Dense(b *testing.B) {
	m, _ := NewRegexMatcher(".*timeout", false, false)
	benchMatch(b, m, benchLines("ERROR: connection timeout at port 8080", 1))
}

// BenchmarkRegex_NoPrefilter_Sparse is the baseline without an extractable literal.
func BenchmarkRegex_NoPrefilter_Sparse(b *testing.B) {
	m, _ := NewRegexMatcher(`\d{4}-\d{2}-\d{2}`, false, false)
	benchMatch(b, m, benchLines("2024-01-15 connection error", 100))
}

