package logger

import "testing"

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelNone, LevelDebug, LevelVerbose, LevelInfo, LevelWarning, LevelError, LevelForce}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestLevelCodes(t *testing.T) {
	cases := map[Level]string{
		LevelDebug:   "DBG",
		LevelVerbose: "VRB",
		LevelInfo:    "INF",
		LevelWarning: "WRN",
		LevelError:   "ERR",
		LevelForce:   "FRC",
	}
	for lvl, want := range cases {
		if got := lvl.Code(); got != want {
			t.Errorf("%s.Code() = %q, want %q", lvl, got, want)
		}
		if len(lvl.Code()) != 3 {
			t.Errorf("%s.Code() is not 3 characters", lvl)
		}
	}
}

func TestPaddedNamesShareWidth(t *testing.T) {
	levels := []Level{LevelDebug, LevelVerbose, LevelInfo, LevelWarning, LevelError, LevelForce}
	want := len(LevelWarning.PaddedName())
	for _, lvl := range levels {
		if len(lvl.PaddedName()) != want {
			t.Errorf("%s.PaddedName() width %d, want %d", lvl, len(lvl.PaddedName()), want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"Verbose", LevelVerbose},
		{"INFO", LevelInfo},
		{"warn", LevelWarning},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"force", LevelForce},
		{"none", LevelNone},
		{"", LevelInfo},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
