package corelog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	SetFormatter(NewStringFormatter(&buf))
	SetLevel(WARNING)
	defer SetLevel(INFO)

	Infof("should not appear")
	Warningf("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Fatalf("Infof logged below threshold: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("Warningf did not log: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"INFO", INFO},
		{"I", INFO},
		{"DEBUG", DEBUG},
		{"WARNING", WARNING},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseLevel("bogus"); err == nil {
		t.Fatalf("ParseLevel(\"bogus\") expected error")
	}
}

func TestGlogFormatterAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	f := NewGlogFormatter(&buf)
	f.Format(INFO, 0, "no trailing newline")
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("expected trailing newline, got %q", buf.String())
	}
}
