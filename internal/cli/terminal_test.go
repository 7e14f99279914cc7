package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		out := &bytes.Buffer{}
		term := New(strings.NewReader(tt.input), out)
		if got := term.Confirm("Delete this category?"); got != tt.want {
			t.Errorf("Confirm with input %q = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Delete this category? [y/N]:") {
			t.Errorf("prompt not written, got %q", out.String())
		}
	}
}

func TestReadLine(t *testing.T) {
	out := &bytes.Buffer{}
	term := New(strings.NewReader("admin@example.com\n"), out)

	line, err := term.ReadLine("Email")
	if err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if line != "admin@example.com" {
		t.Errorf("ReadLine() = %q", line)
	}
}

func TestNotices_PlainWhenNotTTY(t *testing.T) {
	out := &bytes.Buffer{}
	term := New(strings.NewReader(""), out)

	term.Success("Category created")
	term.Errorf("boom: %d", 42)
	term.Warn("session expired")

	got := out.String()
	for _, want := range []string{"✓ Category created", "✗ boom: 42", "⚠ session expired"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Error("non-terminal output should carry no color codes")
	}
}

func TestStatus_NoColorOnPlainWriter(t *testing.T) {
	term := New(strings.NewReader(""), &bytes.Buffer{})
	if got := term.Status("pending"); got != "pending" {
		t.Errorf("Status() = %q, want bare value", got)
	}
}

func TestTable(t *testing.T) {
	out := &bytes.Buffer{}
	term := New(strings.NewReader(""), out)

	term.Table([]string{"ID", "STATUS"}, [][]string{{"o1", "pending"}, {"o2", "ready"}})

	got := out.String()
	if !strings.Contains(got, "ID") || !strings.Contains(got, "o2") {
		t.Errorf("table output incomplete: %q", got)
	}
	if len(strings.Split(strings.TrimSpace(got), "\n")) != 3 {
		t.Errorf("table should have 3 lines, got %q", got)
	}
}
