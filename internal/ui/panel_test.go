package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name              string
		done, total, w    int
		wantFill, wantPct string
	}{
		{"empty", 0, 0, 10, strings.Repeat("░", 10), "  0%"},
		{"half", 2, 4, 10, strings.Repeat("█", 5) + strings.Repeat("░", 5), " 50%"},
		{"full", 3, 3, 8, strings.Repeat("█", 8), "100%"},
		{"min width", 1, 1, 2, strings.Repeat("█", 5), "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ui.ProgressBar(tt.done, tt.total, tt.w)
			want := tt.wantFill + " " + tt.wantPct
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestPanel_ContainsLines(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	out := ui.Panel([]string{"first", "second"})
	for _, want := range []string{"first", "second", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in panel:\n%s", want, out)
		}
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme("classic") })
	tests := []struct{ name, want string }{
		{"NEON", "neon"},
		{"mono", "mono"},
		{"something else", "classic"},
	}
	for _, tt := range tests {
		ui.SetTheme(tt.name)
		if got := ui.Current().Name; got != tt.want {
			t.Errorf("SetTheme(%q): expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestOKAndFail(t *testing.T) {
	var buf bytes.Buffer
	ui.OK(&buf, "added")
	ui.Fail(&buf, "broken")
	out := buf.String()
	if !strings.Contains(out, "added") || !strings.Contains(out, "✖ broken") {
		t.Errorf("unexpected output %q", out)
	}
}
