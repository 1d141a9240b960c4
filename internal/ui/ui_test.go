package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterGlyphPrefixes(t *testing.T) {
	tests := []struct {
		name string
		emit func(p *Printer)
		icon string
		text string
	}{
		{"info", func(p *Printer) { p.Info("building %s", "cueme") }, IconInfo, "building cueme"},
		{"warn", func(p *Printer) { p.Warn("on branch dev") }, IconWarn, "on branch dev"},
		{"ok", func(p *Printer) { p.OK("tag pushed") }, IconOK, "tag pushed"},
		{"fail", func(p *Printer) { p.Fail("build failed") }, IconFail, "build failed"},
		{"skip", func(p *Printer) { p.Skip("commit skipped") }, IconSkip, "commit skipped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewPrinter(&buf))
			out := buf.String()
			if !strings.Contains(out, tt.icon) {
				t.Errorf("output %q missing icon %q", out, tt.icon)
			}
			if !strings.Contains(out, tt.text) {
				t.Errorf("output %q missing text %q", out, tt.text)
			}
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("output %q missing trailing newline", out)
			}
		})
	}
}

func TestStaticConfirmer(t *testing.T) {
	yes, err := StaticConfirmer(true).Confirm("recreate tag?")
	if err != nil || !yes {
		t.Errorf("StaticConfirmer(true).Confirm() = %v, %v; want true, nil", yes, err)
	}
	no, err := StaticConfirmer(false).Confirm("recreate tag?")
	if err != nil || no {
		t.Errorf("StaticConfirmer(false).Confirm() = %v, %v; want false, nil", no, err)
	}
}

func TestTerminalConfirmerNonTTY(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"y", "y\n", true},
		{"uppercase", "YES\n", true},
		{"no", "no\n", false},
		{"empty line defaults to no", "\n", false},
		{"closed stdin defaults to no", "", false},
		{"garbage", "sure why not\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &TerminalConfirmer{In: strings.NewReader(tt.input), Out: &out}
			got, err := c.Confirm("Proceed?")
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}
