package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "a.datum", `a = [1, "x"];`)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"name": "a"`},
		{"yaml", "name: a"},
		{"text", `a = [1, "x"];`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := run(t, "parse", "-f", tt.format, path)
			if err != nil {
				t.Fatalf("parse error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	path := writeFile(t, "bad.datum", "a = ;")

	_, err := run(t, "parse", path)
	if err == nil || !strings.Contains(err.Error(), "bad.datum:1:5") {
		t.Errorf("parse error = %v, want position bad.datum:1:5", err)
	}

	if _, err := run(t, "parse", "-f", "xml", path); err == nil {
		t.Error("parse -f xml succeeded")
	}
}

func TestCheckCommand(t *testing.T) {
	good := writeFile(t, "good.datum", "a = 1;")
	odd := writeFile(t, "odd.datum", "a = 1-2;")
	bad := writeFile(t, "bad.datum", "a = 1")

	out, err := run(t, "check", good, odd)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, "warning: malformed number") {
		t.Errorf("output = %q, want a malformed number warning", out)
	}

	out, err = run(t, "check", good, bad)
	if err == nil {
		t.Fatal("check with a broken file succeeded")
	}
	if !strings.Contains(out, "unexpected end of file") {
		t.Errorf("output = %q, want end of file diagnostic", out)
	}
}

func TestEbnfCommands(t *testing.T) {
	out, err := run(t, "ebnf", "print")
	if err != nil {
		t.Fatalf("ebnf print error = %v", err)
	}
	if !strings.Contains(out, "Document") {
		t.Errorf("ebnf print = %q, want the datum grammar", out)
	}

	grammar := writeFile(t, "datum.ebnf", out)
	if _, err := run(t, "ebnf", "check", "--start", "Document", grammar); err != nil {
		t.Errorf("ebnf check error = %v", err)
	}

	broken := writeFile(t, "broken.ebnf", `A = B .`)
	out, err = run(t, "ebnf", "check", "--start", "A", broken)
	if err == nil {
		t.Fatal("ebnf check of undefined production succeeded")
	}
	if !strings.Contains(out, "B") {
		t.Errorf("output = %q, want a message about B", out)
	}
}
