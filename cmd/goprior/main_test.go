package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/goprior/i18n"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestDescribe(t *testing.T) {
	doc := "dists:\n  b: {type: to, low: 1, high: 10}\n  a: {type: uniform, low: 0, high: 1}\n"
	code, out, errOut := runCLI(t, doc, "describe")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "b: <Distribution> lognorm(mean=1.15, sd=0.7)\na: <Distribution> uniform(0, 1)\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestDescribe_FileAndIssues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"dists": {"x": {"type": "lognorm", "low": -1, "high": 5}}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runCLI(t, "", "describe", "-f", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if out != "" || !strings.Contains(errOut, "/dists/x/low: low must be greater than 0") {
		t.Fatalf("stdout=%q stderr=%q", out, errOut)
	}

	defer i18n.SetLanguage("en")
	_, _, errOut = runCLI(t, "", "describe", "-lang", "ja", "-f", path)
	if !strings.Contains(errOut, "low は greater than 0 である必要があります") {
		t.Fatalf("expected ja message, got %q", errOut)
	}
}

func TestDescribe_VerboseLogs(t *testing.T) {
	code, _, errOut := runCLI(t, `{"dists": {"c": {"type": "const", "value": 1}}}`, "describe", "-v", "-format", "json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(errOut, "model loaded") {
		t.Fatalf("expected debug log, got %q", errOut)
	}
}

func TestTo(t *testing.T) {
	code, out, errOut := runCLI(t, "", "to", "-lclip", "0", "1", "10")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "<Distribution> lognorm(mean=1.15, sd=0.7, lclip=0)\n" {
		t.Fatalf("stdout = %q", out)
	}

	_, out, _ = runCLI(t, "", "to", "-credibility", "90", "--", "-10", "10")
	if out != "<Distribution> norm(mean=0, sd=6.08)\n" {
		t.Fatalf("stdout = %q", out)
	}

	code, _, errOut = runCLI(t, "", "to", "5", "1")
	if code != 1 || !strings.Contains(errOut, "low bound cannot be greater than high bound") {
		t.Fatalf("exit %d stderr=%q", code, errOut)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"to", "1"},
		{"to", "a", "2"},
		{"describe", "-format", "toml"},
		{"describe", "-f", "/nonexistent/model.yaml"},
	} {
		if code, _, _ := runCLI(t, "", args...); code != 2 {
			t.Fatalf("%v: exit %d, want 2", args, code)
		}
	}
}
