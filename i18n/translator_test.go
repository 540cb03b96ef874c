package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("domain_range", map[string]string{"param": "p", "want": "0-1"}); msg != "p は 0-1 である必要があります" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("domain_range", map[string]string{"param": "low", "want": "greater than 0"})
	if got != "low must be greater than 0" {
		t.Fatalf("unexpected message: %q", got)
	}
	// missing keys fall back to the key name
	if got := T("required", nil); got != "param is required" {
		t.Fatalf("unexpected message: %q", got)
	}
	// unknown codes pass through
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unexpected message: %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, data map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("conflict", nil); got != "X:conflict" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
