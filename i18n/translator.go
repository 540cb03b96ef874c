package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "param" or "want").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {key} placeholders that are filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":    "{param} has an invalid type, expected {want}",
		"required":        "{param} is required",
		"unknown_key":     "{param} is not accepted by {want}",
		"duplicate_key":   "duplicate key {param}",
		"invalid_enum":    "{param} must be one of {want}",
		"length_mismatch": "{param} has length {got}, expected {want}",
		"invalid_weight":  "{param} must be {want}",
		"parse_error":     "could not parse document: {want}",
		"range_order":     "{param}: low bound cannot be greater than high bound",
		"conflict":        "conflicting parameters: {want}",
		"domain_range":    "{param} must be {want}",
	},
	"ja": {
		"invalid_type":    "{param} の型が不正です（期待: {want}）",
		"required":        "{param} は必須です",
		"unknown_key":     "{param} は {want} では使用できません",
		"duplicate_key":   "キー {param} が重複しています",
		"invalid_enum":    "{param} は {want} のいずれかである必要があります",
		"length_mismatch": "{param} の長さ {got} が {want} と一致しません",
		"invalid_weight":  "{param} は {want} である必要があります",
		"parse_error":     "ドキュメントを解析できません: {want}",
		"range_order":     "{param}: 下限が上限を超えています",
		"conflict":        "パラメータが競合しています: {want}",
		"domain_range":    "{param} は {want} である必要があります",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {key} placeholders. Missing keys render as the bare key.
func expand(tmpl string, data map[string]string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	b := &strings.Builder{}
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			break
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:i])
		key := tmpl[i+1 : i+j]
		if v, ok := data[key]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(key)
		}
		tmpl = tmpl[i+j+1:]
	}
	return b.String()
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
