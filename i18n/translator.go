package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"invalid_type":   "invalid type",
		"required":       "required property missing",
		"duplicate_key":  "duplicate key",
		"too_small":      "value below minimum",
		"invalid_enum":   "value not in the accepted set",
		"invalid_format": "invalid format",
		"union_no_match": "value matches none of the accepted shapes",
		"parse_error":    "parse error",
		"overflow":       "number out of range",
		"truncated":      "truncated",
	},
	"ja": {
		"invalid_type":   "型が不正です",
		"required":       "必須プロパティが不足しています",
		"duplicate_key":  "キーが重複しています",
		"too_small":      "最小値を下回っています",
		"invalid_enum":   "許可されていない値です",
		"invalid_format": "形式が不正です",
		"union_no_match": "どの形にも一致しません",
		"parse_error":    "解析エラー",
		"overflow":       "数値が範囲外です",
		"truncated":      "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := messages[t.lang][code]
	if !ok {
		return code
	}
	if field := data["field"]; field != "" {
		return msg + ": " + field
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := messages[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
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
