// Package i18n serves localized API messages from embedded JSON packs.
// The language is taken from the Accept-Language header only; the converter
// ships Russian (the original audience) and English.
package i18n

import (
	"embed"
	"encoding/json"
	"sync"
)

//go:embed ru/*.json en/*.json
var fs embed.FS

var (
	mu    sync.RWMutex
	packs = make(map[string]map[string]string) // lang -> key -> message
)

// Supported languages.
const (
	LangRU = "ru"
	LangEN = "en"
)

// Load reads the embedded message packs. A missing or broken pack falls back
// to built-in defaults, so Load never leaves a supported language empty.
func Load() error {
	mu.Lock()
	defer mu.Unlock()
	for _, lang := range []string{LangRU, LangEN} {
		data, err := fs.ReadFile(lang + "/messages.json")
		if err != nil {
			packs[lang] = defaultMessages(lang)
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			packs[lang] = defaultMessages(lang)
			continue
		}
		packs[lang] = m
	}
	return nil
}

// T returns the message for key in lang, falling back to English and then to
// the key itself.
func T(lang, key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if m, ok := packs[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if m, ok := packs[LangEN]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return key
}

// defaultMessages holds the fallback texts used when a pack cannot be read.
func defaultMessages(lang string) map[string]string {
	if lang == LangRU {
		return map[string]string{
			"ok":                    "ок",
			"error.invalid_payload": "неверный формат запроса",
			"error.bad_phone":       "не удалось распознать телефон",
			"error.rate_limited":    "слишком много запросов",
			"error.internal":        "внутренняя ошибка сервера",
			"warning.dangling_name": "Строка с именем без телефона пропущена: '%s'",
			"warning.bad_phone":     "Не удалось распознать телефон для: '%s' (строка: '%s')",
		}
	}
	return map[string]string{
		"ok":                    "ok",
		"error.invalid_payload": "invalid payload",
		"error.bad_phone":       "phone could not be normalized",
		"error.rate_limited":    "too many requests",
		"error.internal":        "internal server error",
		"warning.dangling_name": "name line without a phone skipped: '%s'",
		"warning.bad_phone":     "could not recognize phone for: '%s' (line: '%s')",
	}
}
