package mw

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/textvcard/backend/internal/i18n"
)

const HeaderAcceptLanguage = "Accept-Language"

var supportedLanguages = map[string]bool{
	i18n.LangRU: true,
	i18n.LangEN: true,
}

// Language reads Accept-Language (header only, never query or body) and
// stores the first supported tag in the request context. Anything missing
// or unsupported falls back to Russian instead of rejecting the request.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := parseAcceptLanguage(c.GetHeader(HeaderAcceptLanguage))
		if !supportedLanguages[lang] {
			lang = i18n.LangRU
		}
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ContextKeyLanguage, lang))
		c.Next()
	}
}

// parseAcceptLanguage extracts the first language tag, e.g. "ru" from
// "ru-RU,en;q=0.9".
func parseAcceptLanguage(h string) string {
	for i, r := range h {
		if r == '-' || r == ',' || r == ';' || r == ' ' {
			if i > 0 {
				return h[:i]
			}
			break
		}
	}
	if len(h) >= 2 {
		return h[:2]
	}
	return h
}
