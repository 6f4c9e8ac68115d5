package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textvcard/backend/internal/i18n"
	"github.com/textvcard/backend/internal/server/mw"
	"github.com/textvcard/backend/internal/server/resp"
)

// Health returns 200 in the unified envelope.
func Health(c *gin.Context) {
	lang := mw.LanguageFrom(c.Request.Context())
	resp.Success(c, http.StatusOK, i18n.T(lang, "ok"), nil)
}
