package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/textvcard/backend/internal/i18n"
	"github.com/textvcard/backend/internal/server/mw"
	"github.com/textvcard/backend/internal/server/resp"
	"github.com/textvcard/backend/internal/vcard"
)

// ConvertHandler serves the text-to-vCard pipeline over HTTP.
type ConvertHandler struct {
	logger *zap.Logger
}

func NewConvertHandler(logger *zap.Logger) *ConvertHandler {
	return &ConvertHandler{logger: logger}
}

type convertReq struct {
	// Text may be empty: an empty input is a valid conversion with an
	// empty result, not an error.
	Text string `json:"text"`
}

type convertResp struct {
	VCard    string   `json:"vcard"`
	Contacts int      `json:"contacts"`
	Warnings []string `json:"warnings"`
}

// Convert parses the pasted text and returns the vCard document plus
// localized warnings for every skipped pair. Malformed contact lines are
// never an HTTP error; only a broken request body is.
func (h *ConvertHandler) Convert(c *gin.Context) {
	lang := mw.LanguageFrom(c.Request.Context())

	var req convertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, http.StatusBadRequest, i18n.T(lang, "error.invalid_payload"))
		return
	}

	contacts, warns := vcard.Parse(req.Text)
	warnings := make([]string, 0, len(warns))
	for _, w := range warns {
		warnings = append(warnings, localizeWarning(lang, w))
	}

	h.logger.Info("convert",
		zap.Int("contacts", len(contacts)),
		zap.Int("warnings", len(warns)),
		zap.String("request_id", mw.RequestIDFrom(c.Request.Context())),
	)

	resp.OK(c, convertResp{
		VCard:    vcard.Serialize(contacts),
		Contacts: len(contacts),
		Warnings: warnings,
	})
}

type normalizeReq struct {
	Phone string `json:"phone" binding:"required"`
}

// Normalize exposes the phone normalizer on its own: 422 when the value
// yields no digits.
func (h *ConvertHandler) Normalize(c *gin.Context) {
	lang := mw.LanguageFrom(c.Request.Context())

	var req normalizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Error(c, http.StatusBadRequest, i18n.T(lang, "error.invalid_payload"))
		return
	}

	phone := vcard.NormalizePhone(req.Phone)
	if phone == "" || phone == "+" {
		resp.Error(c, http.StatusUnprocessableEntity, i18n.T(lang, "error.bad_phone"))
		return
	}
	resp.OK(c, gin.H{"phone": phone})
}

// localizeWarning renders a structured parser warning in the request language.
func localizeWarning(lang string, w vcard.Warning) string {
	if w.Kind == vcard.WarnDanglingName {
		return fmt.Sprintf(i18n.T(lang, "warning.dangling_name"), w.Name)
	}
	return fmt.Sprintf(i18n.T(lang, "warning.bad_phone"), w.Name, w.Raw)
}
