package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transcript-mailer/pkg/ai"
	"transcript-mailer/pkg/config"
)

type providerInfo interface {
	Provider() (ai.ProviderType, string)
}

// SettingsHandler exposes a read-only view of the startup configuration.
// Secrets are never included.
type SettingsHandler struct {
	provider       providerInfo
	mailConfigured bool
	sender         string
}

func NewSettingsHandler(provider providerInfo, cfg config.Config) *SettingsHandler {
	return &SettingsHandler{
		provider:       provider,
		mailConfigured: cfg.SMTPUser != "" && cfg.SMTPPass != "",
		sender:         cfg.SenderAddress(),
	}
}

// ProviderSettingsResponse is the body of GET /api/settings/provider
type ProviderSettingsResponse struct {
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	MailConfigured bool   `json:"mailConfigured"`
	Sender         string `json:"sender,omitempty"`
}

// GetProviderSettings returns the active AI provider and whether mail can be sent
// GET /api/settings/provider
func (h *SettingsHandler) GetProviderSettings(c *gin.Context) {
	provider, model := h.provider.Provider()
	c.JSON(http.StatusOK, ProviderSettingsResponse{
		Provider:       string(provider),
		Model:          model,
		MailConfigured: h.mailConfigured,
		Sender:         h.sender,
	})
}
