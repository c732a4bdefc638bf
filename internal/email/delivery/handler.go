package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	emaildomain "transcript-mailer/internal/email/domain"
	emaildto "transcript-mailer/internal/email/dto"
	"transcript-mailer/internal/email/usecase"
	"transcript-mailer/pkg/apperror"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
	log          *zap.Logger
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase, log *zap.Logger) *EmailHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailHandler{
		emailUsecase: emailUsecase,
		log:          log,
	}
}

// POST /send-email
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req emaildto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, "send_email", apperror.Validation("Invalid request body"), "")
		return
	}

	recipients, ok := req.RecipientList()
	if !ok || len(recipients) == 0 {
		respondError(c, h.log, "send_email", apperror.Validation("Recipients required"), "")
		return
	}

	sent, err := h.emailUsecase.SendEmail(c.Request.Context(), emaildomain.OutgoingEmail{
		Recipients: recipients,
		Subject:    req.Subject,
		Body:       req.Body,
	})
	if err != nil {
		respondError(c, h.log, "send_email", err, "Failed to send email")
		return
	}

	c.JSON(http.StatusOK, emaildto.SendEmailResponse{OK: true, MessageID: sent.MessageID})
}
