package delivery

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	emaildto "transcript-mailer/internal/email/dto"
	"transcript-mailer/internal/middleware"
	"transcript-mailer/pkg/apperror"
)

// respondError logs err and writes {"error": message} with the status for its kind.
func respondError(c *gin.Context, log *zap.Logger, op string, err error, fallback string) {
	status := apperror.HTTPStatus(err)
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("kind", string(apperror.KindOf(err))),
		zap.Int("status", status),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	}
	if status >= 500 {
		log.Error("request failed", fields...)
	} else {
		log.Info("request rejected", fields...)
	}

	c.JSON(status, emaildto.ErrorResponse{Error: msg})
}
