package usecase

import (
	"context"

	"go.uber.org/zap"

	emaildomain "transcript-mailer/internal/email/domain"
	"transcript-mailer/pkg/apperror"
)

type emailUsecase struct {
	sender Sender
	log    *zap.Logger
}

func NewEmailUsecase(sender Sender, log *zap.Logger) EmailUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &emailUsecase{
		sender: sender,
		log:    log,
	}
}

func (u *emailUsecase) SendEmail(ctx context.Context, email emaildomain.OutgoingEmail) (*emaildomain.SentEmail, error) {
	if len(email.Recipients) == 0 {
		return nil, apperror.Validation("Recipients required")
	}

	messageID, err := u.sender.Send(ctx, email.Recipients, email.Subject, email.Body)
	if err != nil {
		return nil, err
	}

	u.log.Info("email sent",
		zap.String("message_id", messageID),
		zap.Int("recipients", len(email.Recipients)))

	return &emaildomain.SentEmail{MessageID: messageID}, nil
}
