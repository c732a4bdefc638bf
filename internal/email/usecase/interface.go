package usecase

import (
	"context"

	emaildomain "transcript-mailer/internal/email/domain"
)

// SummaryUsecase defines the interface for transcript summarisation
type SummaryUsecase interface {
	Summarize(ctx context.Context, req emaildomain.SummaryRequest) (*emaildomain.Summary, error)
}

// EmailUsecase defines the interface for sending summaries by email
type EmailUsecase interface {
	SendEmail(ctx context.Context, email emaildomain.OutgoingEmail) (*emaildomain.SentEmail, error)
}

// Sender is the mail dispatcher the email use case delegates to.
type Sender interface {
	Send(ctx context.Context, recipients []string, subject, body string) (string, error)
}
