package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	emaildomain "transcript-mailer/internal/email/domain"
	"transcript-mailer/pkg/ai"
	"transcript-mailer/pkg/apperror"
)

type summaryUsecase struct {
	summarizer ai.Summarizer
	log        *zap.Logger
}

func NewSummaryUsecase(summarizer ai.Summarizer, log *zap.Logger) SummaryUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &summaryUsecase{
		summarizer: summarizer,
		log:        log,
	}
}

func (u *summaryUsecase) Summarize(ctx context.Context, req emaildomain.SummaryRequest) (*emaildomain.Summary, error) {
	if req.Transcript == "" || req.Instruction == "" {
		return nil, apperror.Validation("Missing transcript or instruction")
	}

	start := time.Now()
	text, err := u.summarizer.GenerateSummary(ctx, req.Transcript, req.Instruction)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.Int("transcript_bytes", len(req.Transcript)),
		zap.Int("summary_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if text == "" {
		u.log.Warn("provider returned no content", fields...)
	} else {
		u.log.Info("summary generated", fields...)
	}

	return &emaildomain.Summary{Text: text}, nil
}
