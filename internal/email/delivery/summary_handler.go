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

// SummaryHandler handles transcript summary API endpoints
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
	log            *zap.Logger
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase, log *zap.Logger) *SummaryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
		log:            log,
	}
}

// POST /summarize
// Summarize generates a summary of the transcript under the caller's instruction.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req emaildto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, "summarize", apperror.Validation("Invalid request body"), "")
		return
	}
	if req.Transcript == "" || req.Instruction == "" {
		respondError(c, h.log, "summarize", apperror.Validation("Missing transcript or instruction"), "")
		return
	}

	summary, err := h.summaryUsecase.Summarize(c.Request.Context(), emaildomain.SummaryRequest{
		Transcript:  req.Transcript,
		Instruction: req.Instruction,
	})
	if err != nil {
		respondError(c, h.log, "summarize", err, "Failed to generate summary")
		return
	}

	c.JSON(http.StatusOK, emaildto.SummarizeResponse{Summary: summary.Text})
}
