package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	emailDelivery "transcript-mailer/internal/email/delivery"
	emailUsecasePkg "transcript-mailer/internal/email/usecase"
	"transcript-mailer/internal/middleware"
	"transcript-mailer/pkg/ai"
	"transcript-mailer/pkg/config"
	"transcript-mailer/pkg/mailer"
)

type Handler struct {
	config          config.Config
	log             *zap.Logger
	summaryHandler  *emailDelivery.SummaryHandler
	emailHandler    *emailDelivery.EmailHandler
	settingsHandler *SettingsHandler
}

type Option func(*options)

type options struct {
	relay      mailer.Relay
	httpClient *http.Client
}

// WithRelay replaces the SMTP relay built from configuration.
func WithRelay(relay mailer.Relay) Option {
	return func(o *options) {
		o.relay = relay
	}
}

// WithHTTPClient sets the client used for calls to the AI providers.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func NewHandler(cfg config.Config, log *zap.Logger, opts ...Option) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	aiService := ai.NewSummarizerService(ai.Config{
		GroqAPIKey:    cfg.GroqAPIKey,
		GroqModel:     cfg.GroqModel,
		GroqBaseURL:   cfg.GroqBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		HTTPClient:    o.httpClient,
	})
	if provider, model := aiService.Provider(); provider != "" {
		log.Info("AI provider selected", zap.String("provider", string(provider)), zap.String("model", model))
	} else {
		log.Warn("No AI provider configured; /summarize will fail until GROQ_API_KEY or OPENAI_API_KEY is set")
	}

	relay := o.relay
	if relay == nil {
		relay = mailer.NewSMTPRelay(cfg.SMTPAddr(), cfg.SMTPUser, cfg.SMTPPass)
	}
	if cfg.SMTPUser == "" {
		log.Warn("SMTP_USER not set; mail relay will reject unauthenticated submissions", zap.String("smtp_addr", cfg.SMTPAddr()))
	}
	dispatcher := mailer.NewDispatcher(cfg.SenderAddress(), relay)

	summaryUc := emailUsecasePkg.NewSummaryUsecase(aiService, log.Named("summary"))
	emailUc := emailUsecasePkg.NewEmailUsecase(dispatcher, log.Named("email"))

	return &Handler{
		config:          cfg,
		log:             log,
		summaryHandler:  emailDelivery.NewSummaryHandler(summaryUc, log.Named("http")),
		emailHandler:    emailDelivery.NewEmailHandler(emailUc, log.Named("http")),
		settingsHandler: NewSettingsHandler(aiService, cfg),
	}
}

// Engine builds the gin engine with middleware and routes.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(h.log.Named("access")))
	r.Use(cors.New(corsConfig(h.config.AllowedOrigins)))

	SetupRoutes(r, h.summaryHandler, h.emailHandler, h.settingsHandler)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// SetGinMode applies GIN_MODE, ignoring unknown values.
func SetGinMode(mode string) {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}
