package ai

import (
	"context"
	"net/http"

	"transcript-mailer/pkg/apperror"
)

const errNoProvider = "No AI provider configured. Set GROQ_API_KEY or OPENAI_API_KEY."

// Config holds AI provider configuration
type Config struct {
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// HTTPClient is optional; the SDK default transport is used when nil.
	HTTPClient *http.Client
}

// Service implements Summarizer on top of whichever provider has a credential.
type Service struct {
	endpoint providerEndpoint
	provider *ChatProvider
}

// NewSummarizerService picks the provider once; the configuration is immutable
// so the choice holds for the lifetime of the process. With no credential the
// service is still returned and every call fails with a configuration error.
func NewSummarizerService(cfg Config) *Service {
	endpoint, ok := selectProvider(cfg)
	if !ok {
		return &Service{}
	}
	return &Service{
		endpoint: endpoint,
		provider: newChatProvider(endpoint, cfg.HTTPClient),
	}
}

// Provider reports the active provider and model, or empty strings when none is configured.
func (s *Service) Provider() (ProviderType, string) {
	if s.provider == nil {
		return "", ""
	}
	return s.endpoint.Type, s.endpoint.Model
}

// GenerateSummary implements Summarizer
func (s *Service) GenerateSummary(ctx context.Context, transcript, instruction string) (string, error) {
	if transcript == "" || instruction == "" {
		return "", apperror.Validation("Missing transcript or instruction")
	}
	if s.provider == nil {
		return "", apperror.Configuration(errNoProvider)
	}
	return s.provider.Complete(ctx, systemPrompt, buildUserPrompt(instruction, transcript))
}
