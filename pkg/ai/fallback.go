package ai

import "strings"

// providerEndpoint is everything needed to talk to one configured backend.
type providerEndpoint struct {
	Type    ProviderType
	Label   string // prefix used in upstream error messages
	APIKey  string
	Model   string
	BaseURL string
}

// selectProvider walks the providers in priority order and returns the first one
// that has a credential: Groq, then OpenAI. The choice never depends on the
// outcome of a previous call.
func selectProvider(cfg Config) (providerEndpoint, bool) {
	candidates := []providerEndpoint{
		{
			Type:    ProviderGroq,
			Label:   "GROQ",
			APIKey:  cfg.GroqAPIKey,
			Model:   orDefault(cfg.GroqModel, DefaultGroqModel),
			BaseURL: orDefault(cfg.GroqBaseURL, DefaultGroqBaseURL),
		},
		{
			Type:    ProviderOpenAI,
			Label:   "OpenAI",
			APIKey:  cfg.OpenAIAPIKey,
			Model:   orDefault(cfg.OpenAIModel, DefaultOpenAIModel),
			BaseURL: orDefault(cfg.OpenAIBaseURL, DefaultOpenAIBaseURL),
		},
	}

	for _, c := range candidates {
		c.APIKey = strings.TrimSpace(c.APIKey)
		if c.APIKey != "" {
			return c, true
		}
	}
	return providerEndpoint{}, false
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
