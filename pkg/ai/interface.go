package ai

import (
	"context"
)

// Summarizer turns a transcript into a summary that follows the caller's instruction.
type Summarizer interface {
	GenerateSummary(ctx context.Context, transcript, instruction string) (string, error)
}

// ProviderType names an OpenAI-compatible chat completion backend.
type ProviderType string

const (
	ProviderGroq   ProviderType = "groq"
	ProviderOpenAI ProviderType = "openai"
)

const (
	DefaultGroqModel     = "llama-3.1-70b-versatile"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
)
