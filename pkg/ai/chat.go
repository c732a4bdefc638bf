package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"transcript-mailer/pkg/apperror"
)

const maxErrorBodyBytes = 64 << 10

// ChatProvider calls one OpenAI-compatible chat completions endpoint.
type ChatProvider struct {
	endpoint providerEndpoint
	client   openai.Client
}

func newChatProvider(endpoint providerEndpoint, httpClient *http.Client) *ChatProvider {
	baseURL := endpoint.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(endpoint.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithMiddleware(upstreamStatusMiddleware(endpoint.Label)),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &ChatProvider{
		endpoint: endpoint,
		client:   openai.NewClient(opts...),
	}
}

// Complete sends one system and one user message and returns the trimmed content
// of the first choice. A response without choices yields "" and no error.
func (p *ChatProvider) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.endpoint.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(summaryTemperature),
	})
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return "", apperror.Upstream(upstream)
		}
		return "", apperror.Upstream(fmt.Errorf("%s request failed: %w", p.endpoint.Label, err))
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// upstreamStatusMiddleware turns every non-2xx response into an *UpstreamError
// holding the body as plain text, before the SDK tries to decode it as JSON.
func upstreamStatusMiddleware(label string) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		res, err := next(req)
		if err != nil {
			return res, err
		}
		if res.StatusCode >= 200 && res.StatusCode < 300 {
			return res, nil
		}

		defer func() { _ = res.Body.Close() }()
		buf, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return nil, &UpstreamError{
			Provider:   label,
			StatusCode: res.StatusCode,
			Body:       string(buf),
		}
	}
}
