package ai

import "fmt"

// UpstreamError captures a non-2xx chat completion response. Body is the raw
// response text; it is never parsed because providers disagree on its shape.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %d %s", e.Provider, e.StatusCode, e.Body)
}

func (e *UpstreamError) HTTPStatusCode() int {
	return e.StatusCode
}
