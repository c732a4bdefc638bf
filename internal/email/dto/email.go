package dto

import "encoding/json"

type SummarizeRequest struct {
	Transcript  string `json:"transcript"`
	Instruction string `json:"instruction"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// SendEmailRequest keeps recipients raw so a non-list value can be told apart
// from a list that fails to decode.
type SendEmailRequest struct {
	Recipients json.RawMessage `json:"recipients"`
	Subject    string          `json:"subject"`
	Body       string          `json:"body"`
}

// RecipientList returns the recipients when they form a JSON array of strings.
func (r SendEmailRequest) RecipientList() ([]string, bool) {
	if len(r.Recipients) == 0 {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(r.Recipients, &list); err != nil || list == nil {
		return nil, false
	}
	return list, true
}

type SendEmailResponse struct {
	OK        bool   `json:"ok"`
	MessageID string `json:"messageId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
