package domain

// OutgoingEmail is a single plain-text message addressed to every recipient via To.
type OutgoingEmail struct {
	Recipients []string
	Subject    string
	Body       string
}

// SentEmail identifies a message accepted by the mail relay.
type SentEmail struct {
	MessageID string
}
