package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"

	"transcript-mailer/pkg/apperror"
)

const DefaultSubject = "AI Summary"

// Dispatcher sends one plain-text message to a list of recipients.
type Dispatcher struct {
	from  string
	relay Relay
	now   func() time.Time
}

func NewDispatcher(from string, relay Relay) *Dispatcher {
	return &Dispatcher{
		from:  from,
		relay: relay,
		now:   time.Now,
	}
}

// Send delivers body to every recipient through the To header and returns the
// Message-ID of the submitted message. Relay failures are surfaced unchanged.
func (d *Dispatcher) Send(ctx context.Context, recipients []string, subject, body string) (string, error) {
	if len(recipients) == 0 {
		return "", apperror.Validation("Recipients required")
	}
	if subject == "" {
		subject = DefaultSubject
	}
	if err := ctx.Err(); err != nil {
		return "", apperror.Dispatch(err)
	}

	raw, messageID, err := d.compose(recipients, subject, body)
	if err != nil {
		return "", &apperror.Error{Kind: apperror.KindInternal, Message: "compose message", Err: err}
	}

	if err := d.relay.Send(envelopeAddress(d.from), recipients, bytes.NewReader(raw)); err != nil {
		return "", apperror.Dispatch(err)
	}
	return messageID, nil
}

func (d *Dispatcher) compose(recipients []string, subject, body string) ([]byte, string, error) {
	var h mail.Header
	h.SetDate(d.now())
	h.Set("From", d.from)
	h.Set("To", strings.Join(recipients, ","))
	h.SetSubject(subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, "", fmt.Errorf("generate message id: %w", err)
	}
	messageID, err := h.MessageID()
	if err != nil {
		return nil, "", fmt.Errorf("read message id: %w", err)
	}
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	// base64 keeps the body byte-exact; quoted-printable would rewrite bare LFs as CRLF.
	h.Set("Content-Transfer-Encoding", "base64")

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, "", fmt.Errorf("create writer: %w", err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		return nil, "", fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close writer: %w", err)
	}
	return buf.Bytes(), "<" + messageID + ">", nil
}

// envelopeAddress strips a display name so "Name <a@b>" becomes "a@b".
func envelopeAddress(from string) string {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return from
	}
	return addr.Address
}
