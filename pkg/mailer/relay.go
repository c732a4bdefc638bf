package mailer

import (
	"io"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Relay submits an already-encoded message to a mail transfer agent.
type Relay interface {
	Send(from string, to []string, msg io.Reader) error
}

// SMTPRelay submits over SMTP with STARTTLS and PLAIN authentication.
type SMTPRelay struct {
	addr     string
	username string
	password string
}

func NewSMTPRelay(addr, username, password string) *SMTPRelay {
	return &SMTPRelay{
		addr:     addr,
		username: username,
		password: password,
	}
}

func (r *SMTPRelay) Send(from string, to []string, msg io.Reader) error {
	var auth sasl.Client
	if r.username != "" {
		auth = sasl.NewPlainClient("", r.username, r.password)
	}
	return smtp.SendMail(r.addr, auth, from, to, msg)
}
