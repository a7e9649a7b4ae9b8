package mailer

import (
	"crs/src/lib"
	"os"
)

// Mailer sends a transactional message and returns its message id.
type Mailer interface {
	Send(input *lib.SendMailInput) (string, error)
}

type smtpMailer struct{}

func (smtpMailer) Send(input *lib.SendMailInput) (string, error) {
	if input.From == "" {
		input.From = os.Getenv("MAIL_FROM")
	}
	if input.FromName == "" {
		input.FromName = os.Getenv("MAIL_FROM_NAME")
	}
	return lib.SendMail(input)
}

var mailer Mailer = smtpMailer{}

func GetMailer() Mailer {
	return mailer
}

// NewMailer replaces the delivery implementation; tests use this to
// capture outgoing mail.
func NewMailer(m Mailer) {
	mailer = m
}
