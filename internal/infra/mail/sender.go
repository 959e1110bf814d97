package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/crm-records/internal/usecase"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendRecordDigest mails a short notification about a record mutation to the
// configured operations address.
func (s *EmailSender) SendRecordDigest(object, op string, count int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("CRM records: %s %s x%d", object, op, count))
	m.SetBody("text/plain", fmt.Sprintf(
		"The record operations service applied %q to %d %s record(s).\r\n",
		op, count, object,
	))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return usecase.NewTechnicalError("SMTP_SEND", "sending SMTP notification", err)
	}

	return nil
}
