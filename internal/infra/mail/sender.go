package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// Send delivers one already-rendered outreach message. The body is plain
// text; templates are substituted before they reach the sender.
func (s *EmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
