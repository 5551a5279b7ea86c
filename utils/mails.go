package utils

import (
	"fmt"
	"net/smtp"
)

// Mailer delivers a rendered message to one recipient.
type Mailer interface {
	SendMail(to string, message []byte) error
}

// SMTPMailer sends pre-rendered MIME messages through an SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

func (m SMTPMailer) SendMail(to string, message []byte) error {
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Host)
	}
	header := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\n", m.From, to))
	if err := smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, append(header, message...)); err != nil {
		LogError(err, "Error sending mail to "+to)
		return err
	}
	LogSuccess("Mail sent to " + to)
	return nil
}

// LogMailer only logs; it is used when no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) SendMail(to string, message []byte) error {
	LogInfo(fmt.Sprintf("SMTP disabled, mail to %s not sent (%d bytes)", to, len(message)))
	return nil
}
