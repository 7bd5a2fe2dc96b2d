// Package service contains outbound integrations and background jobs
package service

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer delivers one-time passcodes. The SMTP implementation is
// swapped for a stub in tests.
type Mailer interface {
	SendOTP(to, code string) error
}

type SMTPMailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		sender:   viper.GetString("mail.sender"),
		password: viper.GetString("mail.password"),
	}
}

func (s *SMTPMailer) SendOTP(to, code string) error {
	m := gomail.NewMessage()

	m.SetHeader("From", s.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Use the following code to verify your email address:</p>"+
			"<h1 style='letter-spacing: 8px'>%v</h1>"+
			"<p>This code will expire in 10 minutes. If you didn't request it, ignore this email.</p>", code))

	d := gomail.NewDialer(s.host, s.port, s.sender, s.password)

	return d.DialAndSend(m)
}
