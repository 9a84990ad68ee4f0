package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

// NewEmailService fails when SMTP is not configured; callers treat that as
// "owner e-mail notifications disabled".
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderNotification mails the owner a copy of the order summary that is
// also sent through the WhatsApp link.
func (s *EmailService) SendOrderNotification(order *Order, summary string) error {
	to := os.Getenv("OWNER_EMAIL")
	if to == "" {
		return fmt.Errorf("OWNER_EMAIL not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Nuevo pedido #%d (%s)", order.DailyNumber, order.OrderDate))
	m.SetBody("text/plain", summary)

	return s.dialer.DialAndSend(m)
}
