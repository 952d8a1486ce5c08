package auth

import (
	"net/smtp"
	"os"
)

// SendEmailCode delivers the one-time code over SMTP. Credentials come
// from the environment so deployments can point at any provider.
func SendEmailCode(toEmail, code string) error {
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	msg := []byte("Subject: Trek access code\n\nYour verification code is: " + code)

	smtpAuth := smtp.PlainAuth("", from, pass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, smtpAuth, from, []string{toEmail}, msg)
}
