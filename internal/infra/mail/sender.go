package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendPolicyDocument emails the applicant the purchase confirmation with a
// link to the generated RIPLAY document.
func (s *EmailSender) SendPolicyDocument(to, name, productName, docLink string) error {
	data := PolicyEmailData{
		Name:         name,
		ProductName:  productName,
		DocumentLink: docLink,
	}

	tmplPath := filepath.Join("templates", "policy.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your %s policy is active, %s", productName, name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send SMTP email: %w", err)
	}
	return nil
}
