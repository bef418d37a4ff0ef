// Package mail delivers the system's outbound email: OTP codes, the
// complaint-noted notification and contact-form relays. Notification sends
// are best-effort at the call sites; nothing here rolls back a mutation.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/smartcity/complaint-backend/internal/config"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminInbox string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:       cfg.SMTPUser,
		adminInbox: cfg.AdminEmail,
	}
}

// NotedComplaint carries the fields shown in the owner notification.
type NotedComplaint struct {
	Category string
	Urgency  string
	Location string
}

// ContactMessage is a contact-form submission relayed to the admin inbox.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendOTP mails a one-time code. Kind is shown in the subject, e.g.
// "Login OTP" or "Signup OTP".
func (m *Mailer) SendOTP(to, otp, kind string) error {
	body, err := render(otpTemplate, map[string]string{
		"Kind": kind,
		"OTP":  otp,
	})
	if err != nil {
		return err
	}
	return m.send(to, "Smart City Complaint System - "+kind, body)
}

// SendComplaintNoted tells the owner their complaint entered triage.
func (m *Mailer) SendComplaintNoted(to string, c NotedComplaint) error {
	body, err := render(notedTemplate, c)
	if err != nil {
		return err
	}
	return m.send(to, "Your Complaint Has Been Noted - Smart City", body)
}

// SendContactMessage relays a contact-form submission to the admin inbox.
func (m *Mailer) SendContactMessage(msg ContactMessage) error {
	if m.adminInbox == "" {
		return fmt.Errorf("no admin inbox configured")
	}
	body, err := render(contactTemplate, map[string]string{
		"Name":    msg.Name,
		"Email":   msg.Email,
		"Subject": msg.Subject,
		"Message": msg.Message,
		"Date":    time.Now().Format(time.RFC1123),
	})
	if err != nil {
		return err
	}
	return m.send(m.adminInbox, "Contact Form: "+msg.Subject, body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
