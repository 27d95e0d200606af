package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"tribehub/internal/config"
)

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
	SendInvitationEmail(ctx context.Context, toEmail, receiverName, senderName, groupName string) error
}

type emailService struct {
	client       *resend.Client
	cfg          *config.Config
	templatePath string
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &emailService{
		client:       client,
		cfg:          cfg,
		templatePath: templatePath,
	}
}

func (s *emailService) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Tribehub <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Welcome to Tribehub",
		Name:  name,
		Link:  fmt.Sprintf("http://%s/login", s.cfg.Domain),
	}
	return s.sendEmail(toEmail, "Welcome to Tribehub!", "welcome.html", data)
}

func (s *emailService) SendInvitationEmail(ctx context.Context, toEmail, receiverName, senderName, groupName string) error {
	data := struct {
		Title      string
		Name       string
		SenderName string
		GroupName  string
		Link       string
	}{
		Title:      "You have a group invitation",
		Name:       receiverName,
		SenderName: senderName,
		GroupName:  groupName,
		Link:       fmt.Sprintf("http://%s/notifications", s.cfg.Domain),
	}
	subject := fmt.Sprintf("%s invited you to join %s", senderName, groupName)
	return s.sendEmail(toEmail, subject, "invitation.html", data)
}
