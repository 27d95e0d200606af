package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	args := m.Called(ctx, toEmail, name)
	return args.Error(0)
}

func (m *EmailService) SendInvitationEmail(ctx context.Context, toEmail, receiverName, senderName, groupName string) error {
	args := m.Called(ctx, toEmail, receiverName, senderName, groupName)
	return args.Error(0)
}
