package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLeadEmail(ctx context.Context, to entity.Recipient, lead entity.Lead, courseLink string) error {
	args := m.Called(ctx, to, lead, courseLink)
	return args.Error(0)
}

// MockWhatsAppService
type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendLeadTemplate(ctx context.Context, to string, lead entity.Lead) entity.DeliveryOutcome {
	args := m.Called(ctx, to, lead)
	return args.Get(0).(entity.DeliveryOutcome)
}

func strPtr(s string) *string {
	return &s
}
