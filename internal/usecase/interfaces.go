package usecase

import (
	"context"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

// EmailService delivers one lead email to one recipient. Each call is a
// separate SMTP session.
type EmailService interface {
	SendLeadEmail(ctx context.Context, to entity.Recipient, lead entity.Lead, courseLink string) error
}

// WhatsAppService pushes the lead template to an already normalized number.
// Failures come back inside the outcome, never as an error.
type WhatsAppService interface {
	SendLeadTemplate(ctx context.Context, to string, lead entity.Lead) entity.DeliveryOutcome
}

type CourseLinker interface {
	Link(course string) string
}
