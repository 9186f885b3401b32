package usecase

import "github.com/urbancode/chatbot-relay/internal/entity"

// SubmitLeadInput uses pointers so a missing field can be told apart from an
// empty one.
type SubmitLeadInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Course *string `json:"course"`
	Phone  *string `json:"phone"`
}

type DeliveryResult struct {
	To        string `json:"to"`
	Status    string `json:"status"`
	Detail    string `json:"detail"`
	MessageID string `json:"message_id"`
}

type SubmitLeadOutput struct {
	SubmissionID    string           `json:"-"`
	Status          string           `json:"status"`
	Message         string           `json:"message"`
	EmailStatus     string           `json:"email_status,omitempty"`
	EmailDetail     string           `json:"email_detail,omitempty"`
	EmailResults    []DeliveryResult `json:"email_results,omitempty"`
	WhatsAppStatus  string           `json:"whatsapp_status"`
	WhatsAppDetail  string           `json:"whatsapp_detail"`
	WhatsAppResults []DeliveryResult `json:"whatsapp_results"`

	Email    *entity.AggregateResult `json:"-"`
	WhatsApp entity.AggregateResult  `json:"-"`
}

func toDeliveryResults(outcomes []entity.DeliveryOutcome) []DeliveryResult {
	results := make([]DeliveryResult, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, DeliveryResult{
			To:        o.Destination.Address,
			Status:    string(o.Status),
			Detail:    o.Detail,
			MessageID: o.MessageID,
		})
	}
	return results
}
