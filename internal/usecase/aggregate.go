package usecase

import (
	"fmt"
	"strings"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

const (
	noWhatsAppNumbersDetail = "No WhatsApp numbers configured"
	noEmailRecipientsDetail = "No email recipients"

	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusSkipped = "skipped"
)

// Aggregate folds per-destination outcomes into one channel result. Any
// success wins; otherwise the first outcome decides; no outcomes is skipped.
func Aggregate(outcomes []entity.DeliveryOutcome, emptyDetail string) entity.AggregateResult {
	result := entity.AggregateResult{
		Outcomes: make([]entity.DeliveryOutcome, 0, len(outcomes)),
	}
	result.Outcomes = append(result.Outcomes, outcomes...)

	if len(outcomes) == 0 {
		result.Status = entity.StatusSkipped
		result.Detail = emptyDetail
		return result
	}

	result.Status = outcomes[0].Status
	if result.AnySucceeded() {
		result.Status = entity.StatusSuccess
	}

	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", o.Destination.Address, o.Status, o.Detail))
	}
	result.Detail = strings.Join(parts, "; ")

	return result
}

// EmailStatus collapses the email channel into the single flag clients read.
func EmailStatus(result entity.AggregateResult) string {
	switch {
	case result.AnySucceeded():
		return EmailStatusSent
	case len(result.Outcomes) == 0:
		return EmailStatusSkipped
	default:
		return EmailStatusFailed
	}
}
