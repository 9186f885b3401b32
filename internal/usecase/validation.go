package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

var emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSubmitLeadInput only checks presence. Content problems such as a
// malformed email change routing, they never reject the lead.
func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errors []ValidationError

	if input.Name == nil {
		errors = append(errors, ValidationError{"name", "field required"})
	}
	if input.Email == nil {
		errors = append(errors, ValidationError{"email", "field required"})
	}
	if input.Course == nil {
		errors = append(errors, ValidationError{"course", "field required"})
	}
	if input.Phone == nil {
		errors = append(errors, ValidationError{"phone", "field required"})
	}

	return errors
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// EmailRecipients returns the student first when their address is usable,
// then the admin. An empty admin address is left out.
func EmailRecipients(lead entity.Lead, adminEmail string) []entity.Recipient {
	recipients := make([]entity.Recipient, 0, 2)

	if IsValidEmail(lead.Email) {
		recipients = append(recipients, entity.Recipient{
			Address: strings.TrimSpace(lead.Email),
			Role:    entity.RoleStudent,
		})
	}

	if admin := strings.TrimSpace(adminEmail); admin != "" {
		recipients = append(recipients, entity.Recipient{
			Address: admin,
			Role:    entity.RoleAdmin,
		})
	}

	return recipients
}
