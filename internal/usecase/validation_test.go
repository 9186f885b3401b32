package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urbancode/chatbot-relay/internal/entity"
	"github.com/urbancode/chatbot-relay/internal/usecase"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.co":                 true,
		"joao.silva@example.com": true,
		"first-last@mail.co.in":  true,
		"  padded@example.org  ": true,
		"not-an-email":           false,
		"missing@tld":            false,
		"short@tld.c":            false,
		"@example.com":           false,
		"two@@example.com":       false,
		"":                       false,
	}

	for email, want := range cases {
		assert.Equal(t, want, usecase.IsValidEmail(email), "email %q", email)
	}
}

func TestEmailRecipientsValidStudent(t *testing.T) {
	lead := entity.NewLead("Asha", " asha@example.com ", "Data Science", "9876543210")

	recipients := usecase.EmailRecipients(lead, "admin@urbancode.in")

	assert.Equal(t, []entity.Recipient{
		{Address: "asha@example.com", Role: entity.RoleStudent},
		{Address: "admin@urbancode.in", Role: entity.RoleAdmin},
	}, recipients)
}

func TestEmailRecipientsInvalidStudentKeepsAdmin(t *testing.T) {
	lead := entity.NewLead("Asha", "not-an-email", "Data Science", "9876543210")

	recipients := usecase.EmailRecipients(lead, "admin@urbancode.in")

	assert.Equal(t, []entity.Recipient{
		{Address: "admin@urbancode.in", Role: entity.RoleAdmin},
	}, recipients)
}

func TestEmailRecipientsWithoutAdmin(t *testing.T) {
	lead := entity.NewLead("Asha", "asha@example.com", "Kids", "")

	recipients := usecase.EmailRecipients(lead, "  ")

	assert.Len(t, recipients, 1)
	assert.Equal(t, entity.RoleStudent, recipients[0].Role)
}

func TestValidateSubmitLeadInputMissingFields(t *testing.T) {
	errs := usecase.ValidateSubmitLeadInput(usecase.SubmitLeadInput{
		Name:  strPtr("Asha"),
		Phone: strPtr(""),
	})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"email", "course"}, fields)
}

func TestValidateSubmitLeadInputEmptyStringsAccepted(t *testing.T) {
	errs := usecase.ValidateSubmitLeadInput(usecase.SubmitLeadInput{
		Name:   strPtr(""),
		Email:  strPtr(""),
		Course: strPtr(""),
		Phone:  strPtr(""),
	})

	assert.Empty(t, errs)
}
