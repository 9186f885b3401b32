package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

func TestNewLeadKeepsFieldsAsSubmitted(t *testing.T) {
	lead := entity.NewLead("Asha Rao", " asha@example.com ", "Kids", "98765 43210")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, " asha@example.com ", lead.Email)
	assert.Equal(t, "98765 43210", lead.Phone)
}
