package entity

import "github.com/google/uuid"

// Lead is one chatbot form submission. It lives only for the request.
type Lead struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Course string `json:"course"`
	Phone  string `json:"phone"`
}

func NewLead(name, email, course, phone string) Lead {
	return Lead{
		ID:     uuid.New().String(),
		Name:   name,
		Email:  email,
		Course: course,
		Phone:  phone,
	}
}

type RecipientRole string

const (
	RoleStudent RecipientRole = "student"
	RoleAdmin   RecipientRole = "admin"
)

// Recipient is an email destination tagged with who is reading it.
type Recipient struct {
	Address string
	Role    RecipientRole
}
