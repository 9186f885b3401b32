package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

const rootMessage = "Lead relay backend is working!"

type HealthHandler struct {
	WhatsAppConfigured bool
	WhatsAppNumbers    int
	EmailConfigured    bool
	CourseCount        int
	StartTime          time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
	Courses      int               `json:"courses"`
}

func NewHealthHandler(whatsAppConfigured bool, whatsAppNumbers int, emailConfigured bool, courseCount int) *HealthHandler {
	return &HealthHandler{
		WhatsAppConfigured: whatsAppConfigured,
		WhatsAppNumbers:    whatsAppNumbers,
		EmailConfigured:    emailConfigured,
		CourseCount:        courseCount,
		StartTime:          time.Now(),
	}
}

// Root handles GET /, the liveness probe the chatbot frontend pings.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"message": rootMessage})
}

// Handle reports what the relay is able to deliver through. Nothing is
// dialled here: a channel is either configured or not.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	switch {
	case !h.WhatsAppConfigured:
		deps["whatsapp"] = "not configured"
	case h.WhatsAppNumbers == 0:
		deps["whatsapp"] = "no numbers configured"
	default:
		deps["whatsapp"] = "configured"
	}

	if h.EmailConfigured {
		deps["email"] = "configured"
	} else {
		deps["email"] = "not configured"
	}

	status := "healthy"
	if deps["whatsapp"] != "configured" && deps["email"] != "configured" {
		status = "degraded"
	}

	render.JSON(w, r, HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
		Courses:      h.CourseCount,
	})
}
