package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"

	"github.com/urbancode/chatbot-relay/internal/infra/http/middleware"
	"github.com/urbancode/chatbot-relay/internal/usecase"
)

type LeadSubmitter interface {
	Execute(ctx context.Context, input usecase.SubmitLeadInput) (*usecase.SubmitLeadOutput, error)
}

type LeadHandler struct {
	submitLead LeadSubmitter
	logger     zerolog.Logger
}

func NewLeadHandler(submitLead LeadSubmitter, logger zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		submitLead: submitLead,
		logger:     logger,
	}
}

// SubmitDetails handles POST /submit-details. Once the body is well formed
// the answer is 200, whatever happened downstream.
func (h *LeadHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		h.logger.Warn().Err(err).Msg("rejecting malformed submission")
		writeValidationError(w, r, []ValidationIssue{decodeIssue(err)})
		return
	}

	output, err := h.submitLead.Execute(r.Context(), input)
	if err != nil {
		var de *usecase.DomainError
		if errors.As(err, &de) {
			issues := make([]ValidationIssue, 0, len(de.Fields))
			for _, f := range de.Fields {
				issues = append(issues, ValidationIssue{
					Loc:  []string{"body", f.Field},
					Msg:  f.Message,
					Type: "value_error.missing",
				})
			}
			writeValidationError(w, r, issues)
			return
		}

		h.logger.Error().Err(err).Msg("submission failed")
		writeErrorResponse(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to process submission")
		return
	}

	middleware.RecordSubmission()
	if output.Email != nil {
		for _, o := range output.Email.Outcomes {
			middleware.RecordDelivery(string(o.Destination.Channel), string(o.Status))
		}
	}
	for _, o := range output.WhatsApp.Outcomes {
		middleware.RecordDelivery(string(o.Destination.Channel), string(o.Status))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, output)
}

func decodeIssue(err error) ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ValidationIssue{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "str type expected",
			Type: "type_error.str",
		}
	}
	return ValidationIssue{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error.jsondecode",
	}
}
