package handlers

import (
	"net/http"

	"github.com/go-chi/render"
)

type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type validationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeValidationError(w http.ResponseWriter, r *http.Request, issues []ValidationIssue) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, validationErrorResponse{Detail: issues})
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: code, Message: message})
}
