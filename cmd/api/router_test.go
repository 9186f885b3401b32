package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/urbancode/chatbot-relay/internal/infra/http/handlers"
	"github.com/urbancode/chatbot-relay/internal/usecase"
)

func testRouter() http.Handler {
	uc := usecase.NewSubmitLeadUseCase(nil, nil, nil, usecase.SubmitLeadConfig{}, zerolog.Nop())
	return newRouter(
		[]string{"*"},
		handlers.NewLeadHandler(uc, zerolog.Nop()),
		handlers.NewHealthHandler(false, 0, false, 11),
	)
}

func TestRouterRoutes(t *testing.T) {
	r := testRouter()

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/submit-details", `{"name":"A","email":"a@b.co","course":"Kids","phone":"9876543210"}`, http.StatusOK},
		{http.MethodPost, "/submit-details", `{}`, http.StatusUnprocessableEntity},
		{http.MethodGet, "/submit-details", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/submit-details", nil)
	req.Header.Set("Origin", "https://urbancode.in")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}
