package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

const (
	DefaultTemplateName = "utility_wtsp"
	DefaultLanguageCode = "en"
	DefaultTimeout      = 30 * time.Second

	sessionNotOpenedMarker = "Session is not opened"
	sessionNotOpenedDetail = "WhatsApp session not opened. Please login to AskEva dashboard and activate your WhatsApp session."
	noMessageIDDetail      = "API returned 200 but no message ID"
	unknownMessageID       = "Unknown"
)

// Client talks to the AskEva WhatsApp business API.
type Client struct {
	baseURL      string
	token        string
	templateName string
	languageCode string
	http         *http.Client
}

type Option func(*Client)

func WithTemplate(name, languageCode string) Option {
	return func(c *Client) {
		if name != "" {
			c.templateName = name
		}
		if languageCode != "" {
			c.languageCode = languageCode
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:      baseURL,
		token:        token,
		templateName: DefaultTemplateName,
		languageCode: DefaultLanguageCode,
		http: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.baseURL != "" && c.token != ""
}

// BuildLeadMessage binds the lead to the template. The template reads its
// parameters by position: name, email, phone, course.
func (c *Client) BuildLeadMessage(to string, lead entity.Lead) TemplateMessage {
	return TemplateMessage{
		To:   to,
		Type: "template",
		Template: Template{
			Name:     c.templateName,
			Language: Language{Code: c.languageCode},
			Components: []Component{
				{
					Type:       "body",
					Parameters: textParameters(lead.Name, lead.Email, lead.Phone, lead.Course),
				},
			},
		},
	}
}

// SendLeadTemplate makes one delivery attempt. Every failure mode is folded
// into the returned outcome.
func (c *Client) SendLeadTemplate(ctx context.Context, to string, lead entity.Lead) entity.DeliveryOutcome {
	dest := entity.Destination{Address: to, Channel: entity.ChannelWhatsApp}

	endpoint, err := c.endpoint()
	if err != nil {
		return entity.Failed(dest, err.Error())
	}

	body, err := json.Marshal(c.BuildLeadMessage(to, lead))
	if err != nil {
		return entity.Failed(dest, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return entity.Failed(dest, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.Failed(dest, redactToken(err.Error(), c.token))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Failed(dest, err.Error())
	}

	return interpretResponse(dest, resp.StatusCode, respBody)
}

func interpretResponse(dest entity.Destination, statusCode int, body []byte) entity.DeliveryOutcome {
	switch {
	case statusCode == http.StatusOK:
		var result SendMessageResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return entity.Failed(dest, err.Error())
		}
		if len(result.Messages) == 0 {
			return entity.Warned(dest, noMessageIDDetail)
		}
		id := result.Messages[0].ID
		if id == "" {
			id = unknownMessageID
		}
		return entity.Succeeded(dest, id)

	case statusCode == http.StatusBadRequest && strings.Contains(string(body), sessionNotOpenedMarker):
		return entity.Failed(dest, sessionNotOpenedDetail)

	default:
		return entity.Failed(dest, fmt.Sprintf("API error: %d - %s", statusCode, string(body)))
	}
}

func (c *Client) endpoint() (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("whatsapp api url not configured")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid whatsapp api url: %w", err)
	}

	q := u.Query()
	q.Set("token", c.token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func textParameters(values ...string) []Parameter {
	params := make([]Parameter, 0, len(values))
	for _, v := range values {
		params = append(params, Parameter{Type: "text", Text: v})
	}
	return params
}

// redactToken keeps the API token out of error details. *url.Error echoes
// the request URL, query string included.
func redactToken(msg, token string) string {
	if token == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, url.QueryEscape(token), "***")
	return strings.ReplaceAll(msg, token, "***")
}
