package mail

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/textproto"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/urbancode/chatbot-relay/internal/entity"
)

//go:embed templates
var templateFS embed.FS

// Dialer is the part of gomail.Dialer we use. DialAndSend opens a session,
// upgrades with STARTTLS, authenticates, sends and closes.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type templates struct {
	html *htmltemplate.Template
	text *template.Template
}

var leadTemplates = mustParseTemplates()

func mustParseTemplates() *templates {
	return &templates{
		html: htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html")),
		text: template.Must(template.ParseFS(templateFS, "templates/*.txt")),
	}
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	s := &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     user,
		renders:  leadTemplates,
	}
	s.dialer = func() Dialer {
		return gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	}
	return s
}

// WithDialer swaps the SMTP session factory, mostly for tests.
func (s *EmailSender) WithDialer(fn func() Dialer) *EmailSender {
	s.dialer = fn
	return s
}

func (s *EmailSender) SendLeadEmail(ctx context.Context, to entity.Recipient, lead entity.Lead, courseLink string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := LeadEmailData{
		Name:       lead.Name,
		Email:      lead.Email,
		Course:     lead.Course,
		Phone:      lead.Phone,
		CourseLink: courseLink,
	}

	subject, text, html, err := s.render(to.Role, data)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to.Address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	if err := s.dialer().DialAndSend(m); err != nil {
		return classifySMTPError(err)
	}

	return nil
}

func (s *EmailSender) render(role entity.RecipientRole, data LeadEmailData) (subject, text, html string, err error) {
	page := "student"
	subject = fmt.Sprintf("Thank you for your enquiry about %s at Urbancode!", data.Course)
	if role == entity.RoleAdmin {
		page = "admin"
		subject = fmt.Sprintf("[Lead] New Enquiry for %s - %s", data.Course, data.Name)
	}

	var textBody bytes.Buffer
	if err := s.renders.text.ExecuteTemplate(&textBody, page+".txt", data); err != nil {
		return "", "", "", fmt.Errorf("render %s.txt: %w", page, err)
	}

	var htmlBody bytes.Buffer
	if err := s.renders.html.ExecuteTemplate(&htmlBody, page+".html", data); err != nil {
		return "", "", "", fmt.Errorf("render %s.html: %w", page, err)
	}

	return subject, textBody.String(), htmlBody.String(), nil
}

// classifySMTPError tags everything coming out of the SMTP session as a
// transport failure, except replies that reject the credentials.
func classifySMTPError(err error) error {
	var reply *textproto.Error
	if errors.As(err, &reply) {
		switch reply.Code {
		case 530, 534, 535:
			return fmt.Errorf("%w: %v", entity.ErrAuthentication, err)
		}
	}
	return fmt.Errorf("%w: %v", entity.ErrTransport, err)
}
