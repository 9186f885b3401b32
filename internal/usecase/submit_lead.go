package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/urbancode/chatbot-relay/internal/entity"
	"github.com/urbancode/chatbot-relay/internal/infra/logging"
)

const (
	emailAuthFailedDetail = "Email authentication failed. Please check your Gmail App Password."

	submittedWithEmailMsg = "Form submitted successfully! Email sent and WhatsApp notification attempted."
	submittedMsg          = "Form submitted successfully! WhatsApp notification attempted."
)

type SubmitLeadConfig struct {
	AdminEmail      string
	WhatsAppNumbers string
	// Parallel fans each channel out concurrently. Outcome order is kept.
	Parallel bool
}

type SubmitLeadUseCase struct {
	EmailService    EmailService
	WhatsAppService WhatsAppService
	Courses         CourseLinker
	Config          SubmitLeadConfig
	Logger          zerolog.Logger
}

// NewSubmitLeadUseCase wires the relay. A nil emailService disables the
// email channel entirely.
func NewSubmitLeadUseCase(
	emailService EmailService,
	whatsAppService WhatsAppService,
	courses CourseLinker,
	cfg SubmitLeadConfig,
	logger zerolog.Logger,
) *SubmitLeadUseCase {
	if courses == nil {
		courses = DefaultCourseCatalog()
	}
	return &SubmitLeadUseCase{
		EmailService:    emailService,
		WhatsAppService: whatsAppService,
		Courses:         courses,
		Config:          cfg,
		Logger:          logger,
	}
}

// Execute validates the submission, runs the email loop then the WhatsApp
// loop, and aggregates. Delivery problems never surface as an error.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	if validationErrors := ValidateSubmitLeadInput(input); len(validationErrors) > 0 {
		fields := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			fields = append(fields, e.Error())
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed: " + strings.Join(fields, ", "),
			Fields:  validationErrors,
		}
	}

	lead := entity.NewLead(*input.Name, *input.Email, *input.Course, *input.Phone)
	log := uc.Logger.With().Str("submission_id", lead.ID).Logger()

	log.Info().
		Str("course", lead.Course).
		Bool("email_valid", IsValidEmail(lead.Email)).
		Msg("lead received")

	output := &SubmitLeadOutput{
		SubmissionID: lead.ID,
		Status:       string(entity.StatusSuccess),
		Message:      submittedMsg,
	}

	if uc.EmailService != nil {
		email := uc.sendEmails(ctx, log, lead)
		output.Email = &email
		output.Message = submittedWithEmailMsg
		output.EmailStatus = EmailStatus(email)
		output.EmailDetail = email.Detail
		output.EmailResults = toDeliveryResults(email.Outcomes)
	}

	whatsApp := uc.sendWhatsApp(ctx, log, lead)
	output.WhatsApp = whatsApp
	output.WhatsAppStatus = string(whatsApp.Status)
	output.WhatsAppDetail = whatsApp.Detail
	output.WhatsAppResults = toDeliveryResults(whatsApp.Outcomes)

	log.Info().
		Str("email_status", output.EmailStatus).
		Str("whatsapp_status", output.WhatsAppStatus).
		Msg("lead relayed")

	return output, nil
}

func (uc *SubmitLeadUseCase) sendEmails(ctx context.Context, log zerolog.Logger, lead entity.Lead) entity.AggregateResult {
	courseLink := uc.Courses.Link(lead.Course)
	recipients := EmailRecipients(lead, uc.Config.AdminEmail)

	if !IsValidEmail(lead.Email) {
		log.Warn().Msg("invalid student email, notifying admin only")
	}

	outcomes := dispatch(recipients, uc.Config.Parallel, func(r entity.Recipient) entity.DeliveryOutcome {
		dest := entity.Destination{Address: r.Address, Channel: entity.ChannelEmail}

		if err := uc.EmailService.SendLeadEmail(ctx, r, lead, courseLink); err != nil {
			log.Error().Err(err).
				Str("channel", string(dest.Channel)).
				Str("role", string(r.Role)).
				Str("to", uc.redact(dest.Address)).
				Msg("email delivery failed")
			return entity.Failed(dest, emailFailureDetail(err))
		}

		log.Info().
			Str("channel", string(dest.Channel)).
			Str("role", string(r.Role)).
			Str("to", uc.redact(dest.Address)).
			Msg("email sent")
		return entity.Succeeded(dest, "")
	})

	return Aggregate(outcomes, noEmailRecipientsDetail)
}

func (uc *SubmitLeadUseCase) sendWhatsApp(ctx context.Context, log zerolog.Logger, lead entity.Lead) entity.AggregateResult {
	numbers := ParseWhatsAppNumbers(uc.Config.WhatsAppNumbers)
	if len(numbers) == 0 || uc.WhatsAppService == nil {
		log.Warn().Msg("no WhatsApp numbers configured, skipping")
		return Aggregate(nil, noWhatsAppNumbersDetail)
	}

	outcomes := dispatch(numbers, uc.Config.Parallel, func(number string) entity.DeliveryOutcome {
		to := NormalizePhone(number)
		outcome := uc.WhatsAppService.SendLeadTemplate(ctx, to, lead)

		event := log.Info()
		if !outcome.OK() {
			event = log.Warn()
		}
		event.Str("channel", string(entity.ChannelWhatsApp)).
			Str("to", uc.redact(to)).
			Str("status", string(outcome.Status)).
			Str("detail", outcome.Detail).
			Msg("whatsapp attempt finished")

		return outcome
	})

	return Aggregate(outcomes, noWhatsAppNumbersDetail)
}

func (uc *SubmitLeadUseCase) redact(s string) string {
	return logging.Redact(s, uc.Logger.GetLevel() <= zerolog.DebugLevel)
}

func emailFailureDetail(err error) string {
	switch {
	case errors.Is(err, entity.ErrAuthentication):
		return emailAuthFailedDetail
	case errors.Is(err, entity.ErrTransport):
		return "Email sending failed: " + err.Error()
	default:
		return "Unexpected error: " + err.Error()
	}
}

// dispatch runs send once per item and returns outcomes in item order.
func dispatch[T any](items []T, parallel bool, send func(T) entity.DeliveryOutcome) []entity.DeliveryOutcome {
	outcomes := make([]entity.DeliveryOutcome, len(items))

	if !parallel {
		for i, item := range items {
			outcomes[i] = send(item)
		}
		return outcomes
	}

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			outcomes[i] = send(item)
		}(i, item)
	}
	wg.Wait()

	return outcomes
}
