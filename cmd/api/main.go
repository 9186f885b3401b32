package main

import (
	"net/http"
	"os"

	"github.com/urbancode/chatbot-relay/internal/config"
	"github.com/urbancode/chatbot-relay/internal/infra/http/handlers"
	"github.com/urbancode/chatbot-relay/internal/infra/integration/whatsapp"
	"github.com/urbancode/chatbot-relay/internal/infra/logging"
	"github.com/urbancode/chatbot-relay/internal/infra/mail"
	"github.com/urbancode/chatbot-relay/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(config.LogConfig{})
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New(cfg.Log)

	// 1. Course catalog
	courses, err := usecase.LoadCourseCatalog(cfg.CourseCatalogFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CourseCatalogFile).Msg("loading course catalog")
	}

	// 2. Adapters
	waClient := whatsapp.NewClient(
		cfg.WhatsApp.APIURL, cfg.WhatsApp.APIToken,
		whatsapp.WithTemplate(cfg.WhatsApp.TemplateName, cfg.WhatsApp.LanguageCode),
		whatsapp.WithTimeout(cfg.WhatsApp.Timeout),
	)
	if !waClient.Configured() {
		logger.Warn().Msg("ASKEVA_API_URL or ASKEVA_API_TOKEN missing, WhatsApp attempts will fail")
	}

	var emailService usecase.EmailService
	if cfg.Mail.Enabled() {
		emailService = mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.SenderEmail, cfg.Mail.SenderPassword,
		)
	} else {
		logger.Warn().Msg("SENDER_EMAIL or SENDER_PASSWORD missing, email channel disabled")
	}

	// 3. Use case
	submitLeadUC := usecase.NewSubmitLeadUseCase(
		emailService,
		waClient,
		courses,
		usecase.SubmitLeadConfig{
			AdminEmail:      cfg.Mail.AdminEmail,
			WhatsAppNumbers: cfg.WhatsApp.Numbers,
			Parallel:        cfg.ParallelDispatch,
		},
		logger,
	)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC, logger)
	healthHandler := handlers.NewHealthHandler(
		waClient.Configured(),
		len(usecase.ParseWhatsAppNumbers(cfg.WhatsApp.Numbers)),
		cfg.Mail.Enabled(),
		courses.Len(),
	)

	// 5. Router
	r := newRouter(cfg.CORSOrigins, leadHandler, healthHandler)

	logger.Info().
		Str("addr", cfg.Addr()).
		Bool("email_enabled", cfg.Mail.Enabled()).
		Bool("parallel_dispatch", cfg.ParallelDispatch).
		Int("courses", courses.Len()).
		Msg("lead relay listening")

	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
