package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type LogConfig struct {
	Level  string // trace|debug|info|warn|error
	Format string // json|console
}

type WhatsAppConfig struct {
	APIURL       string
	APIToken     string
	Numbers      string // comma separated, parsed per request
	TemplateName string
	LanguageCode string
	Timeout      time.Duration
}

type MailConfig struct {
	Host           string
	Port           int
	SenderEmail    string
	SenderPassword string
	AdminEmail     string
}

// Enabled reports whether the email channel can run at all.
func (m MailConfig) Enabled() bool {
	return m.SenderEmail != "" && m.SenderPassword != ""
}

type Config struct {
	Port              string
	CORSOrigins       []string
	CourseCatalogFile string
	ParallelDispatch  bool

	Log      LogConfig
	WhatsApp WhatsAppConfig
	Mail     MailConfig
}

// Load reads a .env file when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from any key lookup. Tests pass a map.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	env := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:              env("PORT", "8000"),
		CORSOrigins:       splitList(env("CORS_ALLOWED_ORIGINS", "*")),
		CourseCatalogFile: env("COURSE_CATALOG_FILE", ""),
		Log: LogConfig{
			Level:  strings.ToLower(env("LOG_LEVEL", "info")),
			Format: strings.ToLower(env("LOG_FORMAT", "json")),
		},
		WhatsApp: WhatsAppConfig{
			APIURL:       env("ASKEVA_API_URL", ""),
			APIToken:     env("ASKEVA_API_TOKEN", ""),
			Numbers:      env("WHATSAPP_NOTIFICATION_NUMBER", ""),
			TemplateName: env("WHATSAPP_TEMPLATE_NAME", "utility_wtsp"),
			LanguageCode: env("WHATSAPP_LANGUAGE", "en"),
		},
		Mail: MailConfig{
			Host:        env("SMTP_HOST", "smtp.gmail.com"),
			SenderEmail: env("SENDER_EMAIL", ""),
			AdminEmail:  env("ADMIN_EMAIL", ""),
		},
	}

	// Passwords keep inner spaces: Gmail app passwords are often pasted grouped.
	if v, ok := lookup("SENDER_PASSWORD"); ok {
		cfg.Mail.SenderPassword = strings.TrimSpace(v)
	}

	port, err := strconv.Atoi(env("SMTP_PORT", "587"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("SMTP_PORT: invalid port %q", env("SMTP_PORT", ""))
	}
	cfg.Mail.Port = port

	timeout, err := time.ParseDuration(env("WHATSAPP_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("WHATSAPP_TIMEOUT: invalid duration %q", env("WHATSAPP_TIMEOUT", ""))
	}
	cfg.WhatsApp.Timeout = timeout

	parallel, err := strconv.ParseBool(env("DISPATCH_PARALLEL", "false"))
	if err != nil {
		return nil, fmt.Errorf("DISPATCH_PARALLEL: %w", err)
	}
	cfg.ParallelDispatch = parallel

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT: invalid port %q", cfg.Port)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
