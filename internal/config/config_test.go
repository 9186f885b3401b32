package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "utility_wtsp", cfg.WhatsApp.TemplateName)
	assert.Equal(t, "en", cfg.WhatsApp.LanguageCode)
	assert.Equal(t, 30*time.Second, cfg.WhatsApp.Timeout)
	assert.False(t, cfg.ParallelDispatch)
	assert.False(t, cfg.Mail.Enabled())
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":                         "9090",
		"ASKEVA_API_URL":               "https://backend.askeva.io/v1/message/send-message",
		"ASKEVA_API_TOKEN":             "tok",
		"WHATSAPP_NOTIFICATION_NUMBER": "9876543210, +91-9123456789",
		"WHATSAPP_TIMEOUT":             "5s",
		"SENDER_EMAIL":                 "bot@urbancode.in",
		"SENDER_PASSWORD":              " abcd efgh ijkl mnop ",
		"ADMIN_EMAIL":                  "admin@urbancode.in",
		"SMTP_PORT":                    "465",
		"LOG_LEVEL":                    "DEBUG",
		"LOG_FORMAT":                   "console",
		"DISPATCH_PARALLEL":            "true",
		"CORS_ALLOWED_ORIGINS":         "https://urbancode.in, https://www.urbancode.in",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "tok", cfg.WhatsApp.APIToken)
	assert.Equal(t, "9876543210, +91-9123456789", cfg.WhatsApp.Numbers)
	assert.Equal(t, 5*time.Second, cfg.WhatsApp.Timeout)
	assert.Equal(t, "abcd efgh ijkl mnop", cfg.Mail.SenderPassword)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.ParallelDispatch)
	assert.Equal(t, []string{"https://urbancode.in", "https://www.urbancode.in"}, cfg.CORSOrigins)
}

func TestFromLookupInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SMTP_PORT":         "abc",
		"WHATSAPP_TIMEOUT":  "soon",
		"DISPATCH_PARALLEL": "maybe",
		"PORT":              "http",
	}

	for key, value := range cases {
		_, err := FromLookup(lookupFrom(map[string]string{key: value}))
		assert.Error(t, err, "key %s", key)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADMIN_EMAIL=dotenv@urbancode.in\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("ADMIN_EMAIL")
	})

	os.Unsetenv("ADMIN_EMAIL")
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "dotenv@urbancode.in", cfg.Mail.AdminEmail)
}
