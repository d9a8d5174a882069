package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (Logger, *test.Hook) {
	t.Helper()

	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	return &logger{entry: logrus.NewEntry(base)}, hook
}

func TestWithFields_Development(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	l, hook := newTestLogger(t)

	l.WithFields(Fields{
		"month":             "2024-05",
		"trainee_id":        3,
		"items":             2,
		"code":              "SRV_002",
		"page":              "schedule",
		"imported_entries":  10,
		"trainees_affected": 4,
		"user_agent":        "curl/8.0",
		"remote_addr":       "127.0.0.1:5000",
	}).Info("disponibilidade salva")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	for _, key := range []string{"month", "trainee_id", "items", "code", "page", "imported_entries", "trainees_affected"} {
		assert.Contains(t, entry.Data, key)
	}
	assert.NotContains(t, entry.Data, "user_agent")
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestWithField_Development(t *testing.T) {
	t.Setenv("APP_ENV", "")
	l, hook := newTestLogger(t)

	l.WithField("cron", "*/10 * * * *").WithField("user_agent", "curl/8.0").Info("agendador iniciado")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "*/10 * * * *", entry.Data["cron"])
	assert.NotContains(t, entry.Data, "user_agent")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, hook := newTestLogger(t)

	l.WithFields(Fields{"user_agent": "curl/8.0", "sent": 2}).Info("requisição")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "curl/8.0", entry.Data["user_agent"])
	assert.Equal(t, 2, entry.Data["sent"])
}

// Todo campo registrado pelos handlers e pelo keep-alive deve sobreviver ao filtro
func TestDevFields_CoverApplicationKeys(t *testing.T) {
	keys := []string{
		"month", "redirect_to", "api_url", "code", "page", "trainee_id", "items",
		"sent", "imported", "errors", "days", "imported_entries", "trainees_affected",
		"cron", "cron_schedule", "enabled", "address", "timeout", "stack_trace",
	}
	for _, key := range keys {
		assert.True(t, devFields[key], key)
	}
}
