package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.SMTP.Configured())
	assert.Equal(t, "America/New_York", cfg.Calendar.Timezone)
	assert.Equal(t, 30, cfg.Calendar.DurationMinutes)
	assert.Contains(t, cfg.Templates.Subject, "{name}")
	assert.Contains(t, cfg.Templates.Body, "{meeting_date}")
}

func TestLoadReadsEnvAndYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prospector.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(
		"calendar:\n"+
			"  timezone: America/Chicago\n"+
			"  duration_minutes: 45\n"+
			"  organizer_name: Pat Seller\n"+
			"templates:\n"+
			"  subject: \"Hello {first_name}\"\n"), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9000")
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_USER", "pat@example.com")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "pat@example.com", cfg.SMTP.From)
	assert.Equal(t, "America/Chicago", cfg.Calendar.Timezone)
	assert.Equal(t, 45, cfg.Calendar.DurationMinutes)
	assert.Equal(t, "Hello {first_name}", cfg.Templates.Subject)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "Phone", cfg.Calendar.Location)
}

func TestLoadFailsOnBrokenConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("calendar: [not a map"), 0o644))

	t.Setenv("CONFIG_PATH", path)
	_, err := Load()
	assert.Error(t, err)
}
