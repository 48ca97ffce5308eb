package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Configured reports whether outbound mail can be attempted at all.
func (c SMTPConfig) Configured() bool {
	return c.Host != ""
}

type CalendarConfig struct {
	Timezone            string `yaml:"timezone"`
	DurationMinutes     int    `yaml:"duration_minutes"`
	OrganizerName       string `yaml:"organizer_name"`
	OrganizerEmail      string `yaml:"organizer_email"`
	Location            string `yaml:"location"`
	DescriptionTemplate string `yaml:"description_template"`
}

type TemplatesConfig struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type Config struct {
	Port       string
	CORSOrigin string
	SMTP       SMTPConfig

	Calendar  CalendarConfig  `yaml:"calendar"`
	Templates TemplatesConfig `yaml:"templates"`
}

// Load reads server settings from the environment and, when CONFIG_PATH
// points at a YAML file, session defaults (calendar settings and starter
// templates) from there. Everything has a working default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOr("PORT", "8080"),
		CORSOrigin: envOr("CORS_ORIGIN", "http://localhost:5173"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     envIntOr("MAIL_PORT", 587),
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     envOr("MAIL_FROM", os.Getenv("MAIL_USER")),
		},
		Calendar: CalendarConfig{
			Timezone:            "America/New_York",
			DurationMinutes:     30,
			OrganizerName:       "Your Name",
			OrganizerEmail:      "you@example.com",
			Location:            "Phone",
			DescriptionTemplate: "Meeting with {name} ({company}).\n\nNotes: {notes}\n",
		},
		Templates: TemplatesConfig{
			Subject: "Quick intro – {name}",
			Body: "Hi {first_name},\n\n" +
				"Great speaking with you. Confirming our meeting on {meeting_date} at {meeting_time}.\n\n" +
				"If that time changes, just reply to this email.\n\n" +
				"Best,\nYour Name",
		},
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
