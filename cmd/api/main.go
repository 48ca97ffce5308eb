package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prospectdesk/prospector/internal/config"
	"github.com/prospectdesk/prospector/internal/infra/calendar"
	"github.com/prospectdesk/prospector/internal/infra/http/handlers"
	"github.com/prospectdesk/prospector/internal/infra/http/middleware"
	"github.com/prospectdesk/prospector/internal/infra/mail"
	"github.com/prospectdesk/prospector/internal/infra/memory"
	"github.com/prospectdesk/prospector/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Store
	store := memory.NewContactStore()

	// 2. Adapters
	var sender usecase.EmailSender
	if cfg.SMTP.Configured() {
		sender = mail.NewEmailSender(
			cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From,
		)
	}

	// 3. UseCases
	importUC := usecase.NewImportContactsUseCase(store)
	updateUC := usecase.NewUpdateFieldUseCase(store)
	attemptsUC := usecase.NewIncrementAttemptsUseCase(store)
	emailsUC := usecase.NewGenerateEmailsUseCase(store)
	campaignUC := usecase.NewSendCampaignUseCase(store, sender)
	analyticsUC := usecase.NewAnalyticsUseCase(store)

	// 4. Handlers
	contactHandler := handlers.NewContactHandler(importUC, updateUC, attemptsUC, store)
	exportHandler := handlers.NewExportHandler(store, emailsUC, cfg.Templates)
	templateHandler := handlers.NewTemplateHandler(store, campaignUC, cfg.Templates)
	calendarHandler := handlers.NewCalendarHandler(store, calendar.InviteOptions{
		Timezone:            cfg.Calendar.Timezone,
		DurationMinutes:     cfg.Calendar.DurationMinutes,
		OrganizerName:       cfg.Calendar.OrganizerName,
		OrganizerEmail:      cfg.Calendar.OrganizerEmail,
		Location:            cfg.Calendar.Location,
		DescriptionTemplate: cfg.Calendar.DescriptionTemplate,
	})
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUC)
	healthHandler := handlers.NewHealthHandler(store, cfg.SMTP)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Post("/contacts/import", contactHandler.HandleImport)
	r.Get("/contacts", contactHandler.HandleList)
	r.Get("/contacts/{id}", contactHandler.HandleGet)
	r.Patch("/contacts/{id}", contactHandler.HandleUpdateField)
	r.Post("/contacts/attempts", contactHandler.HandleIncrementAttempts)

	r.Get("/export/full", exportHandler.HandleExportFull)
	r.Get("/export/contacts", exportHandler.HandleExportContacts)
	r.Post("/export/emails", exportHandler.HandleExportEmails)

	r.Get("/templates/defaults", templateHandler.HandleDefaults)
	r.Post("/templates/preview", templateHandler.HandlePreview)
	r.Post("/campaign/send", templateHandler.HandleSendCampaign)

	r.Get("/calendar/invites", calendarHandler.HandleBulk)
	r.Get("/calendar/invites/{id}", calendarHandler.HandleInvite)

	r.Get("/analytics", analyticsHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("prospector API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
