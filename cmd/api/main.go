package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/edgeup/edgeup-api/internal/config"
	"github.com/edgeup/edgeup-api/internal/content"
	"github.com/edgeup/edgeup-api/internal/entity"
	"github.com/edgeup/edgeup-api/internal/infra/database"
	"github.com/edgeup/edgeup-api/internal/infra/http/handlers"
	"github.com/edgeup/edgeup-api/internal/infra/http/middleware"
	"github.com/edgeup/edgeup-api/internal/infra/mail"
	"github.com/edgeup/edgeup-api/internal/infra/queue"
	"github.com/edgeup/edgeup-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Connectivity probe is fail-open: the site keeps rendering from default
	// content when the store is unreachable.
	if err := database.Probe(context.Background(), db); err != nil {
		log.Printf("database probe failed, continuing with default content: %v", err)
	} else {
		log.Println("database connection successful")
	}

	// 1. Repositories
	submissionRepo := database.NewSubmissionRepository(db)
	contentRepo := database.NewContentRepository(db)
	testimonialRepo := database.NewTestimonialRepository(db)
	settingsRepo := database.NewSettingsRepository(db)

	// 2. Content snapshot, resolved once. A failed fetch degrades to the
	// compiled-in defaults for every page.
	resolver := content.NewResolver(loadContentSnapshot(contentRepo), func(page string, t entity.BlockType) {
		middleware.RecordContentFallback(page, string(t))
	})

	// 3. Queue + notification worker (optional)
	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface
	if cfg.QueueEnabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, enquiry notifications disabled: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

			if cfg.MailEnabled() {
				sender := mail.NewEmailSender(
					cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom,
				)
				worker := queue.NewWorker(rabbitMQ.Ch, sender)
				worker.OnSendError = func() { middleware.RecordNotificationError("send") }
				go worker.Start(queue.QueueName)
			} else {
				log.Println("smtp not configured, notification jobs will dead-letter")
			}
		}
	}

	// 4. UseCases
	submitUC := usecase.NewSubmitEnquiryUseCase(submissionRepo, settingsRepo, producer, cfg.NotifyRecipients)
	submitUC.OnNotifyError = func() { middleware.RecordNotificationError("publish") }

	// 5. Handlers
	enquiryHandler := handlers.NewEnquiryHandler(submitUC)
	contentHandler := handlers.NewContentHandler(resolver)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)
	submissionAdmin := handlers.NewSubmissionAdminHandler(submissionRepo)
	testimonialAdmin := handlers.NewTestimonialAdminHandler(testimonialRepo)
	settingsAdmin := handlers.NewSettingsAdminHandler(settingsRepo)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/content/{pageKey}", contentHandler.HandleGetPage)
	r.Post("/enquiries", enquiryHandler.Handle)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/submissions", submissionAdmin.HandleList)
		r.Patch("/submissions/{id}/read", submissionAdmin.HandleMarkRead)
		r.Patch("/submissions/{id}/status", submissionAdmin.HandleUpdateStatus)

		r.Get("/testimonials", testimonialAdmin.HandleList)
		r.Post("/testimonials", testimonialAdmin.HandleCreate)
		r.Put("/testimonials/{id}", testimonialAdmin.HandleUpdate)
		r.Delete("/testimonials/{id}", testimonialAdmin.HandleDelete)

		r.Get("/settings", settingsAdmin.HandleGet)
		r.Put("/settings", settingsAdmin.HandleUpdate)
	})

	log.Printf("edgeup site api listening on %s", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		log.Fatal(err)
	}
}

func loadContentSnapshot(repo entity.ContentRepositoryInterface) []entity.ContentBlock {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	blocks, err := repo.FetchAll(ctx)
	if err != nil {
		log.Printf("content fetch failed, using defaults: %v", err)
		return nil
	}

	log.Printf("loaded %d authored content blocks", len(blocks))
	return blocks
}
