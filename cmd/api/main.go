package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/loanpulse/internal/infra/database"
	"github.com/xavierca1/loanpulse/internal/infra/http/handlers"
	"github.com/xavierca1/loanpulse/internal/infra/http/middleware"
	"github.com/xavierca1/loanpulse/internal/infra/integration/ocrspace"
	"github.com/xavierca1/loanpulse/internal/infra/mail"
	"github.com/xavierca1/loanpulse/internal/infra/queue"
	"github.com/xavierca1/loanpulse/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	scenarioRepo := database.NewScenarioRepository(db)
	feedbackRepo := database.NewFeedbackRepository(db)
	userRepo := database.NewUserRepository(db)

	// Integrations
	ocrClient := ocrspace.NewClient(os.Getenv("OCR_SPACE_API_KEY"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@loanpulse.app"),
	)

	// Usecases
	analyzeUC := usecase.NewAnalyzeLeadsUseCase(leadRepo, scenarioRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, userRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	attachScanUC := usecase.NewAttachScanResultsUseCase(leadRepo, scenarioRepo)
	submitFeedbackUC := usecase.NewSubmitFeedbackUseCase(feedbackRepo, leadRepo)

	// Worker drains the scan queue in the background.
	worker := queue.NewWorker(rabbitMQ.Ch, ocrClient, attachScanUC, mailSender)
	go worker.Start(queue.QueueName)

	// Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, createLeadUC, updateLeadUC, analyzeUC)
	scenarioHandler := handlers.NewScenarioHandler(scenarioRepo)
	feedbackHandler := handlers.NewFeedbackHandler(submitFeedbackUC, feedbackRepo)
	scanHandler := handlers.NewScanHandler(producer, ocrClient, envOr("UPLOAD_DIR", "uploads"))
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", leadHandler.HandleCreate)
		r.Get("/", leadHandler.HandleList)
		r.Get("/analyze", leadHandler.HandleAnalyze)
		r.Get("/{id}", leadHandler.HandleGet)
		r.Put("/{id}", leadHandler.HandleUpdate)
		r.Delete("/{id}", leadHandler.HandleDelete)
		r.Get("/{id}/scenarios", scenarioHandler.HandleListByLead)
		r.Post("/{id}/feedbacks", feedbackHandler.HandleCreate)
		r.Get("/{id}/feedbacks", feedbackHandler.HandleListByLead)
	})
	r.Get("/scenarios/{id}", scenarioHandler.HandleGet)
	r.Delete("/scenarios/{id}", scenarioHandler.HandleDelete)
	r.Post("/scans", scanHandler.HandleUpload)
	r.Post("/test_ocr", scanHandler.HandleTestOCR)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("LoanPulse API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
