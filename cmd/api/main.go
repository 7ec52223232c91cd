package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/insura-microsite/internal/infra/database"
	"github.com/xavierca1/insura-microsite/internal/infra/http/handlers"
	"github.com/xavierca1/insura-microsite/internal/infra/http/middleware"
	"github.com/xavierca1/insura-microsite/internal/infra/integration/lifecore"
	"github.com/xavierca1/insura-microsite/internal/infra/mail"
	"github.com/xavierca1/insura-microsite/internal/infra/queue"
	"github.com/xavierca1/insura-microsite/internal/usecase"
)

func main() {
	godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") != "production" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	log.Logger = logger

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("rabbitmq connection failed")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	regRepo := database.NewRegistrationRepository(db)

	// 2. Gateways and adapters
	gateway := lifecore.NewClient(os.Getenv("LIFECORE_URL"), os.Getenv("LIFECORE_API_KEY"), logger)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Worker (consumes paid registrations, drives the proposal pipeline)
	worker := queue.NewWorker(rabbitMQ.Ch, gateway, regRepo, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	submitUC := usecase.NewSubmitRegistrationUseCase(regRepo, gateway)
	confirmUC := usecase.NewConfirmPaymentUseCase(regRepo, producer)

	// 5. Handlers
	productHandler := handlers.NewProductHandler(gateway)
	addressHandler := handlers.NewAddressHandler(gateway)
	registrationHandler := handlers.NewRegistrationHandler(submitUC, regRepo, gateway)
	webhookHandler := handlers.NewWebhookHandler(confirmUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{os.Getenv("MICROSITE_ORIGIN"), "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/microsite", func(r chi.Router) {
		r.Get("/{slug}/products", productHandler.HandleList)
		r.Get("/{slug}/products/{code}", productHandler.HandleDetail)
		r.Post("/{slug}/compute-premium", productHandler.HandleComputePremium)
		r.Get("/{slug}/bank-branches", productHandler.HandleBranches)
		r.Get("/{slug}/product/{code}/question", productHandler.HandleQuestions)
		r.Post("/{slug}/product/{code}/generate-riplay", productHandler.HandleGenerateRiplay)

		r.Get("/address-by-zip", addressHandler.HandleZipLookup)
		r.Get("/province", addressHandler.HandleProvinces)
		r.Get("/province/{province}/city", addressHandler.HandleCities)
		r.Get("/province/{province}/city/{city}/district", addressHandler.HandleDistricts)
		r.Get("/province/{province}/city/{city}/district/{district}/subdistrict", addressHandler.HandleSubdistricts)
		r.Post("/address/resolve", addressHandler.HandleResolve)
	})

	r.Post("/registrations", registrationHandler.HandleSubmit)
	r.Get("/registrations/{id}", registrationHandler.HandleStatus)
	r.Get("/registrations/{id}/payment", registrationHandler.HandlePayment)
	r.Post("/webhook/payment", webhookHandler.Handle)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("insura microsite gateway running")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
