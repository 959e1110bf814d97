package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xavierca1/crm-records/internal/infra/database"
	"github.com/xavierca1/crm-records/internal/infra/http/handlers"
	"github.com/xavierca1/crm-records/internal/infra/http/middleware"
	"github.com/xavierca1/crm-records/internal/infra/mail"
	"github.com/xavierca1/crm-records/internal/infra/memory"
	"github.com/xavierca1/crm-records/internal/infra/queue"
	"github.com/xavierca1/crm-records/internal/usecase"
)

func main() {
	godotenv.Load()

	log, err := newLog("crm-records")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log.Desugar())

	// 1. Storage
	var (
		db          *sql.DB
		accountRepo usecase.AccountRepositoryInterface
		contactRepo usecase.ContactRepositoryInterface
		oppRepo     usecase.OpportunityRepositoryInterface
		leadRepo    usecase.LeadRepositoryInterface
		caseRepo    usecase.CaseRepositoryInterface
	)

	if os.Getenv("STORAGE") == "memory" {
		store := memory.NewStore()
		accountRepo = store.Accounts()
		contactRepo = store.Contacts()
		oppRepo = store.Opportunities()
		leadRepo = store.Leads()
		caseRepo = store.Cases()
		log.Infow("startup", "storage", "memory")
	} else {
		db, err = database.NewDBConnection(os.Getenv("DATABASE_URL"))
		if err != nil {
			log.Fatalw("connecting to database", "err", err)
		}
		defer db.Close()

		if err := database.Migrate(context.Background(), db); err != nil {
			log.Fatalw("updating database schema", "err", err)
		}

		accountRepo = database.NewAccountRepository(db)
		contactRepo = database.NewContactRepository(db)
		oppRepo = database.NewOpportunityRepository(db)
		leadRepo = database.NewLeadRepository(db)
		caseRepo = database.NewCaseRepository(db)
		log.Infow("startup", "storage", "postgres")
	}

	// 2. Record events (optional: only when a broker is configured)
	var (
		rabbitConn *amqp.Connection
		events     usecase.RecordEventPublisherInterface
	)

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"), host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatalw("connecting to RabbitMQ", "err", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch, log)

		var notifier queue.Notifier
		if mailHost := os.Getenv("MAIL_HOST"); mailHost != "" {
			mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
			if mailPort == 0 {
				mailPort = 587
			}
			notifier = mail.NewEmailSender(
				mailHost, mailPort,
				os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
				os.Getenv("MAIL_FROM"), os.Getenv("MAIL_TO"),
			)
		}

		worker := queue.NewWorker(rabbitMQ.Ch, notifier, log)
		go worker.Start(queue.QueueName)
	}

	// 3. Use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, events)
	contactUC := usecase.NewContactUseCase(contactRepo, accountUC, events)
	oppUC := usecase.NewOpportunityUseCase(oppRepo, accountRepo, events)
	leadUC := usecase.NewLeadUseCase(leadRepo, events)
	caseUC := usecase.NewCaseUseCase(caseRepo, accountRepo, events)

	// 4. Handlers
	accountHandler := handlers.NewAccountHandler(accountUC)
	contactHandler := handlers.NewContactHandler(contactUC)
	oppHandler := handlers.NewOpportunityHandler(oppUC)
	leadHandler := handlers.NewLeadHandler(leadUC)
	caseHandler := handlers.NewCaseHandler(caseUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/accounts", accountHandler.HandleCreate)
	r.Post("/accounts/demo", accountHandler.HandleInsertDemo)
	r.Put("/accounts/{id}", accountHandler.HandleUpdateFields)
	r.Post("/accounts/upsert", accountHandler.HandleUpsert)

	r.Post("/contacts", contactHandler.HandleInsert)
	r.Put("/contacts/{id}/last-name", contactHandler.HandleUpdateLastName)
	r.Post("/contacts/upsert-with-accounts", contactHandler.HandleUpsertWithAccounts)

	r.Put("/opportunities/{id}/stage", oppHandler.HandleUpdateStage)
	r.Post("/opportunities/upsert", oppHandler.HandleUpsertList)
	r.Post("/opportunities/upsert-for-account", oppHandler.HandleUpsertForAccount)

	r.Get("/leads", leadHandler.HandleFindByLastNames)
	r.Post("/leads/demo-cycle", leadHandler.HandleDemoCycle)
	r.Post("/cases/demo-cycle", caseHandler.HandleDemoCycle)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infow("server listening", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalw("server", "err", err)
	}
}

func newLog(serviceName string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
