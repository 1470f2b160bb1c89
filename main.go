package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jdservices/config"
	"jdservices/database"
	leadsRepo "jdservices/database/repository/leads"
	"jdservices/handlers"
	"jdservices/middleware"
	"jdservices/routes"
	"jdservices/services/lookup"
	"jdservices/services/notification"
	"jdservices/services/search"
	"jdservices/services/sheets"
	"jdservices/services/wizard"
	"jdservices/utils"
	"jdservices/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	leadRepo := leadsRepo.NewMongoLeadRepo()

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	sessionStore := wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	searchTimeout := time.Duration(config.AppConfig.SearchTimeoutSeconds) * time.Second
	searchClient := search.NewClient(config.AppConfig.SerpAPIKey, searchTimeout)
	searchRegistry := search.NewRegistry(searchClient.SearchProducts, search.DefaultOptions())

	sink, err := sheets.NewSheetsSink(context.Background(), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize spreadsheet sink: %v", err)
	}

	asynqClient := asynq.NewClient(utils.AsynqRedisOpt())
	notifier := notification.NewQueueNotifier(asynqClient)
	sender := notification.NewResendSender()
	worker.InitNotifyWorker(sender)

	sessionService := &wizard.DefaultSessionService{
		Store:    sessionStore,
		Lookup:   lookup.AddressParser{},
		Sink:     sink,
		Leads:    leadRepo,
		Notifier: notifier,
		Logger:   logger,
	}

	wizardHandler := handlers.NewWizardHandler(sessionService, searchRegistry, logger)
	searchHandler := handlers.NewSearchHandler(searchClient, logger)
	lookupHandler := handlers.NewLookupHandler(lookup.AddressParser{}, logger)
	estimateHandler := handlers.NewEstimateHandler(sink, leadRepo, notifier, logger)
	contactHandler := handlers.NewContactHandler(sender, logger)
	leadsHandler := handlers.NewLeadsHandler(leadRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Wizard session endpoints.
		CreateSession:   wizardHandler.CreateSession,
		GetSession:      wizardHandler.GetSession,
		AdvanceSession:  wizardHandler.AdvanceSession,
		BackSession:     wizardHandler.BackSession,
		SearchMaterials: wizardHandler.SearchMaterials,
		SearchState:     wizardHandler.SearchState,
		ConfirmSession:  wizardHandler.ConfirmSession,
		CancelSession:   wizardHandler.CancelSession,

		// Direct endpoints.
		SearchFlooring: searchHandler.SearchFlooring,
		LookupProperty: lookupHandler.LookupProperty,
		SubmitEstimate: estimateHandler.SubmitEstimate,
		SubmitContact:  contactHandler.SubmitContact,

		// Ops endpoints.
		ListLeads:  leadsHandler.ListLeads,
		GetLead:    leadsHandler.GetLead,
		DeleteLead: leadsHandler.DeleteLead,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := asynqClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close task queue client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
