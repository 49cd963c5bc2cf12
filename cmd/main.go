package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/broker"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/config"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/controllers"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/database"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/dispatch"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/mapper"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/repository"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/services"
)

func main() {
	log := logrus.WithField("component", "gateway")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create repositories
	fieldMappingRepo := repository.NewFieldMappingRepository(db)
	jobTypeRepo := repository.NewJobTypeRepository(db)
	configRepo := repository.NewTransformationConfigRepository(db)
	trustedServiceRepo := repository.NewTrustedServiceRepository(db)

	// Create mapper and transformer registry
	fieldMapper := mapper.New(fieldMappingRepo)
	registry := dispatch.DefaultRegistry(fieldMapper, configRepo)

	// Create services
	authService := services.NewAuthService(trustedServiceRepo)
	transformService := services.NewTransformService(registry)
	consumerService := services.NewConsumerService(authService, transformService)

	// Create broker publisher and consumer
	publisher, err := broker.NewPublisher(&cfg.Broker)
	if err != nil {
		log.Fatalf("failed to create broker publisher: %v", err)
	}
	defer publisher.Close()

	consumer, err := broker.NewConsumer(&cfg.Broker, publisher)
	if err != nil {
		log.Fatalf("failed to create broker consumer: %v", err)
	}
	defer consumer.Close()

	consumerService.RegisterHandlers(consumer)
	if err := consumer.Start(); err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	// Create handlers
	transformHandler := controllers.NewTransformHandler(transformService)
	mappingsHandler := controllers.NewMappingsHandler(fieldMappingRepo, fieldMapper)
	jobTypesHandler := controllers.NewJobTypesHandler(jobTypeRepo, configRepo)

	// Create router
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	// Mount routes
	router.HandleFunc("/health", transformHandler.HandleHealth).Methods("GET")
	router.HandleFunc("/api/transform", transformHandler.HandleTransform).Methods("POST")
	router.HandleFunc("/api/platforms", transformHandler.HandlePlatforms).Methods("GET")
	router.HandleFunc("/api/mappings", mappingsHandler.HandleListMappings).Methods("GET")
	router.HandleFunc("/api/mappings", mappingsHandler.HandleUpsertMapping).Methods("POST")
	router.HandleFunc("/api/mappings/{id}", mappingsHandler.HandleDeleteMapping).Methods("DELETE")
	router.HandleFunc("/api/job-types", jobTypesHandler.HandleListJobTypes).Methods("GET")
	router.HandleFunc("/api/job-types/{code}", jobTypesHandler.HandleGetJobType).Methods("GET")
	router.HandleFunc("/api/job-types/{code}/config", jobTypesHandler.HandleGetConfig).Methods("GET")
	router.HandleFunc("/api/job-types/{code}/config", jobTypesHandler.HandleUpsertConfig).Methods("PUT")

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("server running on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server stopped")
}

// corsMiddleware adds CORS headers for browser clients.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
