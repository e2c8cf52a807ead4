package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightops/frms/internal/common"
	"flightops/frms/internal/db"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/logging"
	"flightops/frms/internal/routes"
)

func main() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("FRMS starting up", "environment", appEnv)

	if err := db.InitPostgres(); err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	if err := db.EnsureSchema(db.DB); err != nil {
		logging.Fatal("Failed to ensure schema", "error", err.Error())
	}
	logging.Info("Connected to Postgres (sqlx)")

	ormDB, err := db.InitPostgresORM(db.PostgresDSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.Seed(db.DB, ormDB); err != nil {
		logging.Fatal("Failed to seed database", "error", err.Error())
	}

	// Audit retention is enforced once per startup.
	auditRepo := repositories.NewAuditRepository(db.DB)
	if err := auditRepo.Prune(context.Background()); err != nil {
		logging.Warn("Failed to prune audit logs", "error", err.Error())
	}

	redisClient := common.NewRedisClient()

	upSince := time.Now()
	router := routes.RegisterRoutes(upSince, db.DB, ormDB, redisClient)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting", "port", port, "environment", appEnv)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logging.Fatal("Server stopped", "error", err.Error())
	}
}
