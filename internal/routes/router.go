package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"flightops/frms/internal/api"
	"flightops/frms/internal/common"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/logging"
	"flightops/frms/internal/metrics"
	"flightops/frms/internal/middleware"
	"flightops/frms/internal/services"
)

// RegisterRoutes wires repositories, services and handlers onto a chi
// router. The /metrics endpoint is mounted outside this router by main.
func RegisterRoutes(upSince time.Time, sqlxDB *sqlx.DB, ormDB *gorm.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Repositories. Flights, crew and the audit trail live on sqlx; users,
	// passengers and roster snapshots on GORM.
	flightRepo := repositories.NewFlightRepository(sqlxDB)
	crewRepo := repositories.NewCrewRepository(sqlxDB)
	auditRepo := repositories.NewAuditRepository(sqlxDB)
	userRepo := repositories.NewUserRepository(ormDB)
	passengerRepo := repositories.NewPassengerRepository(ormDB)
	rosterRepo := repositories.NewRosterRepository(ormDB)

	cacheSvc := common.NewCacheService(300, 600)
	sessionSvc := common.NewSessionService(redisClient)

	flightSvc := services.NewFlightService(flightRepo, cacheSvc)
	rosterSvc := services.NewRosterService(flightRepo, crewRepo, passengerRepo, rosterRepo, cacheSvc, auditRepo, metricsReg)
	seatEditSvc := services.NewSeatEditService(rosterRepo, passengerRepo, cacheSvc, auditRepo, metricsReg)
	authSvc := services.NewAuthService(userRepo, sessionSvc, auditRepo)
	archiveSvc := services.NewArchiveService(rosterRepo, os.Getenv("ROSTER_ARCHIVE_FILE"))

	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, redisClient, upSince))

	// Public auth endpoints
	r.Group(func(public chi.Router) {
		public.Use(middleware.MetricsMiddleware(metricsReg))
		public.Post("/auth/register", api.RegisterHandler(authSvc))
		public.Post("/auth/login", api.LoginHandler(authSvc))
	})

	RegisterAPIRoutes(r, metricsReg, sessionSvc, authSvc, flightSvc, rosterSvc, seatEditSvc, archiveSvc, crewRepo, passengerRepo, userRepo, auditRepo)

	logging.Info("Router initialized")
	return r
}
