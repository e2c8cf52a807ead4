package routes

import (
	"github.com/go-chi/chi/v5"

	"flightops/frms/internal/api"
	"flightops/frms/internal/common"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/metrics"
	"flightops/frms/internal/middleware"
	"flightops/frms/internal/services"
)

// RegisterAPIRoutes registers the authenticated API v1 routes: read
// endpoints for every logged-in role, seat and roster mutation for
// operators, user and audit management for admins.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, sessionSvc *common.SessionService,
	authSvc *services.AuthService, flightSvc *services.FlightService, rosterSvc *services.RosterService,
	seatEditSvc *services.SeatEditService, archiveSvc *services.ArchiveService,
	crewRepo *repositories.CrewRepository, passengerRepo *repositories.PassengerRepository,
	userRepo *repositories.UserRepository, auditRepo *repositories.AuditRepository) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(sessionSvc))

		v1.Post("/auth/logout", api.LogoutHandler(authSvc))

		// Read endpoints, available to every role
		v1.Get("/flights", api.ListFlightsHandler(flightSvc))
		v1.Get("/flights/{flight_no}", api.GetFlightHandler(flightSvc))
		v1.Get("/flights/{flight_no}/roster", api.ViewRosterHandler(rosterSvc))
		v1.Get("/flights/{flight_no}/passengers", api.ListPassengersHandler(passengerRepo))
		v1.Get("/crew/pilots", api.ListPilotsHandler(crewRepo))
		v1.Get("/crew/cabin", api.ListAttendantsHandler(crewRepo))
		v1.Get("/export/{flight_no}.json", api.ExportRosterHandler(rosterSvc))

		// Operator group: roster generation and seat changes
		v1.Group(func(operator chi.Router) {
			operator.Use(middleware.IsOperatorMiddleware())

			operator.Post("/flights/{flight_no}/roster", api.GenerateRosterHandler(rosterSvc))
			operator.Post("/flights/{flight_no}/seats", api.UpdateSeatHandler(seatEditSvc))
			operator.Post("/flights/{flight_no}/roster/archive", api.ArchiveRosterHandler(archiveSvc))

			// Admin group: account and audit management
			operator.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/admin/users", api.ListUsersHandler(userRepo))
				admin.Post("/admin/users/role", api.SetRoleHandler(userRepo, auditRepo))
				admin.Get("/admin/logs", api.ListAuditLogsHandler(auditRepo))
				admin.Delete("/passengers/{passenger_id}", api.DeletePassengerHandler(passengerRepo))
			})
		})
	})
}
