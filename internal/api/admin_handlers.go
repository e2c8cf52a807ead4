package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"flightops/frms/internal/constants"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/models/dtos"
)

const defaultAuditListLimit = 200

// AuditWriter lets handlers append audit entries without depending on the
// concrete repository.
type AuditWriter interface {
	Insert(ctx context.Context, userEmail *string, level, action, details string) error
}

// ListUsersHandler handles GET /api/v1/admin/users.
func ListUsersHandler(repo *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := repo.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}

		infos := make([]dtos.UserInfo, 0, len(users))
		for _, u := range users {
			infos = append(infos, dtos.UserInfo{ID: u.ID, Email: u.Email, Role: u.Role})
		}
		respondWithSuccess(w, http.StatusOK, &infos)
	}
}

// SetRoleHandler handles POST /api/v1/admin/users/role.
func SetRoleHandler(repo *repositories.UserRepository, audit AuditWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SetRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !constants.ValidRole(req.Role) {
			respondWithError(w, http.StatusBadRequest, "unknown role")
			return
		}

		if err := repo.UpdateRole(r.Context(), req.UserID, req.Role); err != nil {
			respondWithError(w, http.StatusNotFound, "user not found")
			return
		}

		if audit != nil {
			_ = audit.Insert(r.Context(), nil, "INFO", "ChangeRole",
				"user_id="+strconv.FormatInt(req.UserID, 10)+" -> "+req.Role)
		}
		msg := "role updated"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// ListAuditLogsHandler handles GET /api/v1/admin/logs with an optional
// level filter.
func ListAuditLogsHandler(repo *repositories.AuditRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		level := r.URL.Query().Get("level")

		logs, err := repo.List(r.Context(), level, defaultAuditListLimit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "internal error")
			return
		}
		respondWithSuccess(w, http.StatusOK, &logs)
	}
}
