package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiterosespeakers/wrs-backend/internal/auth"
	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.ListUsers(r.Context())
	if err != nil {
		respondUpstreamError(w, r, err, "user list failed")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !a.decode(w, r, &req) {
		return
	}
	if err := a.users.CreateUser(r.Context(), req.Email, req.Name, req.TemporaryPassword, req.IsAdmin); err != nil {
		respondUpstreamError(w, r, err, "user create failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "User created"})
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !a.decode(w, r, &req) {
		return
	}

	username := mux.Vars(r)["username"]

	// Admins cannot strip or disable their own account.
	if identity := auth.IdentityFromContext(r.Context()); identity != nil && identity.Username == username {
		if (req.IsAdmin != nil && !*req.IsAdmin) || (req.Enabled != nil && !*req.Enabled) {
			respondError(w, http.StatusBadRequest, "Cannot modify your own admin access")
			return
		}
	}

	if req.IsAdmin != nil {
		if err := a.users.SetAdmin(r.Context(), username, *req.IsAdmin); err != nil {
			respondUpstreamError(w, r, err, "user group update failed")
			return
		}
	}
	if req.Enabled != nil {
		if err := a.users.SetEnabled(r.Context(), username, *req.Enabled); err != nil {
			respondUpstreamError(w, r, err, "user enable update failed")
			return
		}
	}
	if req.NewPassword != "" {
		if err := a.users.SetPassword(r.Context(), username, req.NewPassword); err != nil {
			respondUpstreamError(w, r, err, "user password update failed")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User updated"})
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if identity := auth.IdentityFromContext(r.Context()); identity != nil && identity.Username == username {
		respondError(w, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := a.users.DeleteUser(r.Context(), username); err != nil {
		respondUpstreamError(w, r, err, "user delete failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
