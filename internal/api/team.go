package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

func (a *API) handleListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := a.team.List(r.Context(), false)
	if err != nil {
		respondUpstreamError(w, r, err, "team list failed")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// handleCreateTeamMember appends the member at the end of the display
// order.
func (a *API) handleCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamMemberRequest
	if !a.decode(w, r, &req) {
		return
	}

	existing, err := a.team.List(r.Context(), false)
	if err != nil {
		respondUpstreamError(w, r, err, "team list failed")
		return
	}

	member := models.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Image:       req.Image,
		Order:       nextOrder(existing, func(m models.TeamMember) int { return m.Order }),
		Active:      true,
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	created, err := a.team.Create(r.Context(), member)
	if err != nil {
		respondUpstreamError(w, r, err, "team create failed")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTeamMemberRequest
	if !a.decode(w, r, &req) {
		return
	}

	member, err := a.team.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStoreError(w, r, err, "Team member not found")
		return
	}

	setString(&member.Name, req.Name)
	setString(&member.Role, req.Role)
	setString(&member.Description, req.Description)
	setString(&member.Image, req.Image)
	setBool(&member.Active, req.Active)

	if err := a.team.Update(r.Context(), *member); err != nil {
		respondUpstreamError(w, r, err, "team update failed")
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (a *API) handleDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := a.team.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, r, err, "Team member not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Team member deleted"})
}

func (a *API) handleReorderTeam(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !a.decode(w, r, &req) {
		return
	}
	if err := a.team.Reorder(r.Context(), req.OrderedIDs); err != nil {
		respondStoreError(w, r, err, "Team member not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order updated"})
}

// nextOrder places a new item after every existing one.
func nextOrder[T any](items []T, order func(T) int) int {
	max := 0
	for _, item := range items {
		if o := order(item); o > max {
			max = o
		}
	}
	return max + 1
}
