package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

func (a *API) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := a.events.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		respondUpstreamError(w, r, err, "event list failed")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (a *API) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := a.events.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStoreError(w, r, err, "Event not found")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (a *API) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if !a.decode(w, r, &req) {
		return
	}

	event := models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Type:            req.Type,
		Featured:        req.Featured,
		Image:           req.Image,
		RegistrationURL: req.RegistrationURL,
	}
	if event.Type == "" {
		event.Type = models.EventMeeting
	}

	created, err := a.events.Create(r.Context(), event)
	if err != nil {
		respondUpstreamError(w, r, err, "event create failed")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEventRequest
	if !a.decode(w, r, &req) {
		return
	}

	event, err := a.events.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStoreError(w, r, err, "Event not found")
		return
	}

	// date is an index key attribute and must never be blanked.
	if req.Date != nil && *req.Date == "" {
		respondError(w, http.StatusBadRequest, "Event date cannot be empty")
		return
	}

	setString(&event.Title, req.Title)
	setString(&event.Description, req.Description)
	setString(&event.Date, req.Date)
	setString(&event.Time, req.Time)
	setString(&event.Location, req.Location)
	setString(&event.Type, req.Type)
	setBool(&event.Featured, req.Featured)
	setString(&event.Image, req.Image)
	setString(&event.RegistrationURL, req.RegistrationURL)

	if err := a.events.Update(r.Context(), *event); err != nil {
		respondUpstreamError(w, r, err, "event update failed")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (a *API) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := a.events.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, r, err, "Event not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}
