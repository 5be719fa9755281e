package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiterosespeakers/wrs-backend/internal/auth"
	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/internal/store"
)

func (a *API) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.Get(r.Context())
	if err != nil {
		respondUpstreamError(w, r, err, "settings read failed")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// handleUpdateSettings merges the provided fields into the singleton
// record, read-merge-write.
func (a *API) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if !a.decode(w, r, &req) {
		return
	}

	updated, err := a.settings.Update(r.Context(), func(s *models.SiteSettings) {
		setString(&s.MeetingDay, req.MeetingDay)
		setString(&s.MeetingTime, req.MeetingTime)
		setString(&s.MeetingLocation, req.MeetingLocation)
		setString(&s.NextMeetingDate, req.NextMeetingDate)
		setString(&s.ContactEmail, req.ContactEmail)
		setString(&s.ClubURL, req.ClubURL)
		setString(&s.YoutubeVideoID, req.YoutubeVideoID)
	})
	if err != nil {
		respondUpstreamError(w, r, err, "settings update failed")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *API) handleGetPageContent(w http.ResponseWriter, r *http.Request) {
	a.readPageContent(w, r)
}

// readPageContent serves both the public and the admin content routes. A
// page with no stored content yet comes back as an empty record rather
// than a 404, so the editor can open it.
func (a *API) readPageContent(w http.ResponseWriter, r *http.Request) {
	pageID := mux.Vars(r)["pageId"]
	page, err := a.pages.Get(r.Context(), pageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondJSON(w, http.StatusOK, models.PageContent{PageID: pageID, Content: map[string]string{}})
			return
		}
		respondUpstreamError(w, r, err, "page content read failed")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (a *API) handleUpdatePageContent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePageContentRequest
	if !a.decode(w, r, &req) {
		return
	}

	pageID := mux.Vars(r)["pageId"]
	page, err := a.pages.Get(r.Context(), pageID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			respondUpstreamError(w, r, err, "page content read failed")
			return
		}
		page = &models.PageContent{PageID: pageID, Content: map[string]string{}}
	}

	setString(&page.Title, req.Title)
	if req.Content != nil {
		page.Content = req.Content
	}
	if identity := auth.IdentityFromContext(r.Context()); identity != nil {
		page.ModifiedBy = identity.Username
	}

	if err := a.pages.Update(r.Context(), *page); err != nil {
		respondUpstreamError(w, r, err, "page content update failed")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (a *API) handleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := a.subscribers.List(r.Context())
	if err != nil {
		respondUpstreamError(w, r, err, "subscriber list failed")
		return
	}
	respondJSON(w, http.StatusOK, subscribers)
}

// handleCreateSubscriber is the admin-side add; unlike the public
// subscribe it rejects an address that already exists.
func (a *API) handleCreateSubscriber(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if !a.decode(w, r, &req) {
		return
	}

	if _, err := a.subscribers.Get(r.Context(), req.Email); err == nil {
		respondError(w, http.StatusConflict, "Subscriber already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		respondUpstreamError(w, r, err, "subscriber lookup failed")
		return
	}

	source := req.Source
	if source == "" {
		source = "admin"
	}
	if err := a.subscribers.Subscribe(r.Context(), req.Email, source); err != nil {
		respondUpstreamError(w, r, err, "subscriber create failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "Subscriber added"})
}

func (a *API) handleDeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	if err := a.subscribers.Delete(r.Context(), mux.Vars(r)["email"]); err != nil {
		respondStoreError(w, r, err, "Subscriber not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Subscriber deleted"})
}
