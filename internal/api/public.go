package api

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/whiterosespeakers/wrs-backend/internal/mailer"
	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/internal/store"
)

// handlePublicArticles lists published articles, newest first. With
// ?slug= it returns the single published article, or a 200 with a JSON
// null body when no published article carries that slug.
func (a *API) handlePublicArticles(w http.ResponseWriter, r *http.Request) {
	if slug := r.URL.Query().Get("slug"); slug != "" {
		article, err := a.articles.GetBySlug(r.Context(), slug)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respondUpstreamError(w, r, err, "article lookup by slug failed")
			return
		}
		if article == nil || article.Status != models.StatusPublished {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		respondJSON(w, http.StatusOK, article)
		return
	}

	articles, err := a.articles.List(r.Context(), models.StatusPublished)
	if err != nil {
		respondUpstreamError(w, r, err, "article list failed")
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

// handlePublicEvents lists all events in ascending date order,
// optionally filtered by ?type=.
func (a *API) handlePublicEvents(w http.ResponseWriter, r *http.Request) {
	events, err := a.events.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		respondUpstreamError(w, r, err, "event list failed")
		return
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	respondJSON(w, http.StatusOK, events)
}

func (a *API) handlePublicGallery(w http.ResponseWriter, r *http.Request) {
	images, err := a.gallery.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondUpstreamError(w, r, err, "gallery list failed")
		return
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].UploadedAt > images[j].UploadedAt })
	respondJSON(w, http.StatusOK, a.withImageURLs(images))
}

func (a *API) handlePublicTeam(w http.ResponseWriter, r *http.Request) {
	members, err := a.team.List(r.Context(), true)
	if err != nil {
		respondUpstreamError(w, r, err, "team list failed")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

func (a *API) handlePublicTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List(r.Context(), true)
	if err != nil {
		respondUpstreamError(w, r, err, "testimonial list failed")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *API) handlePublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.Get(r.Context())
	if err != nil {
		respondUpstreamError(w, r, err, "settings read failed")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (a *API) handlePublicPageContent(w http.ResponseWriter, r *http.Request) {
	a.readPageContent(w, r)
}

// handleContact relays a contact-form submission to the club inbox. The
// visitor's address goes in Reply-To, never in From.
func (a *API) handleContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !a.decode(w, r, &req) {
		return
	}
	if !mailer.ValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "email must be a valid email address")
		return
	}

	msg := mailer.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := a.mail.Send(r.Context(), msg); err != nil {
		respondUpstreamError(w, r, err, "contact email send failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Message sent successfully"})
}

// handleSubscribe upserts the subscriber as active; re-subscribing an
// unsubscribed address reactivates it.
func (a *API) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if !a.decode(w, r, &req) {
		return
	}
	source := req.Source
	if source == "" {
		source = "website"
	}
	if err := a.subscribers.Subscribe(r.Context(), req.Email, source); err != nil {
		respondUpstreamError(w, r, err, "subscribe failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Subscribed successfully"})
}

func (a *API) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if !a.decode(w, r, &req) {
		return
	}
	if err := a.subscribers.Unsubscribe(r.Context(), strings.ToLower(req.Email)); err != nil {
		respondStoreError(w, r, err, "Subscriber not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Unsubscribed successfully"})
}

// galleryImageView augments the stored record with a resolved public URL.
type galleryImageView struct {
	models.GalleryImage
	URL string `json:"url"`
}

func (a *API) withImageURLs(images []models.GalleryImage) []galleryImageView {
	views := make([]galleryImageView, 0, len(images))
	for _, img := range images {
		views = append(views, galleryImageView{GalleryImage: img, URL: a.objects.PublicURL(img.S3Key)})
	}
	return views
}
