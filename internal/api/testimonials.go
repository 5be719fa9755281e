package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

func (a *API) handleListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List(r.Context(), false)
	if err != nil {
		respondUpstreamError(w, r, err, "testimonial list failed")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *API) handleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTestimonialRequest
	if !a.decode(w, r, &req) {
		return
	}

	existing, err := a.testimonials.List(r.Context(), false)
	if err != nil {
		respondUpstreamError(w, r, err, "testimonial list failed")
		return
	}

	item := models.Testimonial{
		Quote:  req.Quote,
		Author: req.Author,
		Role:   req.Role,
		Rating: req.Rating,
		Order:  nextOrder(existing, func(t models.Testimonial) int { return t.Order }),
		Active: true,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	created, err := a.testimonials.Create(r.Context(), item)
	if err != nil {
		respondUpstreamError(w, r, err, "testimonial create failed")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTestimonialRequest
	if !a.decode(w, r, &req) {
		return
	}

	item, err := a.testimonials.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStoreError(w, r, err, "Testimonial not found")
		return
	}

	setString(&item.Quote, req.Quote)
	setString(&item.Author, req.Author)
	setString(&item.Role, req.Role)
	setInt(&item.Rating, req.Rating)
	setBool(&item.Active, req.Active)

	if err := a.testimonials.Update(r.Context(), *item); err != nil {
		respondUpstreamError(w, r, err, "testimonial update failed")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *API) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := a.testimonials.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, r, err, "Testimonial not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Testimonial deleted"})
}

func (a *API) handleReorderTestimonials(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !a.decode(w, r, &req) {
		return
	}
	if err := a.testimonials.Reorder(r.Context(), req.OrderedIDs); err != nil {
		respondStoreError(w, r, err, "Testimonial not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order updated"})
}
