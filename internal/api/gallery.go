package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/whiterosespeakers/wrs-backend/internal/auth"
	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

func (a *API) handleListGallery(w http.ResponseWriter, r *http.Request) {
	images, err := a.gallery.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondUpstreamError(w, r, err, "gallery list failed")
		return
	}
	respondJSON(w, http.StatusOK, a.withImageURLs(images))
}

// handleCreateGalleryImage records an image whose object was already
// uploaded through the presigned URL flow.
func (a *API) handleCreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGalleryImageRequest
	if !a.decode(w, r, &req) {
		return
	}

	uploadedBy := ""
	if identity := auth.IdentityFromContext(r.Context()); identity != nil {
		uploadedBy = identity.Username
	}

	image := models.GalleryImage{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		S3Key:       req.S3Key,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
		UploadedBy:  uploadedBy,
	}

	created, err := a.gallery.Create(r.Context(), image)
	if err != nil {
		respondUpstreamError(w, r, err, "gallery create failed")
		return
	}
	respondJSON(w, http.StatusCreated, galleryImageView{GalleryImage: *created, URL: a.objects.PublicURL(created.S3Key)})
}

// handleDeleteGalleryImage removes the stored object best-effort before
// the record: an object-store failure is logged and the record delete
// still proceeds, so an orphaned object is possible but an orphaned
// record is not.
func (a *API) handleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category, id := vars["category"], vars["id"]

	image, err := a.gallery.Get(r.Context(), category, id)
	if err != nil {
		respondStoreError(w, r, err, "Gallery image not found")
		return
	}

	if image.S3Key != "" {
		if err := a.objects.Delete(r.Context(), image.S3Key); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Str("key", image.S3Key).Msg("gallery object delete failed")
		}
	}

	if err := a.gallery.Delete(r.Context(), category, id); err != nil {
		respondStoreError(w, r, err, "Gallery image not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Gallery image deleted"})
}
