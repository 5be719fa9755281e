package api

import (
	"net/http"

	"github.com/whiterosespeakers/wrs-backend/internal/objectstore"
)

// handleAuthorizeUpload issues a presigned PUT for an image upload. The
// server never proxies the bytes; the browser uploads straight to the
// bucket.
func (a *API) handleAuthorizeUpload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filename := q.Get("filename")
	contentType := q.Get("contentType")

	if filename == "" || contentType == "" {
		respondError(w, http.StatusBadRequest, "filename and contentType are required")
		return
	}
	if !objectstore.IsAllowedImageType(contentType) {
		respondError(w, http.StatusBadRequest, "Unsupported content type")
		return
	}

	upload, err := a.objects.AuthorizeUpload(r.Context(), filename, contentType, q.Get("folder"))
	if err != nil {
		respondUpstreamError(w, r, err, "upload authorization failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"uploadUrl": upload.UploadURL,
		"publicUrl": upload.PublicURL,
		"key":       upload.Key,
	})
}
