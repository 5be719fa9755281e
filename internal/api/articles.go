package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/internal/store"
)

func (a *API) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.articles.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondUpstreamError(w, r, err, "article list failed")
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

func (a *API) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := a.articles.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStoreError(w, r, err, "Article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

func (a *API) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if !a.decode(w, r, &req) {
		return
	}
	if taken, err := a.slugTaken(r, req.Slug, ""); err != nil {
		respondUpstreamError(w, r, err, "slug lookup failed")
		return
	} else if taken {
		respondError(w, http.StatusConflict, "An article with this slug already exists")
		return
	}

	article := models.Article{
		Slug:          req.Slug,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        req.Author,
		Status:        req.Status,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		ReadTime:      req.ReadTime,
	}
	if article.Status == "" {
		article.Status = models.StatusDraft
	}
	if article.Status == models.StatusPublished {
		article.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}

	created, err := a.articles.Create(r.Context(), article)
	if err != nil {
		respondUpstreamError(w, r, err, "article create failed")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateArticleRequest
	if !a.decode(w, r, &req) {
		return
	}

	id := mux.Vars(r)["id"]
	article, err := a.articles.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Article not found")
		return
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		if taken, err := a.slugTaken(r, *req.Slug, id); err != nil {
			respondUpstreamError(w, r, err, "slug lookup failed")
			return
		} else if taken {
			respondError(w, http.StatusConflict, "An article with this slug already exists")
			return
		}
		article.Slug = *req.Slug
	}

	setString(&article.Title, req.Title)
	setString(&article.Excerpt, req.Excerpt)
	setString(&article.Content, req.Content)
	setString(&article.Author, req.Author)
	setString(&article.FeaturedImage, req.FeaturedImage)
	setString(&article.Category, req.Category)
	setString(&article.ReadTime, req.ReadTime)

	// publishedAt is stamped on the first transition to published and
	// preserved on every later publish.
	if req.Status != nil {
		if *req.Status == models.StatusPublished && article.PublishedAt == "" {
			article.PublishedAt = time.Now().UTC().Format(time.RFC3339)
		}
		article.Status = *req.Status
	}

	if err := a.articles.Update(r.Context(), *article); err != nil {
		respondUpstreamError(w, r, err, "article update failed")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

func (a *API) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := a.articles.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, r, err, "Article not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Article deleted"})
}

// slugTaken reports whether another article already owns the slug.
// excludeID lets updates keep their own slug.
func (a *API) slugTaken(r *http.Request, slug, excludeID string) (bool, error) {
	existing, err := a.articles.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
