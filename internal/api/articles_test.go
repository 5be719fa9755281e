package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

func TestCreateArticle_DefaultsToDraft(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title":   "Finding Your Voice",
		"slug":    "finding-your-voice",
		"content": "Speaking tips...",
	}, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Article](t, rec)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.Empty(t, created.PublishedAt)
	assert.NotEmpty(t, created.ID)
}

func TestCreateArticle_DuplicateSlugConflicts(t *testing.T) {
	e := newEnv(t)

	first := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "First", "slug": "shared-slug", "content": "a",
	}, true)
	require.Equal(t, http.StatusCreated, first.Code)

	second := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Second", "slug": "shared-slug", "content": "b",
	}, true)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "slug already exists")
}

func TestCreateArticle_MissingFields(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "No slug or content",
	}, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateArticle_PublishStampsOnce(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Draft", "slug": "draft-post", "content": "text",
	}, true)
	created := decodeBody[models.Article](t, rec)

	pub := e.do(t, http.MethodPut, "/api/admin/articles/"+created.ID, map[string]any{
		"status": "published",
	}, true)
	require.Equal(t, http.StatusOK, pub.Code)
	published := decodeBody[models.Article](t, pub)
	require.NotEmpty(t, published.PublishedAt)

	// unpublish, then publish again: the original timestamp survives
	e.do(t, http.MethodPut, "/api/admin/articles/"+created.ID, map[string]any{"status": "draft"}, true)
	again := e.do(t, http.MethodPut, "/api/admin/articles/"+created.ID, map[string]any{"status": "published"}, true)
	republished := decodeBody[models.Article](t, again)
	assert.Equal(t, published.PublishedAt, republished.PublishedAt)
}

func TestUpdateArticle_PartialLeavesOtherFields(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Original", "slug": "original", "content": "body", "author": "Jane",
	}, true)
	created := decodeBody[models.Article](t, rec)

	upd := e.do(t, http.MethodPut, "/api/admin/articles/"+created.ID, map[string]any{
		"title": "Renamed",
	}, true)
	updated := decodeBody[models.Article](t, upd)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, "Jane", updated.Author)
	assert.Equal(t, "original", updated.Slug)
}

func TestUpdateArticle_SlugConflict(t *testing.T) {
	e := newEnv(t)

	e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "A", "slug": "taken", "content": "a",
	}, true)
	rec := e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "B", "slug": "mine", "content": "b",
	}, true)
	mine := decodeBody[models.Article](t, rec)

	conflict := e.do(t, http.MethodPut, "/api/admin/articles/"+mine.ID, map[string]any{"slug": "taken"}, true)
	assert.Equal(t, http.StatusConflict, conflict.Code)

	// keeping your own slug is not a conflict
	keep := e.do(t, http.MethodPut, "/api/admin/articles/"+mine.ID, map[string]any{"slug": "mine", "title": "B2"}, true)
	assert.Equal(t, http.StatusOK, keep.Code)
}

func TestDeleteArticle_Missing(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodDelete, "/api/admin/articles/no-such-id", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Article not found"}`, rec.Body.String())
}

func TestPublicArticles_ExcludeDrafts(t *testing.T) {
	e := newEnv(t)

	e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Published", "slug": "published-post", "content": "x", "status": "published",
	}, true)
	e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Draft", "slug": "draft-post", "content": "x",
	}, true)

	rec := e.do(t, http.MethodGet, "/api/articles", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	articles := decodeBody[[]models.Article](t, rec)
	require.Len(t, articles, 1)
	assert.Equal(t, "Published", articles[0].Title)
}

func TestPublicArticleBySlug(t *testing.T) {
	e := newEnv(t)

	e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Published", "slug": "findable", "content": "x", "status": "published",
	}, true)
	e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Hidden", "slug": "hidden-draft", "content": "x",
	}, true)

	t.Run("found", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/articles?slug=findable", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		article := decodeBody[models.Article](t, rec)
		assert.Equal(t, "Published", article.Title)
	})

	t.Run("miss is 200 null", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/articles?slug=no-such", nil, false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null\n", rec.Body.String())
	})

	t.Run("draft is hidden", func(t *testing.T) {
		rec := e.do(t, http.MethodGet, "/api/articles?slug=hidden-draft", nil, false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null\n", rec.Body.String())
	})
}

func TestAdminArticles_IncludeDrafts(t *testing.T) {
	e := newEnv(t)

	e.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title": "Draft", "slug": "d", "content": "x",
	}, true)

	rec := e.do(t, http.MethodGet, "/api/admin/articles", nil, true)
	articles := decodeBody[[]models.Article](t, rec)
	assert.Len(t, articles, 1)
}
