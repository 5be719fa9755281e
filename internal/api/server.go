// Package api exposes the public read API and the admin-gated write API
// over gorilla/mux. Handlers depend on narrow per-collection interfaces so
// tests can substitute in-memory fakes.
package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/whiterosespeakers/wrs-backend/internal/auth"
	"github.com/whiterosespeakers/wrs-backend/internal/mailer"
	"github.com/whiterosespeakers/wrs-backend/internal/metrics"
	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/internal/objectstore"
)

type ArticleStore interface {
	List(ctx context.Context, status string) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Create(ctx context.Context, article models.Article) (*models.Article, error)
	Update(ctx context.Context, article models.Article) error
	Delete(ctx context.Context, id string) error
}

type EventStore interface {
	List(ctx context.Context, eventType string) ([]models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event models.Event) (*models.Event, error)
	Update(ctx context.Context, event models.Event) error
	Delete(ctx context.Context, id string) error
}

type GalleryStore interface {
	List(ctx context.Context, category string) ([]models.GalleryImage, error)
	Get(ctx context.Context, category, id string) (*models.GalleryImage, error)
	Create(ctx context.Context, image models.GalleryImage) (*models.GalleryImage, error)
	Delete(ctx context.Context, category, id string) error
}

type SubscriberStore interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Get(ctx context.Context, email string) (*models.Subscriber, error)
	Subscribe(ctx context.Context, email, source string) error
	Unsubscribe(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}

type TeamStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error)
	Get(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, member models.TeamMember) (*models.TeamMember, error)
	Update(ctx context.Context, member models.TeamMember) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type TestimonialStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Testimonial, error)
	Get(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, item models.Testimonial) (*models.Testimonial, error)
	Update(ctx context.Context, item models.Testimonial) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type SettingsStore interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, apply func(*models.SiteSettings)) (*models.SiteSettings, error)
}

type PageStore interface {
	Get(ctx context.Context, pageID string) (*models.PageContent, error)
	Update(ctx context.Context, page models.PageContent) error
}

// Uploader mediates access to the image bucket.
type Uploader interface {
	AuthorizeUpload(ctx context.Context, filename, contentType, folder string) (*objectstore.Upload, error)
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}

// UserDirectory is the identity provider surface used by user management.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, email, name, temporaryPassword string, isAdmin bool) error
	DeleteUser(ctx context.Context, username string) error
	SetAdmin(ctx context.Context, username string, isAdmin bool) error
	SetEnabled(ctx context.Context, username string, enabled bool) error
	SetPassword(ctx context.Context, username, password string) error
}

type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Deps collects everything the handlers reach.
type Deps struct {
	Articles     ArticleStore
	Events       EventStore
	Gallery      GalleryStore
	Subscribers  SubscriberStore
	Team         TeamStore
	Testimonials TestimonialStore
	Settings     SettingsStore
	Pages        PageStore
	Objects      Uploader
	Users        UserDirectory
	Mail         Sender
}

type API struct {
	articles     ArticleStore
	events       EventStore
	gallery      GalleryStore
	subscribers  SubscriberStore
	team         TeamStore
	testimonials TestimonialStore
	settings     SettingsStore
	pages        PageStore
	objects      Uploader
	users        UserDirectory
	mail         Sender
	validate     *validator.Validate
}

func New(deps Deps) *API {
	return &API{
		articles:     deps.Articles,
		events:       deps.Events,
		gallery:      deps.Gallery,
		subscribers:  deps.Subscribers,
		team:         deps.Team,
		testimonials: deps.Testimonials,
		settings:     deps.Settings,
		pages:        deps.Pages,
		objects:      deps.Objects,
		users:        deps.Users,
		mail:         deps.Mail,
		validate:     newValidator(),
	}
}

// Router assembles the route table: public reads, the contact and
// subscribe writes, and the admin subrouter behind the auth gate.
func (a *API) Router(gate *auth.Gate, logger zerolog.Logger, recorder metrics.Recorder) *mux.Router {
	r := mux.NewRouter()
	r.Use(observabilityMiddleware(logger, recorder))
	r.Use(corsMiddleware)

	// Preflight requests need a matched route for middleware to run.
	r.PathPrefix("/api/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	r.HandleFunc("/api/health", a.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/articles", a.handlePublicArticles).Methods(http.MethodGet)
	r.HandleFunc("/api/events", a.handlePublicEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/gallery", a.handlePublicGallery).Methods(http.MethodGet)
	r.HandleFunc("/api/team", a.handlePublicTeam).Methods(http.MethodGet)
	r.HandleFunc("/api/testimonials", a.handlePublicTestimonials).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", a.handlePublicSettings).Methods(http.MethodGet)
	r.HandleFunc("/api/content/{pageId}", a.handlePublicPageContent).Methods(http.MethodGet)
	r.HandleFunc("/api/contact", a.handleContact).Methods(http.MethodPost)
	r.HandleFunc("/api/subscribe", a.handleSubscribe).Methods(http.MethodPost)
	r.HandleFunc("/api/unsubscribe", a.handleUnsubscribe).Methods(http.MethodPost)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(gate.RequireAdmin)

	admin.HandleFunc("/articles", a.handleListArticles).Methods(http.MethodGet)
	admin.HandleFunc("/articles", a.handleCreateArticle).Methods(http.MethodPost)
	admin.HandleFunc("/articles/{id}", a.handleGetArticle).Methods(http.MethodGet)
	admin.HandleFunc("/articles/{id}", a.handleUpdateArticle).Methods(http.MethodPut)
	admin.HandleFunc("/articles/{id}", a.handleDeleteArticle).Methods(http.MethodDelete)

	admin.HandleFunc("/events", a.handleListEvents).Methods(http.MethodGet)
	admin.HandleFunc("/events", a.handleCreateEvent).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}", a.handleGetEvent).Methods(http.MethodGet)
	admin.HandleFunc("/events/{id}", a.handleUpdateEvent).Methods(http.MethodPut)
	admin.HandleFunc("/events/{id}", a.handleDeleteEvent).Methods(http.MethodDelete)

	admin.HandleFunc("/gallery", a.handleListGallery).Methods(http.MethodGet)
	admin.HandleFunc("/gallery", a.handleCreateGalleryImage).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{category}/{id}", a.handleDeleteGalleryImage).Methods(http.MethodDelete)

	admin.HandleFunc("/team", a.handleListTeam).Methods(http.MethodGet)
	admin.HandleFunc("/team", a.handleCreateTeamMember).Methods(http.MethodPost)
	admin.HandleFunc("/team/reorder", a.handleReorderTeam).Methods(http.MethodPatch)
	admin.HandleFunc("/team/{id}", a.handleUpdateTeamMember).Methods(http.MethodPut)
	admin.HandleFunc("/team/{id}", a.handleDeleteTeamMember).Methods(http.MethodDelete)

	admin.HandleFunc("/testimonials", a.handleListTestimonials).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials", a.handleCreateTestimonial).Methods(http.MethodPost)
	admin.HandleFunc("/testimonials/reorder", a.handleReorderTestimonials).Methods(http.MethodPatch)
	admin.HandleFunc("/testimonials/{id}", a.handleUpdateTestimonial).Methods(http.MethodPut)
	admin.HandleFunc("/testimonials/{id}", a.handleDeleteTestimonial).Methods(http.MethodDelete)

	admin.HandleFunc("/subscribers", a.handleListSubscribers).Methods(http.MethodGet)
	admin.HandleFunc("/subscribers", a.handleCreateSubscriber).Methods(http.MethodPost)
	admin.HandleFunc("/subscribers/{email}", a.handleDeleteSubscriber).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", a.handleGetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", a.handleUpdateSettings).Methods(http.MethodPut)

	admin.HandleFunc("/content/{pageId}", a.handleGetPageContent).Methods(http.MethodGet)
	admin.HandleFunc("/content/{pageId}", a.handleUpdatePageContent).Methods(http.MethodPut)

	admin.HandleFunc("/stats", a.handleStats).Methods(http.MethodGet)
	admin.HandleFunc("/upload", a.handleAuthorizeUpload).Methods(http.MethodGet)

	admin.HandleFunc("/users", a.handleListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", a.handleCreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{username}", a.handleUpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{username}", a.handleDeleteUser).Methods(http.MethodDelete)

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// corsMiddleware answers preflights and marks responses for the browser
// frontend. The API carries no cookies, so a wildcard origin is safe.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
