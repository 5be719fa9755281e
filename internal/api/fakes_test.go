package api

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/whiterosespeakers/wrs-backend/internal/mailer"
	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/internal/objectstore"
	"github.com/whiterosespeakers/wrs-backend/internal/store"
)

// In-memory fakes for the handler-facing interfaces. They reproduce the
// storage layer's observable behavior: ErrNotFound on misses, server-side
// id assignment, lowercased subscriber emails.

type fakeArticles struct {
	mu    sync.Mutex
	seq   int
	items map[string]models.Article
}

func newFakeArticles() *fakeArticles {
	return &fakeArticles{items: map[string]models.Article{}}
}

func (f *fakeArticles) List(_ context.Context, status string) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Article{}
	for _, a := range f.items {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArticles) Get(_ context.Context, id string) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (f *fakeArticles) GetBySlug(_ context.Context, slug string) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.items {
		if a.Slug == slug {
			out := a
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeArticles) Create(_ context.Context, article models.Article) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	article.ID = fmt.Sprintf("article-%d", f.seq)
	f.items[article.ID] = article
	return &article, nil
}

func (f *fakeArticles) Update(_ context.Context, article models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[article.ID] = article
	return nil
}

func (f *fakeArticles) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeEvents struct {
	seq   int
	items map[string]models.Event
}

func newFakeEvents() *fakeEvents { return &fakeEvents{items: map[string]models.Event{}} }

func (f *fakeEvents) List(_ context.Context, eventType string) ([]models.Event, error) {
	out := []models.Event{}
	for _, e := range f.items {
		if eventType == "" || e.Type == eventType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvents) Get(_ context.Context, id string) (*models.Event, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEvents) Create(_ context.Context, event models.Event) (*models.Event, error) {
	f.seq++
	event.ID = fmt.Sprintf("event-%d", f.seq)
	f.items[event.ID] = event
	return &event, nil
}

func (f *fakeEvents) Update(_ context.Context, event models.Event) error {
	f.items[event.ID] = event
	return nil
}

func (f *fakeEvents) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeGallery struct {
	seq   int
	items map[string]models.GalleryImage
}

func newFakeGallery() *fakeGallery { return &fakeGallery{items: map[string]models.GalleryImage{}} }

func (f *fakeGallery) List(_ context.Context, category string) ([]models.GalleryImage, error) {
	out := []models.GalleryImage{}
	for _, img := range f.items {
		if category == "" || img.Category == category {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeGallery) Get(_ context.Context, category, id string) (*models.GalleryImage, error) {
	img, ok := f.items[id]
	if !ok || img.Category != category {
		return nil, store.ErrNotFound
	}
	return &img, nil
}

func (f *fakeGallery) Create(_ context.Context, image models.GalleryImage) (*models.GalleryImage, error) {
	f.seq++
	image.ID = fmt.Sprintf("image-%d", f.seq)
	f.items[image.ID] = image
	return &image, nil
}

func (f *fakeGallery) Delete(_ context.Context, category, id string) error {
	img, ok := f.items[id]
	if !ok || img.Category != category {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeSubscribers struct {
	items map[string]models.Subscriber
}

func newFakeSubscribers() *fakeSubscribers {
	return &fakeSubscribers{items: map[string]models.Subscriber{}}
}

func (f *fakeSubscribers) List(_ context.Context) ([]models.Subscriber, error) {
	out := []models.Subscriber{}
	for _, s := range f.items {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSubscribers) Get(_ context.Context, email string) (*models.Subscriber, error) {
	s, ok := f.items[strings.ToLower(email)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSubscribers) Subscribe(_ context.Context, email, source string) error {
	email = strings.ToLower(email)
	f.items[email] = models.Subscriber{Email: email, Status: models.SubscriberActive, Source: source, SubscribedAt: "2026-01-01T00:00:00Z"}
	return nil
}

func (f *fakeSubscribers) Unsubscribe(_ context.Context, email string) error {
	s, ok := f.items[strings.ToLower(email)]
	if !ok {
		return store.ErrNotFound
	}
	s.Status = models.SubscriberUnsubscribed
	f.items[s.Email] = s
	return nil
}

func (f *fakeSubscribers) Delete(_ context.Context, email string) error {
	email = strings.ToLower(email)
	if _, ok := f.items[email]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, email)
	return nil
}

type fakeTeam struct {
	seq   int
	items map[string]models.TeamMember
}

func newFakeTeam() *fakeTeam { return &fakeTeam{items: map[string]models.TeamMember{}} }

func (f *fakeTeam) List(_ context.Context, activeOnly bool) ([]models.TeamMember, error) {
	out := []models.TeamMember{}
	for _, m := range f.items {
		if !activeOnly || m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeTeam) Get(_ context.Context, id string) (*models.TeamMember, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &m, nil
}

func (f *fakeTeam) Create(_ context.Context, member models.TeamMember) (*models.TeamMember, error) {
	f.seq++
	member.ID = fmt.Sprintf("member-%d", f.seq)
	f.items[member.ID] = member
	return &member, nil
}

func (f *fakeTeam) Update(_ context.Context, member models.TeamMember) error {
	f.items[member.ID] = member
	return nil
}

func (f *fakeTeam) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTeam) Reorder(_ context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		m, ok := f.items[id]
		if !ok {
			return store.ErrNotFound
		}
		m.Order = i
		f.items[id] = m
	}
	return nil
}

type fakeTestimonials struct {
	seq   int
	items map[string]models.Testimonial
}

func newFakeTestimonials() *fakeTestimonials {
	return &fakeTestimonials{items: map[string]models.Testimonial{}}
}

func (f *fakeTestimonials) List(_ context.Context, activeOnly bool) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	for _, item := range f.items {
		if !activeOnly || item.Active {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeTestimonials) Get(_ context.Context, id string) (*models.Testimonial, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &item, nil
}

func (f *fakeTestimonials) Create(_ context.Context, item models.Testimonial) (*models.Testimonial, error) {
	f.seq++
	item.ID = fmt.Sprintf("testimonial-%d", f.seq)
	f.items[item.ID] = item
	return &item, nil
}

func (f *fakeTestimonials) Update(_ context.Context, item models.Testimonial) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeTestimonials) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTestimonials) Reorder(_ context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		item, ok := f.items[id]
		if !ok {
			return store.ErrNotFound
		}
		item.Order = i
		f.items[id] = item
	}
	return nil
}

type fakeSettings struct {
	current models.SiteSettings
}

func (f *fakeSettings) Get(_ context.Context) (*models.SiteSettings, error) {
	out := f.current
	return &out, nil
}

func (f *fakeSettings) Update(_ context.Context, apply func(*models.SiteSettings)) (*models.SiteSettings, error) {
	apply(&f.current)
	out := f.current
	return &out, nil
}

type fakePages struct {
	items map[string]models.PageContent
}

func newFakePages() *fakePages { return &fakePages{items: map[string]models.PageContent{}} }

func (f *fakePages) Get(_ context.Context, pageID string) (*models.PageContent, error) {
	p, ok := f.items[pageID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakePages) Update(_ context.Context, page models.PageContent) error {
	f.items[page.PageID] = page
	return nil
}

type fakeUploader struct {
	deleted   []string
	deleteErr error
}

func (f *fakeUploader) AuthorizeUpload(_ context.Context, filename, _, folder string) (*objectstore.Upload, error) {
	if folder == "" {
		folder = "uploads"
	}
	key := folder + "/generated-" + filename
	return &objectstore.Upload{
		UploadURL: "https://signed.example/" + key,
		PublicURL: "https://cdn.example.org/" + key,
		Key:       key,
	}, nil
}

func (f *fakeUploader) PublicURL(key string) string {
	return "https://cdn.example.org/" + key
}

func (f *fakeUploader) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

type fakeUsers struct {
	users   []models.User
	created []string
	deleted []string
}

func (f *fakeUsers) ListUsers(_ context.Context) ([]models.User, error) { return f.users, nil }

func (f *fakeUsers) CreateUser(_ context.Context, email, _, _ string, _ bool) error {
	f.created = append(f.created, email)
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, username string) error {
	f.deleted = append(f.deleted, username)
	return nil
}

func (f *fakeUsers) SetAdmin(context.Context, string, bool) error   { return nil }
func (f *fakeUsers) SetEnabled(context.Context, string, bool) error { return nil }
func (f *fakeUsers) SetPassword(context.Context, string, string) error {
	return nil
}

type fakeMail struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
