// Package store maps the content collections onto DynamoDB tables through
// pkg/dynstore. Records share a two-part composite key (PK, SK); the content
// table is shared by team members, testimonials, site settings and page
// content, each under its own PK prefix.
package store

import (
	"github.com/whiterosespeakers/wrs-backend/internal/config"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

// Key prefixes and fixed sort keys.
const (
	pkArticle     = "ARTICLE#"
	pkEvent       = "EVENT#"
	pkGallery     = "GALLERY#"
	pkSubscriber  = "SUBSCRIBER#"
	pkTeam        = "TEAM#"
	pkTestimonial = "TESTIMONIAL#"
	pkSettings    = "SETTINGS"
	pkPage        = "PAGE#"

	skMeta    = "META"
	skImage   = "IMAGE#"
	skSite    = "SITE"
	skContent = "CONTENT"
)

// Secondary indexes.
const (
	articleStatusIndex = "status-publishedAt-index"
	eventTypeIndex     = "type-date-index"
)

// ErrNotFound is the storage-layer miss sentinel.
var ErrNotFound = dynstore.ErrNotFound

// Stores bundles every collection repository.
type Stores struct {
	Articles     *Articles
	Events       *Events
	Gallery      *Gallery
	Subscribers  *Subscribers
	Team         *TeamMembers
	Testimonials *Testimonials
	Settings     *Settings
	Pages        *Pages
}

// New wires all repositories onto a shared DynamoDB client.
func New(client dynstore.Client, tables config.TablesConfig) *Stores {
	contentCfg := dynstore.TableConfig{TableName: tables.Content, HashKey: "PK", SortKey: "SK"}

	return &Stores{
		Articles: &Articles{table: dynstore.New[articleRecord](client,
			dynstore.TableConfig{TableName: tables.Articles, HashKey: "PK", SortKey: "SK"})},
		Events: &Events{table: dynstore.New[eventRecord](client,
			dynstore.TableConfig{TableName: tables.Events, HashKey: "PK", SortKey: "SK"})},
		Gallery: &Gallery{table: dynstore.New[galleryRecord](client,
			dynstore.TableConfig{TableName: tables.Gallery, HashKey: "PK", SortKey: "SK"})},
		Subscribers: &Subscribers{table: dynstore.New[subscriberRecord](client,
			dynstore.TableConfig{TableName: tables.Subscribers, HashKey: "PK", SortKey: "SK"})},
		Team:         &TeamMembers{table: dynstore.New[teamRecord](client, contentCfg)},
		Testimonials: &Testimonials{table: dynstore.New[testimonialRecord](client, contentCfg)},
		Settings:     &Settings{table: dynstore.New[settingsRecord](client, contentCfg)},
		Pages:        &Pages{table: dynstore.New[pageRecord](client, contentCfg)},
	}
}
