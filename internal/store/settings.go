package store

import (
	"context"
	"errors"
	"time"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type settingsRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.SiteSettings
}

// Settings is the singleton site configuration at PK SETTINGS, SK SITE.
type Settings struct {
	table dynstore.Table[settingsRecord]
}

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		MeetingDay:      "2nd and 4th Wednesday",
		MeetingTime:     "6:45pm for 7:00pm start",
		MeetingLocation: "Leonardo Hotel, Leeds",
		ContactEmail:    "whiterosespeaker@gmail.com",
		ClubURL:         "https://www.toastmasters.org/Find-a-Club/01971684-white-rose-speakers/contact-club?id=8e2c929b-8cd7-ec11-a2fd-005056875f20",
		YoutubeVideoID:  "Nt6iyS-WBPs",
	}
}

// Get returns the stored settings, or the defaults when nothing has been
// saved yet.
func (s *Settings) Get(ctx context.Context) (*models.SiteSettings, error) {
	rec, err := s.table.Get(ctx, pkSettings, skSite)
	if errors.Is(err, dynstore.ErrNotFound) {
		defaults := defaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec.SiteSettings, nil
}

// Update is read-merge-write without locking; concurrent updates can lose
// writes. Accepted for a singleton edited by a handful of admins.
func (s *Settings) Update(ctx context.Context, apply func(*models.SiteSettings)) (*models.SiteSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	apply(current)

	err = s.table.Put(ctx, settingsRecord{
		PK:           pkSettings,
		SK:           skSite,
		SiteSettings: *current,
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

type pageRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.PageContent
}

// Pages holds editable per-page content at PK PAGE#<pageId>, SK CONTENT.
type Pages struct {
	table dynstore.Table[pageRecord]
}

func (p *Pages) Get(ctx context.Context, pageID string) (*models.PageContent, error) {
	rec, err := p.table.Get(ctx, pkPage+pageID, skContent)
	if err != nil {
		return nil, err
	}
	return &rec.PageContent, nil
}

// Update overwrites the page record and stamps the modification time.
func (p *Pages) Update(ctx context.Context, page models.PageContent) error {
	page.LastModified = time.Now().UTC().Format(time.RFC3339)
	return p.table.Put(ctx, pageRecord{
		PK:          pkPage + page.PageID,
		SK:          skContent,
		PageContent: page,
	})
}
