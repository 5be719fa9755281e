package api

import (
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
)

// Stats is the admin dashboard summary.
type Stats struct {
	Articles struct {
		Total     int `json:"total"`
		Published int `json:"published"`
		Drafts    int `json:"drafts"`
	} `json:"articles"`
	Events struct {
		Total    int `json:"total"`
		Upcoming int `json:"upcoming"`
		Past     int `json:"past"`
	} `json:"events"`
	Gallery struct {
		Total int `json:"total"`
	} `json:"gallery"`
	Subscribers struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"subscribers"`
	Team struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"team"`
	Testimonials struct {
		Total  int `json:"total"`
		Active int `json:"active"`
	} `json:"testimonials"`
	RecentArticles []models.Article   `json:"recentArticles"`
	RecentImages   []galleryImageView `json:"recentImages"`
}

// handleStats fans the six collection reads out concurrently and fails
// the whole response if any one of them fails.
func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	var stats Stats
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		articles, err := a.articles.List(ctx, "")
		if err != nil {
			return err
		}
		stats.Articles.Total = len(articles)
		for _, art := range articles {
			if art.Status == models.StatusPublished {
				stats.Articles.Published++
			} else {
				stats.Articles.Drafts++
			}
		}
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].PublishedAt > articles[j].PublishedAt
		})
		stats.RecentArticles = head(articles, 5)
		return nil
	})

	g.Go(func() error {
		events, err := a.events.List(ctx, "")
		if err != nil {
			return err
		}
		today := time.Now().UTC().Format("2006-01-02")
		stats.Events.Total = len(events)
		for _, ev := range events {
			if ev.Date >= today {
				stats.Events.Upcoming++
			} else {
				stats.Events.Past++
			}
		}
		return nil
	})

	g.Go(func() error {
		images, err := a.gallery.List(ctx, "")
		if err != nil {
			return err
		}
		stats.Gallery.Total = len(images)
		sort.SliceStable(images, func(i, j int) bool {
			return images[i].UploadedAt > images[j].UploadedAt
		})
		stats.RecentImages = a.withImageURLs(head(images, 5))
		return nil
	})

	g.Go(func() error {
		subscribers, err := a.subscribers.List(ctx)
		if err != nil {
			return err
		}
		stats.Subscribers.Total = len(subscribers)
		for _, sub := range subscribers {
			if sub.Status == models.SubscriberActive {
				stats.Subscribers.Active++
			}
		}
		return nil
	})

	g.Go(func() error {
		members, err := a.team.List(ctx, false)
		if err != nil {
			return err
		}
		stats.Team.Total = len(members)
		for _, m := range members {
			if m.Active {
				stats.Team.Active++
			}
		}
		return nil
	})

	g.Go(func() error {
		items, err := a.testimonials.List(ctx, false)
		if err != nil {
			return err
		}
		stats.Testimonials.Total = len(items)
		for _, t := range items {
			if t.Active {
				stats.Testimonials.Active++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		respondUpstreamError(w, r, err, "stats aggregation failed")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
