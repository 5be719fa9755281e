package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type articleRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.Article
}

// Articles stores blog posts under PK ARTICLE#<id>, SK META. The
// status-publishedAt index serves the filtered, date-ordered listing.
type Articles struct {
	table dynstore.Table[articleRecord]
}

// List returns every article, or only those with the given status. The
// published listing goes through the secondary index in
// publishedAt-descending order. The index is sparse: drafts carry no
// publishedAt attribute, so any other status filter is a scan.
func (a *Articles) List(ctx context.Context, status string) ([]models.Article, error) {
	var (
		records []articleRecord
		err     error
	)
	switch status {
	case models.StatusPublished:
		records, err = a.table.Query().
			Index(articleStatusIndex).
			KeyEqual("status", status).
			Descending().
			Exec(ctx)
	case "":
		records, err = a.table.Scan().Exec(ctx)
	default:
		records, err = a.table.Scan().FilterEqual("status", status).Exec(ctx)
	}
	if err != nil {
		return nil, err
	}
	return unwrap(records, func(r articleRecord) models.Article { return r.Article }), nil
}

func (a *Articles) Get(ctx context.Context, id string) (*models.Article, error) {
	rec, err := a.table.Get(ctx, pkArticle+id, skMeta)
	if err != nil {
		return nil, err
	}
	return &rec.Article, nil
}

// GetBySlug is a scan-and-compare lookup; slug has no index.
func (a *Articles) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	records, err := a.table.Scan().FilterEqual("slug", slug).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0].Article, nil
}

// Create assigns the id server-side and persists the article.
func (a *Articles) Create(ctx context.Context, article models.Article) (*models.Article, error) {
	article.ID = uuid.NewString()
	if err := a.put(ctx, article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Update overwrites the full record; callers read-merge before calling.
func (a *Articles) Update(ctx context.Context, article models.Article) error {
	return a.put(ctx, article)
}

func (a *Articles) Delete(ctx context.Context, id string) error {
	if _, err := a.Get(ctx, id); err != nil {
		return err
	}
	return a.table.Delete(ctx, pkArticle+id, skMeta)
}

func (a *Articles) put(ctx context.Context, article models.Article) error {
	return a.table.Put(ctx, articleRecord{
		PK:      pkArticle + article.ID,
		SK:      skMeta,
		Article: article,
	})
}

func unwrap[R, T any](records []R, pick func(R) T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, pick(r))
	}
	return out
}
