package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type testimonialRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.Testimonial
}

// Testimonials shares the content table under PK TESTIMONIAL#<id> and uses
// the same manual ordering model as TeamMembers.
type Testimonials struct {
	table dynstore.Table[testimonialRecord]
}

func (t *Testimonials) List(ctx context.Context, activeOnly bool) ([]models.Testimonial, error) {
	builder := t.table.Scan().FilterBeginsWith("PK", pkTestimonial)
	if activeOnly {
		builder = builder.FilterEqual("active", true)
	}
	records, err := builder.Exec(ctx)
	if err != nil {
		return nil, err
	}
	items := unwrap(records, func(r testimonialRecord) models.Testimonial { return r.Testimonial })
	sort.Slice(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

func (t *Testimonials) Get(ctx context.Context, id string) (*models.Testimonial, error) {
	rec, err := t.table.Get(ctx, pkTestimonial+id, skMeta)
	if err != nil {
		return nil, err
	}
	return &rec.Testimonial, nil
}

func (t *Testimonials) Create(ctx context.Context, item models.Testimonial) (*models.Testimonial, error) {
	item.ID = uuid.NewString()
	if err := t.put(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (t *Testimonials) Update(ctx context.Context, item models.Testimonial) error {
	return t.put(ctx, item)
}

func (t *Testimonials) Delete(ctx context.Context, id string) error {
	if _, err := t.Get(ctx, id); err != nil {
		return err
	}
	return t.table.Delete(ctx, pkTestimonial+id, skMeta)
}

// Reorder has the same sequential, non-atomic semantics as
// TeamMembers.Reorder.
func (t *Testimonials) Reorder(ctx context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		item, err := t.Get(ctx, id)
		if err != nil {
			return err
		}
		item.Order = i
		if err := t.put(ctx, *item); err != nil {
			return err
		}
	}
	return nil
}

func (t *Testimonials) put(ctx context.Context, item models.Testimonial) error {
	return t.table.Put(ctx, testimonialRecord{
		PK:          pkTestimonial + item.ID,
		SK:          skMeta,
		Testimonial: item,
	})
}
