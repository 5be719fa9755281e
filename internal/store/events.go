package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type eventRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.Event
}

// Events stores occurrences under PK EVENT#<id>, SK META. The type-date
// index serves date-ordered listings filtered by event type.
type Events struct {
	table dynstore.Table[eventRecord]
}

// List returns every event, or only those of the given type via the
// secondary index in date-ascending order.
func (e *Events) List(ctx context.Context, eventType string) ([]models.Event, error) {
	var (
		records []eventRecord
		err     error
	)
	if eventType != "" {
		records, err = e.table.Query().
			Index(eventTypeIndex).
			KeyEqual("type", eventType).
			Exec(ctx)
	} else {
		records, err = e.table.Scan().Exec(ctx)
	}
	if err != nil {
		return nil, err
	}
	return unwrap(records, func(r eventRecord) models.Event { return r.Event }), nil
}

func (e *Events) Get(ctx context.Context, id string) (*models.Event, error) {
	rec, err := e.table.Get(ctx, pkEvent+id, skMeta)
	if err != nil {
		return nil, err
	}
	return &rec.Event, nil
}

func (e *Events) Create(ctx context.Context, event models.Event) (*models.Event, error) {
	event.ID = uuid.NewString()
	if err := e.put(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *Events) Update(ctx context.Context, event models.Event) error {
	return e.put(ctx, event)
}

func (e *Events) Delete(ctx context.Context, id string) error {
	if _, err := e.Get(ctx, id); err != nil {
		return err
	}
	return e.table.Delete(ctx, pkEvent+id, skMeta)
}

func (e *Events) put(ctx context.Context, event models.Event) error {
	return e.table.Put(ctx, eventRecord{
		PK:    pkEvent + event.ID,
		SK:    skMeta,
		Event: event,
	})
}
