package store

import (
	"context"
	"strings"
	"time"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type subscriberRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.Subscriber
}

// Subscribers is keyed directly by lowercased email.
type Subscribers struct {
	table dynstore.Table[subscriberRecord]
}

func (s *Subscribers) List(ctx context.Context) ([]models.Subscriber, error) {
	records, err := s.table.Scan().Exec(ctx)
	if err != nil {
		return nil, err
	}
	return unwrap(records, func(r subscriberRecord) models.Subscriber { return r.Subscriber }), nil
}

func (s *Subscribers) Get(ctx context.Context, email string) (*models.Subscriber, error) {
	rec, err := s.table.Get(ctx, pkSubscriber+strings.ToLower(email), skMeta)
	if err != nil {
		return nil, err
	}
	return &rec.Subscriber, nil
}

// Subscribe upserts the record as active. Re-subscribing an unsubscribed
// email reactivates it.
func (s *Subscribers) Subscribe(ctx context.Context, email, source string) error {
	email = strings.ToLower(email)
	if source == "" {
		source = "website"
	}
	return s.table.Put(ctx, subscriberRecord{
		PK: pkSubscriber + email,
		SK: skMeta,
		Subscriber: models.Subscriber{
			Email:        email,
			SubscribedAt: time.Now().UTC().Format(time.RFC3339),
			Status:       models.SubscriberActive,
			Source:       source,
		},
	})
}

// Unsubscribe flips the status, read-merge-write.
func (s *Subscribers) Unsubscribe(ctx context.Context, email string) error {
	rec, err := s.table.Get(ctx, pkSubscriber+strings.ToLower(email), skMeta)
	if err != nil {
		return err
	}
	rec.Status = models.SubscriberUnsubscribed
	return s.table.Put(ctx, *rec)
}

func (s *Subscribers) Delete(ctx context.Context, email string) error {
	email = strings.ToLower(email)
	if _, err := s.Get(ctx, email); err != nil {
		return err
	}
	return s.table.Delete(ctx, pkSubscriber+email, skMeta)
}
