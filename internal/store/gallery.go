package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/whiterosespeakers/wrs-backend/internal/models"
	"github.com/whiterosespeakers/wrs-backend/pkg/dynstore"
)

type galleryRecord struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
	models.GalleryImage
}

// Gallery stores images under PK GALLERY#<category>, SK IMAGE#<id>.
type Gallery struct {
	table dynstore.Table[galleryRecord]
}

// List returns all images, optionally filtered by category. The filter is a
// scan predicate on the category attribute.
func (g *Gallery) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	builder := g.table.Scan()
	if category != "" {
		builder = builder.FilterEqual("category", category)
	}
	records, err := builder.Exec(ctx)
	if err != nil {
		return nil, err
	}
	return unwrap(records, func(r galleryRecord) models.GalleryImage { return r.GalleryImage }), nil
}

// Get fetches one image; category is part of the partition key.
func (g *Gallery) Get(ctx context.Context, category, id string) (*models.GalleryImage, error) {
	rec, err := g.table.Get(ctx, pkGallery+category, skImage+id)
	if err != nil {
		return nil, err
	}
	return &rec.GalleryImage, nil
}

func (g *Gallery) Create(ctx context.Context, image models.GalleryImage) (*models.GalleryImage, error) {
	image.ID = uuid.NewString()
	err := g.table.Put(ctx, galleryRecord{
		PK:           pkGallery + image.Category,
		SK:           skImage + image.ID,
		GalleryImage: image,
	})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes only the record; the caller deletes the stored object
// separately, best-effort.
func (g *Gallery) Delete(ctx context.Context, category, id string) error {
	return g.table.Delete(ctx, pkGallery+category, skImage+id)
}
