// Package objectstore issues time-limited upload authorizations for image
// assets and computes their public retrieval URLs. Bytes move directly
// between the browser and S3; the application server never proxies them.
package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const uploadExpiry = time.Hour

// Presigner is the subset of the S3 presign client we use.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Deleter is the subset of the S3 client we use for object removal.
type Deleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// IsAllowedImageType reports whether uploads of this content type are
// accepted.
func IsAllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}

// Upload is a signed upload authorization.
type Upload struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// Store is the object storage adapter.
type Store struct {
	presigner Presigner
	deleter   Deleter
	bucket    string
	cdnDomain string
	region    string
}

// New builds a Store over an S3 client.
func New(client *s3.Client, bucket, cdnDomain, region string) *Store {
	return NewWithClients(s3.NewPresignClient(client), client, bucket, cdnDomain, region)
}

// NewWithClients wires explicit presign/delete clients; tests use it with
// mocks.
func NewWithClients(presigner Presigner, deleter Deleter, bucket, cdnDomain, region string) *Store {
	return &Store{
		presigner: presigner,
		deleter:   deleter,
		bucket:    bucket,
		cdnDomain: cdnDomain,
		region:    region,
	}
}

// AuthorizeUpload returns a one-hour signed PUT target for a fresh,
// collision-resistant key of the form folder/uuid.ext.
func (s *Store) AuthorizeUpload(ctx context.Context, filename, contentType, folder string) (*Upload, error) {
	if folder == "" {
		folder = "uploads"
	}
	ext := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}
	key := fmt.Sprintf("%s/%s.%s", folder, uuid.NewString(), ext)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = uploadExpiry
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: presign upload: %w", err)
	}

	return &Upload{
		UploadURL: req.URL,
		PublicURL: s.PublicURL(key),
		Key:       key,
	}, nil
}

// PublicURL is deterministic construction only; it never checks that the
// object exists.
func (s *Store) PublicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.cdnDomain, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Delete removes an object. Callers treat failures as best-effort: a paired
// record deletion proceeds regardless.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("objectstore: delete %s: %w", key, err)
	}
	return nil
}
