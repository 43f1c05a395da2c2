package store

import (
	"context"
	"errors"
	"fmt"

	"hotel/infras/s3"
	"hotel/shared/constant"
)

type s3Store struct {
	client s3.S3
	bucket string
	prefix string
}

// NewS3 keeps each collection as the object <prefix>/<collection>.json.
func NewS3(client s3.S3, bucket, prefix string) Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *s3Store) Driver() string {
	return constant.StorageDriverS3
}

func (s *s3Store) key(collection string) string {
	if s.prefix == constant.Empty {
		return collection + fileExtension
	}

	return s.prefix + "/" + collection + fileExtension
}

func (s *s3Store) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, false, err
	}

	payload, err := s.client.GetObject(ctx, s.bucket, s.key(collection))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get collection %s: %w", collection, err)
	}

	return payload, true, nil
}

func (s *s3Store) Put(ctx context.Context, collection string, payload []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	if err := s.client.PutObject(ctx, s.bucket, s.key(collection), constant.ContentTypeJSON, payload); err != nil {
		return fmt.Errorf("put collection %s: %w", collection, err)
	}

	return nil
}
