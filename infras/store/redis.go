package store

import (
	"context"
	"errors"
	"fmt"

	"hotel/shared/constant"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis keeps each collection under <prefix>:<collection> with no expiry.
func NewRedis(client *redis.Client, prefix string) Store {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

func (r *redisStore) Driver() string {
	return constant.StorageDriverRedis
}

func (r *redisStore) key(collection string) string {
	if r.prefix == constant.Empty {
		return collection
	}

	return r.prefix + ":" + collection
}

func (r *redisStore) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, false, err
	}

	payload, err := r.client.Get(ctx, r.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("get collection %s: %w", collection, err)
	}

	return payload, true, nil
}

func (r *redisStore) Put(ctx context.Context, collection string, payload []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(collection), payload, 0).Err(); err != nil {
		return fmt.Errorf("set collection %s: %w", collection, err)
	}

	return nil
}
