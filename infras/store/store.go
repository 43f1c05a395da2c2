package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrQuotaExceeded is returned by a backend whose capacity would be exceeded by a write.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrInvalidCollection is returned for collection names that cannot be used as keys.
	ErrInvalidCollection = errors.New("invalid collection name")
)

var collectionPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Store persists one serialized payload per collection.
// A collection that was never written is reported with found=false and no error.
type Store interface {
	Get(ctx context.Context, collection string) (payload []byte, found bool, err error)
	Put(ctx context.Context, collection string, payload []byte) error
	Driver() string
}

// ValidateCollection rejects names that would escape a directory or key namespace.
func ValidateCollection(collection string) error {
	if !collectionPattern.MatchString(collection) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
	}

	return nil
}

func clone(payload []byte) []byte {
	if payload == nil {
		return nil
	}

	out := make([]byte, len(payload))
	copy(out, payload)

	return out
}
