package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"hotel/infras/otel"
	"hotel/infras/store"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

var errIDChanged = errors.New("record id cannot be changed")

// Entity is a record stored inside a collection.
type Entity interface {
	GetID() string
}

// Repository keeps a whole collection of T as a single JSON array in a
// store.Store. Every call reads the collection from the store and every
// write persists the full array with one Put.
type Repository[T Entity] struct {
	store      store.Store
	otel       otel.Otel
	collection string
	entitas    string
	seed       func() []T
}

// NewRepository binds a collection. When seed is non-nil it supplies the
// records written the first time the collection key is found absent.
func NewRepository[T Entity](entitasName, collection string, st store.Store, otl otel.Otel, seed func() []T) Repository[T] {
	return Repository[T]{
		store:      st,
		otel:       otl,
		collection: collection,
		entitas:    entitasName,
		seed:       seed,
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

func (repo *Repository[T]) load(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("load"))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.collection)

	payload, found, err := repo.store.Get(ctx, repo.collection)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, failure.StorageFailure(fmt.Errorf("failed to read %s: %w", repo.entitas, err))
	}

	if !found {
		return repo.seedCollection(ctx)
	}

	var items []T
	if err = json.Unmarshal(payload, &items); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, failure.StorageFailure(fmt.Errorf("failed to decode %s: %w", repo.entitas, err))
	}

	return items, nil
}

func (repo *Repository[T]) seedCollection(ctx context.Context) ([]T, error) {
	if repo.seed == nil {
		return []T{}, nil
	}

	items := repo.seed()
	if err := repo.save(ctx, items); err != nil {
		return nil, err
	}

	log.Info().Str("collection", repo.collection).Int("records", len(items)).Msg("Seeded collection with sample data")

	return items, nil
}

func (repo *Repository[T]) save(ctx context.Context, items []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("save"))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.collection)

	if items == nil {
		items = []T{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return failure.InternalError(fmt.Errorf("failed to encode %s: %w", repo.entitas, err))
	}

	if err = repo.store.Put(ctx, repo.collection, payload); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return failure.StorageFailure(fmt.Errorf("failed to write %s: %w", repo.entitas, err))
	}

	return nil
}

func indexOf[T Entity](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return item.GetID() == id
	})
}

// FindAll returns the collection in stored order.
func (repo *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("FindAll"))
	defer scope.End()

	return repo.load(ctx)
}

func (repo *Repository[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("FindByID"))
	defer scope.End()

	var zero T

	items, err := repo.load(ctx)
	if err != nil {
		return zero, false, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return zero, false, nil
	}

	return items[idx], true, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	_, found, err := repo.FindByID(ctx, id)

	return found, err
}

func (repo *Repository[T]) Count(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// Insert appends model to the collection. An id already present is a conflict.
func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		return err
	}

	if indexOf(items, model.GetID()) >= 0 {
		err = failure.Conflict(fmt.Sprintf("%s %s already exists", repo.entitas, model.GetID()))
		scope.TraceError(err)

		return err
	}

	return repo.save(ctx, append(items, model))
}

// Update applies mutate to a copy of the record with the given id and
// persists it in place. found is false when no record has that id. An error
// from mutate aborts the update without writing.
func (repo *Repository[T]) Update(ctx context.Context, id string, mutate func(*T) error) (T, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	var zero T

	items, err := repo.load(ctx)
	if err != nil {
		return zero, false, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return zero, false, nil
	}

	updated := items[idx]
	if err = mutate(&updated); err != nil {
		return zero, true, err
	}

	if updated.GetID() != id {
		return zero, true, failure.BadRequest(errIDChanged)
	}

	items[idx] = updated

	if err = repo.save(ctx, items); err != nil {
		return zero, true, err
	}

	return updated, true, nil
}

// Delete removes the record with the given id, reporting false when absent.
func (repo *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	items, err := repo.load(ctx)
	if err != nil {
		return false, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return false, nil
	}

	if err = repo.save(ctx, slices.Delete(items, idx, idx+1)); err != nil {
		return true, err
	}

	return true, nil
}
