package repository

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/store"
	"hotel/internal/domains/booking/model"
	gRepo "hotel/shared/repository"
)

type Booking interface {
	FindAll(ctx context.Context) ([]model.Booking, error)
	FindByID(ctx context.Context, id string) (model.Booking, bool, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, model model.Booking) error
	Update(ctx context.Context, id string, mutate func(*model.Booking) error) (model.Booking, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(st store.Store, cfg *config.Config, otel otel.Otel) Booking {
	var seed func() []model.Booking
	if cfg.Storage.Seed {
		seed = model.Seed
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.CollectionName, st, otel, seed),
	}
}
