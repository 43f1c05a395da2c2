package repository

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/store"
	"hotel/internal/domains/guest/model"
	gRepo "hotel/shared/repository"
)

type Guest interface {
	FindAll(ctx context.Context) ([]model.Guest, error)
	FindByID(ctx context.Context, id string) (model.Guest, bool, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, model model.Guest) error
	Update(ctx context.Context, id string, mutate func(*model.Guest) error) (model.Guest, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func New(st store.Store, cfg *config.Config, otel otel.Otel) Guest {
	var seed func() []model.Guest
	if cfg.Storage.Seed {
		seed = model.Seed
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.CollectionName, st, otel, seed),
	}
}
