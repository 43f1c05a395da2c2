package repository

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/store"
	"hotel/internal/domains/room/model"
	gRepo "hotel/shared/repository"
)

type Room interface {
	FindAll(ctx context.Context) ([]model.Room, error)
	FindByID(ctx context.Context, id string) (model.Room, bool, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, model model.Room) error
	Update(ctx context.Context, id string, mutate func(*model.Room) error) (model.Room, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(st store.Store, cfg *config.Config, otel otel.Otel) Room {
	var seed func() []model.Room
	if cfg.Storage.Seed {
		seed = model.Seed
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.CollectionName, st, otel, seed),
	}
}
