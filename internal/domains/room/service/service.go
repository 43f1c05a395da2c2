package service

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/query"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const msgRoomNotFound = "Room not found"

var searchFields = []string{model.FieldNumber, model.FieldType}

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, q dto.Query) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Room
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Room, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.MissingRequired() {
		return res, failure.MissingRequiredFields
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, err := req.ToModel()
	if err != nil {
		return res, failure.InternalError(fmt.Errorf("failed to generate room id: %w", err))
	}

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	log.Info().Str("id", room.ID).Str("number", room.Number).Msg("Room added successfully")

	return dto.NewRoomResponse(room), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, q dto.Query) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	filter := query.All(
		query.Search(params.Search, searchFields...),
		query.Equal(model.FieldStatus, q.Status),
		query.Equal(model.FieldType, q.Type),
	)

	page := query.Paginate(query.Filter(rooms, filter), params.Page, params.Limit)

	return gDto.Map(page, dto.NewRoomResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	return dto.NewRoomResponse(room), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.MissingRequired() {
		return res, failure.MissingRequiredFields
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, found, err := s.repo.Update(ctx, id, func(room *model.Room) error {
		req.ApplyTo(room)

		if strings.TrimSpace(room.Number) == constant.Empty || room.Type == constant.Empty {
			return failure.MissingRequiredFields
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Msg("Room updated successfully")

	return dto.NewRoomResponse(room), nil
}

// Delete removes the room. Bookings that reference it are left in place.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if !deleted {
		return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Msg("Room deleted successfully")

	return nil
}
