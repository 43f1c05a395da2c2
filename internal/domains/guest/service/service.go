package service

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/query"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const msgGuestNotFound = "Guest not found"

var searchFields = []string{model.FieldName, model.FieldEmail, model.FieldPhone}

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, q dto.Query) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (dto.GuestResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Guest
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, otel otel.Otel) Guest {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func requiredFilled(guest model.Guest) bool {
	return strings.TrimSpace(guest.Name) != constant.Empty &&
		strings.TrimSpace(guest.Email) != constant.Empty &&
		strings.TrimSpace(guest.Phone) != constant.Empty
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.MissingRequired() {
		return res, failure.MissingRequiredFields
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	guest, err := req.ToModel()
	if err != nil {
		return res, failure.InternalError(fmt.Errorf("failed to generate guest id: %w", err))
	}

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	log.Info().Str("id", guest.ID).Msg("Guest added successfully")

	return dto.NewGuestResponse(guest), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, q dto.Query) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guests, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	filter := query.All(
		query.Search(params.Search, searchFields...),
		query.Equal(model.FieldCountry, q.Country),
	)

	page := query.Paginate(query.Filter(guests, filter), params.Page, params.Limit)

	return gDto.Map(page, dto.NewGuestResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgGuestNotFound) // nolint:wrapcheck
	}

	return dto.NewGuestResponse(guest), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
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

	guest, found, err := s.repo.Update(ctx, id, func(guest *model.Guest) error {
		req.ApplyTo(guest)

		if !requiredFilled(*guest) {
			return failure.MissingRequiredFields
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgGuestNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Msg("Guest updated successfully")

	return dto.NewGuestResponse(guest), nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	if !deleted {
		return failure.NotFound(msgGuestNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Msg("Guest deleted successfully")

	return nil
}
