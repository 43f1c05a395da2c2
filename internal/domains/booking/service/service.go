package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/pricing"
	"hotel/internal/domains/booking/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepository "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/query"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const msgBookingNotFound = "Booking not found"

var searchFields = []string{dto.FieldGuestName, dto.FieldRoomNumber}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, q dto.Query) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	AvailableRooms(ctx context.Context) ([]roomDto.RoomResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	guests guestRepository.Guest
	rooms  roomRepository.Room
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Booking, guests guestRepository.Guest, rooms roomRepository.Room, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		guests: guests,
		rooms:  rooms,
		cfg:    cfg,
		otel:   otel,
	}
}

func checkRecord(booking model.Booking) error {
	if strings.TrimSpace(booking.GuestID) == constant.Empty || strings.TrimSpace(booking.RoomID) == constant.Empty ||
		booking.CheckIn == constant.Empty || booking.CheckOut == constant.Empty {
		return failure.MissingRequiredFields
	}

	_, err := pricing.Stay(booking.CheckIn, booking.CheckOut)
	if errors.Is(err, pricing.ErrInvalidRange) {
		return failure.InvalidDateRange
	}

	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	return nil
}

// priceStay sets TotalAmount from the room's nightly rate. When the room
// cannot be found the booking keeps the amount it already carries.
func (s *serviceImpl) priceStay(ctx context.Context, booking *model.Booking) error {
	room, found, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		log.Warn().Str("room_id", booking.RoomID).Msg("room not found, keeping supplied total amount")

		return nil
	}

	nights, err := pricing.Stay(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	booking.TotalAmount = pricing.ComputeTotal(room.Price, nights)

	return nil
}

func (s *serviceImpl) enrich(ctx context.Context, bookings []model.Booking) ([]dto.EnrichedBooking, error) {
	guests, err := s.guests.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}

	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.EnrichAll(bookings, guests, rooms), nil
}

func (s *serviceImpl) respond(ctx context.Context, booking model.Booking) (dto.BookingResponse, error) {
	guest, _, err := s.guests.FindByID(ctx, booking.GuestID)
	if err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to get guest: %w", err)
	}

	room, _, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to get room: %w", err)
	}

	var (
		guests []guestModel.Guest
		rooms  []roomModel.Room
	)

	if guest.ID != constant.Empty {
		guests = append(guests, guest)
	}

	if room.ID != constant.Empty {
		rooms = append(rooms, room)
	}

	return dto.NewBookingResponse(dto.Enrich(booking, guests, rooms)), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.MissingRequired() {
		return res, failure.MissingRequiredFields
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking, err := req.ToModel()
	if err != nil {
		return res, failure.InternalError(fmt.Errorf("failed to generate booking id: %w", err))
	}

	if err = checkRecord(booking); err != nil {
		return res, err
	}

	if err = s.priceStay(ctx, &booking); err != nil {
		log.Error().Err(err).Msg("failed to price booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("id", booking.ID).Float64("total", booking.TotalAmount).Msg("Booking created successfully")

	return s.respond(ctx, booking)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, q dto.Query) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	enriched, err := s.enrich(ctx, bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to enrich bookings")

		return res, err
	}

	filter := query.All(
		query.Search(params.Search, searchFields...),
		query.Equal(model.FieldStatus, q.Status),
		query.Equal(model.FieldPaymentStatus, q.PaymentStatus),
	)

	page := query.Paginate(query.Filter(enriched, filter), params.Page, params.Limit)

	return gDto.Map(page, dto.NewBookingResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	return s.respond(ctx, booking)
}

// Update merges req into the stored booking. The total is re-priced only when
// the room or either date changes; otherwise the stored snapshot is kept.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking, found, err := s.repo.Update(ctx, id, func(booking *model.Booking) error {
		before := *booking
		req.ApplyTo(booking)

		if err := checkRecord(*booking); err != nil {
			return err
		}

		if dto.PricingChanged(before, *booking) {
			return s.priceStay(ctx, booking)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Msg("Booking updated successfully")

	return s.respond(ctx, booking)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if !deleted {
		return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	log.Info().Str("id", id).Msg("Booking deleted successfully")

	return nil
}

// AvailableRooms lists the rooms a new booking may be placed in.
func (s *serviceImpl) AvailableRooms(ctx context.Context) (res []roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	res = []roomDto.RoomResponse{}
	for _, room := range rooms {
		if room.IsAvailable() {
			res = append(res, roomDto.NewRoomResponse(room))
		}
	}

	return res, nil
}
