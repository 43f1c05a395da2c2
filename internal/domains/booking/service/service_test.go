package service_test

import (
	"context"
	"net/http"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/store"
	storeMocks "hotel/infras/store/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	guestRepository "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	svc   service.Booking
	rooms roomRepository.Room
}

func newFixture(st store.Store) fixture {
	cfg := &config.Config{}
	cfg.Storage.Seed = true
	mockOtel := otelMocks.NewOtel()

	rooms := roomRepository.New(st, cfg, mockOtel)

	return fixture{
		svc: service.New(
			repository.New(st, cfg, mockOtel),
			guestRepository.New(st, cfg, mockOtel),
			rooms,
			cfg,
			mockOtel,
		),
		rooms: rooms,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		wantTotal float64
		wantErr   error
		wantCode  int
	}{
		{
			name:      "priced from room rate",
			req:       dto.CreateBookingRequest{GuestID: "2", RoomID: "201", CheckIn: "2024-01-15", CheckOut: "2024-01-20"},
			wantTotal: 1500,
		},
		{
			name:      "client total ignored when room resolves",
			req:       dto.CreateBookingRequest{GuestID: "2", RoomID: "101", CheckIn: "2024-02-01", CheckOut: "2024-02-03", TotalAmount: ptr(1.0)},
			wantTotal: 240,
		},
		{
			name:      "unknown room keeps client total",
			req:       dto.CreateBookingRequest{GuestID: "2", RoomID: "999", CheckIn: "2024-02-01", CheckOut: "2024-02-03", TotalAmount: ptr(99.5)},
			wantTotal: 99.5,
		},
		{
			name:      "unknown room defaults to zero",
			req:       dto.CreateBookingRequest{GuestID: "2", RoomID: "999", CheckIn: "2024-02-01", CheckOut: "2024-02-03"},
			wantTotal: 0,
		},
		{
			name:    "missing check-out",
			req:     dto.CreateBookingRequest{GuestID: "2", RoomID: "101", CheckIn: "2024-02-01"},
			wantErr: failure.MissingRequiredFields,
		},
		{
			name:    "check-out before check-in",
			req:     dto.CreateBookingRequest{GuestID: "2", RoomID: "101", CheckIn: "2024-02-03", CheckOut: "2024-02-01"},
			wantErr: failure.InvalidDateRange,
		},
		{
			name:    "same day",
			req:     dto.CreateBookingRequest{GuestID: "2", RoomID: "101", CheckIn: "2024-02-03", CheckOut: "2024-02-03"},
			wantErr: failure.InvalidDateRange,
		},
		{
			name:     "malformed date",
			req:      dto.CreateBookingRequest{GuestID: "2", RoomID: "101", CheckIn: "02/03/2024", CheckOut: "2024-02-05"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown status",
			req:      dto.CreateBookingRequest{GuestID: "2", RoomID: "101", CheckIn: "2024-02-03", CheckOut: "2024-02-05", Status: "lost"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(store.NewMemory(0))

			res, err := f.svc.Create(ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantCode != 0:
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.InDelta(t, tt.wantTotal, res.TotalAmount, 0.0001)

				got, err := f.svc.Get(ctx, res.ID)
				require.NoError(t, err)
				assert.Equal(t, res, got)
			}

			if err != nil {
				all, err := f.svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 5}, dto.Query{})
				require.NoError(t, err)
				assert.Equal(t, 1, all.TotalData)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(store.NewMemory(0))

	_, err := f.svc.Create(ctx, dto.CreateBookingRequest{
		GuestID: "2", RoomID: "102", CheckIn: "2024-05-01", CheckOut: "2024-05-02", PaymentStatus: model.PaymentPending,
	})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, dto.CreateBookingRequest{
		GuestID: "ghost", RoomID: "101", CheckIn: "2024-05-01", CheckOut: "2024-05-02", Status: model.StatusCancelled,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		params gDto.QueryParams
		query  dto.Query
		want   []string
	}{
		{name: "all in order", params: gDto.QueryParams{Page: 1, Limit: 5}, want: []string{"John Smith", "Emma Johnson", "Unknown Guest"}},
		{name: "search guest name", params: gDto.QueryParams{Page: 1, Limit: 5, Search: "emma"}, want: []string{"Emma Johnson"}},
		{name: "search room number", params: gDto.QueryParams{Page: 1, Limit: 5, Search: "201"}, want: []string{"John Smith"}},
		{name: "search placeholder", params: gDto.QueryParams{Page: 1, Limit: 5, Search: "unknown"}, want: []string{"Unknown Guest"}},
		{name: "status filter", params: gDto.QueryParams{Page: 1, Limit: 5}, query: dto.Query{Status: model.StatusCancelled}, want: []string{"Unknown Guest"}},
		{name: "payment filter", params: gDto.QueryParams{Page: 1, Limit: 5}, query: dto.Query{PaymentStatus: model.PaymentPaid}, want: []string{"John Smith"}},
		{name: "second page", params: gDto.QueryParams{Page: 2, Limit: 2}, want: []string{"Unknown Guest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.GetAll(ctx, tt.params, tt.query)
			require.NoError(t, err)

			names := []string{}
			for _, booking := range res.Items {
				names = append(names, booking.Guest.Name)
			}

			assert.Equal(t, tt.want, names)
		})
	}
}

func TestBookingService_DanglingRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(store.NewMemory(0))

	deleted, err := f.rooms.Delete(ctx, "201")
	require.NoError(t, err)
	require.True(t, deleted)

	res, err := f.svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Room", res.Room.Number)
	assert.Equal(t, "201", res.Room.ID)
	assert.InDelta(t, 1500.0, res.TotalAmount, 0.0001)
}

func TestBookingService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(store.NewMemory(0))

	res, err := f.svc.Update(ctx, dto.UpdateBookingRequest{PaymentStatus: ptr(model.PaymentRefunded)}, "1")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRefunded, res.PaymentStatus)
	assert.Equal(t, model.StatusCheckedIn, res.Status)
	assert.InDelta(t, 1500.0, res.TotalAmount, 0.0001)

	// a later price change does not touch the stored snapshot
	_, _, err = f.rooms.Update(ctx, "201", func(room *roomModel.Room) error {
		room.Price = 1000

		return nil
	})
	require.NoError(t, err)

	res, err = f.svc.Update(ctx, dto.UpdateBookingRequest{SpecialRequests: ptr("Late check-out")}, "1")
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, res.TotalAmount, 0.0001)

	res, err = f.svc.Update(ctx, dto.UpdateBookingRequest{CheckOut: ptr("2024-01-17")}, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Nights)
	assert.InDelta(t, 2000.0, res.TotalAmount, 0.0001)

	_, err = f.svc.Update(ctx, dto.UpdateBookingRequest{CheckOut: ptr("2024-01-10")}, "1")
	assert.ErrorIs(t, err, failure.InvalidDateRange)

	_, err = f.svc.Update(ctx, dto.UpdateBookingRequest{Status: ptr(model.StatusCancelled)}, "missing")
	assert.True(t, failure.IsNotFound(err))

	_, err = f.svc.Update(ctx, dto.UpdateBookingRequest{}, "1")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	got, err := f.svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-17", got.CheckOut)
}

func TestBookingService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(store.NewMemory(0))

	require.NoError(t, f.svc.Delete(ctx, "1"))

	_, err := f.svc.Get(ctx, "1")
	assert.True(t, failure.IsNotFound(err))
	assert.True(t, failure.IsNotFound(f.svc.Delete(ctx, "1")))
}

func TestBookingService_AvailableRooms(t *testing.T) {
	f := newFixture(store.NewMemory(0))

	rooms, err := f.svc.AvailableRooms(context.Background())
	require.NoError(t, err)

	numbers := []string{}
	for _, room := range rooms {
		numbers = append(numbers, room.Number)
	}

	assert.Equal(t, []string{"101", "102"}, numbers)
}

func TestBookingService_StorageFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	st := storeMocks.NewMockStore(ctrl)

	st.EXPECT().Get(gomock.Any(), roomModel.CollectionName).Return(nil, false, store.ErrQuotaExceeded)

	_, err := newFixture(st).svc.Create(ctx, dto.CreateBookingRequest{
		GuestID: "1", RoomID: "101", CheckIn: "2024-01-01", CheckOut: "2024-01-02",
	})
	assert.Equal(t, http.StatusInsufficientStorage, failure.GetCode(err))
}
