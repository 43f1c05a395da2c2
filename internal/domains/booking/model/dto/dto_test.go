package dto_test

import (
	"testing"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestEnrich(t *testing.T) {
	guests := guestModel.Seed()
	rooms := roomModel.Seed()
	booking := model.Seed()[0]

	tests := []struct {
		name        string
		booking     model.Booking
		guests      []guestModel.Guest
		rooms       []roomModel.Room
		wantGuest   string
		wantRoom    string
		wantResolve [2]bool
	}{
		{
			name:        "both resolved",
			booking:     booking,
			guests:      guests,
			rooms:       rooms,
			wantGuest:   "John Smith",
			wantRoom:    "201",
			wantResolve: [2]bool{true, true},
		},
		{
			name:        "deleted room",
			booking:     booking,
			guests:      guests,
			rooms:       rooms[:2],
			wantGuest:   "John Smith",
			wantRoom:    dto.UnknownRoom,
			wantResolve: [2]bool{true, false},
		},
		{
			name:        "deleted guest",
			booking:     booking,
			guests:      nil,
			rooms:       rooms,
			wantGuest:   dto.UnknownGuest,
			wantRoom:    "201",
			wantResolve: [2]bool{false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, got := range []dto.EnrichedBooking{
				dto.Enrich(tt.booking, tt.guests, tt.rooms),
				dto.EnrichAll([]model.Booking{tt.booking}, tt.guests, tt.rooms)[0],
			} {
				assert.Equal(t, tt.wantGuest, got.Guest.Name)
				assert.Equal(t, tt.wantRoom, got.Room.Number)
				assert.Equal(t, tt.booking.GuestID, got.Guest.ID)
				assert.Equal(t, tt.booking.RoomID, got.Room.ID)
				assert.Equal(t, tt.wantResolve, [2]bool{got.GuestResolved, got.RoomResolved})
				assert.Equal(t, tt.booking, got.Booking)
			}
		})
	}
}

func TestEnrichedFieldValue(t *testing.T) {
	got := dto.Enrich(model.Seed()[0], guestModel.Seed(), roomModel.Seed())

	assert.Equal(t, "John Smith", got.FieldValue(dto.FieldGuestName))
	assert.Equal(t, "201", got.FieldValue(dto.FieldRoomNumber))
	assert.Equal(t, model.StatusCheckedIn, got.FieldValue(model.FieldStatus))
	assert.Equal(t, "1500.00", got.FieldValue(model.FieldTotalAmount))
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestID:  "1",
		RoomID:   "101",
		CheckIn:  "2024-03-01",
		CheckOut: "2024-03-04",
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
	assert.Zero(t, booking.TotalAmount)
	assert.False(t, req.MissingRequired())
	assert.True(t, (&dto.CreateBookingRequest{GuestID: "1", RoomID: "101", CheckIn: "2024-03-01"}).MissingRequired())
}

func TestUpdateBookingRequest_ApplyTo(t *testing.T) {
	before := model.Seed()[0]

	got := before
	req := dto.UpdateBookingRequest{PaymentStatus: ptr(model.PaymentRefunded)}
	req.ApplyTo(&got)

	want := before
	want.PaymentStatus = model.PaymentRefunded
	assert.Equal(t, want, got)
	assert.False(t, dto.PricingChanged(before, got))

	req = dto.UpdateBookingRequest{CheckOut: ptr("2024-01-22")}
	req.ApplyTo(&got)
	assert.True(t, dto.PricingChanged(before, got))
	assert.True(t, (&dto.UpdateBookingRequest{}).IsEmpty())
}

func TestBookingResponse_FromEnriched(t *testing.T) {
	res := dto.NewBookingResponse(dto.Enrich(model.Seed()[0], guestModel.Seed(), nil))

	assert.Equal(t, "1", res.ID)
	assert.Equal(t, 5, res.Nights)
	assert.Equal(t, dto.UnknownRoom, res.Room.Number)
	assert.Equal(t, "201", res.Room.ID)
	assert.Equal(t, "john@example.com", res.Guest.Email)
	assert.InDelta(t, 1500.0, res.TotalAmount, 0.0001)
}
