package dto

import (
	"strings"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/pricing"
	gDto "hotel/shared/dto"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID         string   `json:"guestId"         validate:"notblank"`
	RoomID          string   `json:"roomId"          validate:"notblank"`
	CheckIn         string   `json:"checkIn"         validate:"required,date"`
	CheckOut        string   `json:"checkOut"        validate:"required,date"`
	Status          string   `json:"status"          validate:"omitempty,oneof=confirmed checked-in checked-out cancelled pending"`
	PaymentStatus   string   `json:"paymentStatus"   validate:"omitempty,oneof=pending paid partially-paid refunded"`
	SpecialRequests string   `json:"specialRequests" validate:"max=1000"`
	TotalAmount     *float64 `json:"totalAmount"     validate:"omitempty,gte=0"`
}

// MissingRequired reports whether guest, room or either date is blank.
func (c *CreateBookingRequest) MissingRequired() bool {
	return strings.TrimSpace(c.GuestID) == "" || strings.TrimSpace(c.RoomID) == "" ||
		strings.TrimSpace(c.CheckIn) == "" || strings.TrimSpace(c.CheckOut) == ""
}

// ToModel fills the form defaults: confirmed, payment pending, total 0.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	booking := model.Booking{
		ID:              id.String(),
		GuestID:         strings.TrimSpace(c.GuestID),
		RoomID:          strings.TrimSpace(c.RoomID),
		CheckIn:         c.CheckIn,
		CheckOut:        c.CheckOut,
		Status:          c.Status,
		PaymentStatus:   c.PaymentStatus,
		SpecialRequests: strings.TrimSpace(c.SpecialRequests),
	}

	if booking.Status == "" {
		booking.Status = model.StatusConfirmed
	}

	if booking.PaymentStatus == "" {
		booking.PaymentStatus = model.PaymentPending
	}

	if c.TotalAmount != nil {
		booking.TotalAmount = *c.TotalAmount
	}

	return booking, nil
}

// UpdateBookingRequest is a partial update. Nil fields keep their stored value.
type UpdateBookingRequest struct {
	GuestID         *string  `json:"guestId"         validate:"omitempty"`
	RoomID          *string  `json:"roomId"          validate:"omitempty"`
	CheckIn         *string  `json:"checkIn"         validate:"omitempty,date"`
	CheckOut        *string  `json:"checkOut"        validate:"omitempty,date"`
	Status          *string  `json:"status"          validate:"omitempty,oneof=confirmed checked-in checked-out cancelled pending"`
	PaymentStatus   *string  `json:"paymentStatus"   validate:"omitempty,oneof=pending paid partially-paid refunded"`
	SpecialRequests *string  `json:"specialRequests" validate:"omitempty,max=1000"`
	TotalAmount     *float64 `json:"totalAmount"     validate:"omitempty,gte=0"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.GuestID == nil && u.RoomID == nil && u.CheckIn == nil && u.CheckOut == nil &&
		u.Status == nil && u.PaymentStatus == nil && u.SpecialRequests == nil && u.TotalAmount == nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (u *UpdateBookingRequest) ApplyTo(booking *model.Booking) {
	assign(&booking.GuestID, u.GuestID)
	assign(&booking.RoomID, u.RoomID)
	assign(&booking.CheckIn, u.CheckIn)
	assign(&booking.CheckOut, u.CheckOut)
	assign(&booking.Status, u.Status)
	assign(&booking.PaymentStatus, u.PaymentStatus)
	assign(&booking.SpecialRequests, u.SpecialRequests)

	if u.TotalAmount != nil {
		booking.TotalAmount = *u.TotalAmount
	}
}

// PricingChanged reports whether before and after differ in room or dates.
func PricingChanged(before, after model.Booking) bool {
	return before.RoomID != after.RoomID || before.CheckIn != after.CheckIn || before.CheckOut != after.CheckOut
}

type GuestSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type RoomSummary struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	Type     string  `json:"type,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Capacity int     `json:"capacity,omitempty"`
}

type BookingResponse struct {
	ID              string       `json:"id"`
	GuestID         string       `json:"guestId"`
	RoomID          string       `json:"roomId"`
	Guest           GuestSummary `json:"guest"`
	Room            RoomSummary  `json:"room"`
	CheckIn         string       `json:"checkIn"`
	CheckOut        string       `json:"checkOut"`
	Nights          int          `json:"nights"`
	Status          string       `json:"status"`
	PaymentStatus   string       `json:"paymentStatus"`
	SpecialRequests string       `json:"specialRequests"`
	TotalAmount     float64      `json:"totalAmount"`
}

func (r *BookingResponse) FromEnriched(enriched EnrichedBooking) {
	r.ID = enriched.ID
	r.GuestID = enriched.GuestID
	r.RoomID = enriched.RoomID
	r.Guest = GuestSummary{
		ID:    enriched.Guest.ID,
		Name:  enriched.Guest.Name,
		Email: enriched.Guest.Email,
		Phone: enriched.Guest.Phone,
	}
	r.Room = RoomSummary{
		ID:       enriched.Room.ID,
		Number:   enriched.Room.Number,
		Type:     enriched.Room.Type,
		Price:    enriched.Room.Price,
		Capacity: enriched.Room.Capacity,
	}
	r.CheckIn = enriched.CheckIn
	r.CheckOut = enriched.CheckOut
	r.Status = enriched.Status
	r.PaymentStatus = enriched.PaymentStatus
	r.SpecialRequests = enriched.SpecialRequests
	r.TotalAmount = enriched.TotalAmount

	if nights, err := pricing.Stay(enriched.CheckIn, enriched.CheckOut); err == nil {
		r.Nights = nights
	}
}

func NewBookingResponse(enriched EnrichedBooking) BookingResponse {
	var res BookingResponse
	res.FromEnriched(enriched)

	return res
}

type GetBookingsResponse = gDto.Page[BookingResponse]

// Query narrows a booking listing. Search matches guest name or room number.
type Query struct {
	Status        string
	PaymentStatus string
}
