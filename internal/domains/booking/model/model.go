package model

import (
	"strconv"

	"hotel/shared/constant"
)

const (
	CollectionName = constant.CollectionBookings
	EntityName     = "booking"

	FieldID              = "_id"
	FieldGuestID         = "guestId"
	FieldRoomID          = "roomId"
	FieldCheckIn         = "checkIn"
	FieldCheckOut        = "checkOut"
	FieldStatus          = "status"
	FieldPaymentStatus   = "paymentStatus"
	FieldSpecialRequests = "specialRequests"
	FieldTotalAmount     = "totalAmount"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"
	StatusPending    = "pending"
)

const (
	PaymentPending       = "pending"
	PaymentPaid          = "paid"
	PaymentPartiallyPaid = "partially-paid"
	PaymentRefunded      = "refunded"
)

// Booking references its guest and room by id only; neither is required to exist.
type Booking struct {
	ID              string  `json:"_id"`
	GuestID         string  `json:"guestId"`
	RoomID          string  `json:"roomId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	SpecialRequests string  `json:"specialRequests"`
	TotalAmount     float64 `json:"totalAmount"`
}

func (b Booking) GetID() string {
	return b.ID
}

func (b Booking) FieldValue(field string) string {
	switch field {
	case FieldID:
		return b.ID
	case FieldGuestID:
		return b.GuestID
	case FieldRoomID:
		return b.RoomID
	case FieldCheckIn:
		return b.CheckIn
	case FieldCheckOut:
		return b.CheckOut
	case FieldStatus:
		return b.Status
	case FieldPaymentStatus:
		return b.PaymentStatus
	case FieldSpecialRequests:
		return b.SpecialRequests
	case FieldTotalAmount:
		return strconv.FormatFloat(b.TotalAmount, 'f', 2, 64)
	default:
		return ""
	}
}
