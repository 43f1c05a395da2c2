package dto

import (
	"hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
)

const (
	UnknownGuest = "Unknown Guest"
	UnknownRoom  = "Unknown Room"

	FieldGuestName  = "guestName"
	FieldRoomNumber = "roomNumber"
)

// EnrichedBooking is a booking joined to its guest and room. A dangling
// reference is replaced by a placeholder carrying the original id.
type EnrichedBooking struct {
	model.Booking
	Guest         guestModel.Guest
	Room          roomModel.Room
	GuestResolved bool
	RoomResolved  bool
}

func (e EnrichedBooking) FieldValue(field string) string {
	switch field {
	case FieldGuestName:
		return e.Guest.Name
	case FieldRoomNumber:
		return e.Room.Number
	default:
		return e.Booking.FieldValue(field)
	}
}

func unknownGuest(id string) guestModel.Guest {
	return guestModel.Guest{ID: id, Name: UnknownGuest}
}

func unknownRoom(id string) roomModel.Room {
	return roomModel.Room{ID: id, Number: UnknownRoom}
}

// Enrich resolves the guest and room of a single booking.
func Enrich(booking model.Booking, guests []guestModel.Guest, rooms []roomModel.Room) EnrichedBooking {
	res := EnrichedBooking{
		Booking: booking,
		Guest:   unknownGuest(booking.GuestID),
		Room:    unknownRoom(booking.RoomID),
	}

	for _, guest := range guests {
		if guest.ID == booking.GuestID {
			res.Guest, res.GuestResolved = guest, true

			break
		}
	}

	for _, room := range rooms {
		if room.ID == booking.RoomID {
			res.Room, res.RoomResolved = room, true

			break
		}
	}

	return res
}

// EnrichAll enriches bookings in order using id lookups built once.
func EnrichAll(bookings []model.Booking, guests []guestModel.Guest, rooms []roomModel.Room) []EnrichedBooking {
	guestByID := make(map[string]guestModel.Guest, len(guests))
	for _, guest := range guests {
		if _, ok := guestByID[guest.ID]; !ok {
			guestByID[guest.ID] = guest
		}
	}

	roomByID := make(map[string]roomModel.Room, len(rooms))
	for _, room := range rooms {
		if _, ok := roomByID[room.ID]; !ok {
			roomByID[room.ID] = room
		}
	}

	res := make([]EnrichedBooking, len(bookings))

	for i, booking := range bookings {
		enriched := EnrichedBooking{
			Booking: booking,
			Guest:   unknownGuest(booking.GuestID),
			Room:    unknownRoom(booking.RoomID),
		}

		if guest, ok := guestByID[booking.GuestID]; ok {
			enriched.Guest, enriched.GuestResolved = guest, true
		}

		if room, ok := roomByID[booking.RoomID]; ok {
			enriched.Room, enriched.RoomResolved = room, true
		}

		res[i] = enriched
	}

	return res
}
