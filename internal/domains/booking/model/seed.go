package model

// Seed is written to an empty store the first time bookings are read.
func Seed() []Booking {
	return []Booking{
		{
			ID:              "1",
			GuestID:         "1",
			RoomID:          "201",
			CheckIn:         "2024-01-15",
			CheckOut:        "2024-01-20",
			Status:          StatusCheckedIn,
			PaymentStatus:   PaymentPaid,
			SpecialRequests: "Extra pillows please",
			TotalAmount:     1500,
		},
	}
}
