package model

// Seed is written to an empty store the first time rooms are read.
func Seed() []Room {
	return []Room{
		{
			ID:        "101",
			Number:    "101",
			Type:      TypeSingle,
			Price:     120,
			Capacity:  1,
			Status:    StatusAvailable,
			Amenities: []string{"WiFi", "TV", "AC"},
		},
		{
			ID:        "102",
			Number:    "102",
			Type:      TypeDouble,
			Price:     180,
			Capacity:  2,
			Status:    StatusAvailable,
			Amenities: []string{"WiFi", "TV", "AC", "Mini-bar"},
		},
		{
			ID:        "201",
			Number:    "201",
			Type:      TypeSuite,
			Price:     300,
			Capacity:  4,
			Status:    StatusOccupied,
			Amenities: []string{"WiFi", "TV", "AC", "Mini-bar", "Jacuzzi"},
		},
	}
}
