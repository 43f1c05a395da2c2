package model

// Seed is written to an empty store the first time guests are read.
func Seed() []Guest {
	return []Guest{
		{
			ID:    "1",
			Name:  "John Smith",
			Email: "john@example.com",
			Phone: "+1-555-123-4567",
			Address: Address{
				Street:  "123 Main St",
				City:    "New York",
				Country: "USA",
			},
		},
		{
			ID:    "2",
			Name:  "Emma Johnson",
			Email: "emma@example.com",
			Phone: "+1-555-987-6543",
			Address: Address{
				Street:  "456 Oak Ave",
				City:    "Los Angeles",
				Country: "USA",
			},
		},
	}
}
