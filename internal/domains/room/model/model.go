package model

const (
	EntityName = "room"

	TypeSingle = "single"
	TypeDouble = "double"
	TypeShared = "shared"

	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

type Room struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Price     int      `json:"price"`
	Status    string   `json:"status"`
	Desc      string   `json:"desc"`
	Amenities []string `json:"amenities"`
}

// Seed is the catalog served until an admin edits it.
func Seed() []Room {
	return []Room{
		{
			ID: "r1", Name: "Sunrise Single", Type: TypeSingle, Price: 500, Status: StatusAvailable,
			Desc:      "A cozy single room with natural sunlight, study desk, and wardrobe.",
			Amenities: []string{"Wi-Fi", "AC", "Study Desk", "Wardrobe"},
		},
		{
			ID: "r2", Name: "Classic Single", Type: TypeSingle, Price: 450, Status: StatusAvailable,
			Desc:      "Comfortable single room ideal for focused study and peaceful living.",
			Amenities: []string{"Wi-Fi", "Fan", "Study Desk", "Bookshelf"},
		},
		{
			ID: "r3", Name: "Deluxe Double", Type: TypeDouble, Price: 800, Status: StatusAvailable,
			Desc:      "Spacious double sharing room with attached bathroom and balcony.",
			Amenities: []string{"Wi-Fi", "AC", "Balcony", "Bathroom"},
		},
		{
			ID: "r4", Name: "Comfort Double", Type: TypeDouble, Price: 700, Status: StatusAvailable,
			Desc:      "Well-furnished double sharing room with large windows and storage.",
			Amenities: []string{"Wi-Fi", "Fan", "Storage", "Mirror"},
		},
		{
			ID: "r5", Name: "Economy Shared", Type: TypeShared, Price: 350, Status: StatusAvailable,
			Desc:      "4-bed shared dormitory with individual lockers and common area.",
			Amenities: []string{"Wi-Fi", "Fan", "Locker", "Common Area"},
		},
		{
			ID: "r6", Name: "Premium Shared", Type: TypeShared, Price: 400, Status: StatusAvailable,
			Desc:      "3-bed shared room with AC, personal locker, and study space.",
			Amenities: []string{"Wi-Fi", "AC", "Locker", "Study Area"},
		},
		{
			ID: "r7", Name: "Royal Suite Single", Type: TypeSingle, Price: 650, Status: StatusAvailable,
			Desc:      "Premium single room with mini-fridge, attached bath, and city view.",
			Amenities: []string{"Wi-Fi", "AC", "Mini-Fridge", "City View"},
		},
		{
			ID: "r8", Name: "Garden Double", Type: TypeDouble, Price: 750, Status: StatusAvailable,
			Desc:      "Double room overlooking the garden area with fresh ventilation.",
			Amenities: []string{"Wi-Fi", "AC", "Garden View", "Wardrobe"},
		},
	}
}
