package model

const (
	EntityName = "booking"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	// NoFoodPlanName is recorded when a booking has no food plan.
	NoFoodPlanName = "None"

	EventCreated       = "booking.created"
	EventStatusUpdated = "booking.status_updated"
)

// Booking keeps copies of room and food plan names and prices as they were when
// it was made, so catalog edits never change past bookings.
type Booking struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	RoomID       string  `json:"roomId"`
	RoomName     string  `json:"roomName"`
	RoomType     string  `json:"roomType"`
	RoomPrice    int     `json:"roomPrice"`
	FoodPlanID   *string `json:"foodPlanId"`
	FoodPlanName string  `json:"foodPlanName"`
	FoodPrice    int     `json:"foodPrice"`
	CheckIn      string  `json:"checkin"`
	CheckOut     string  `json:"checkout"`
	Days         int     `json:"days"`
	RoomCost     int     `json:"roomCost"`
	FoodCost     int     `json:"foodCost"`
	TotalCost    int     `json:"totalCost"`
	Notes        string  `json:"notes"`
	Status       string  `json:"status"`
	BookedAt     string  `json:"bookedAt"`
}

// Event is the payload published for every booking change.
type Event struct {
	Type       string  `json:"type"`
	OccurredAt string  `json:"occurredAt"`
	Booking    Booking `json:"booking"`
}
