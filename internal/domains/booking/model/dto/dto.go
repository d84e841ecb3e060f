package dto

import (
	"hostel/internal/domains/booking/model"
	"hostel/shared/constant"
)

// QuoteRequest prices a stay before it is booked. FoodPlanID follows the same
// rules as CreateBookingRequest.
type QuoteRequest struct {
	RoomID     string  `json:"roomId"`
	FoodPlanID *string `json:"foodPlanId"`
	CheckIn    string  `json:"checkin"`
	CheckOut   string  `json:"checkout"`
}

type QuoteResponse struct {
	model.Cost
	RoomPrice    int    `json:"roomPrice"`
	FoodPlanName string `json:"foodPlanName"`
	FoodPrice    int    `json:"foodPrice"`
}

// CreateBookingRequest is the booking form. A nil FoodPlanID uses the plan
// picked earlier in the session and an empty one books without food.
type CreateBookingRequest struct {
	RoomID     string  `json:"roomId"     validate:"notblank"`
	FoodPlanID *string `json:"foodPlanId"`
	CheckIn    string  `json:"checkin"    validate:"required,calendardate"`
	CheckOut   string  `json:"checkout"   validate:"required,calendardate"`
	Notes      string  `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"oneof=approved rejected"`
}

type UpdateStatusResponse struct {
	Outcome constant.Outcome `json:"outcome"`
	Booking *model.Booking   `json:"booking,omitempty"`
}
