package model

import (
	"math"

	foodModel "hostel/internal/domains/food/model"
	roomModel "hostel/internal/domains/room/model"
	"hostel/shared/constant"
	"hostel/shared/timezone"
)

type Cost struct {
	Days      int `json:"days"`
	RoomCost  int `json:"roomCost"`
	FoodCost  int `json:"foodCost"`
	TotalCost int `json:"totalCost"`
}

// Days counts started days between two calendar dates, never fewer than one.
// Unreadable dates count as one day.
func Days(checkIn, checkOut string) int {
	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return 1
	}

	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return 1
	}

	days := int(math.Ceil(out.Sub(in).Hours() / constant.HoursPerDay))

	return max(1, days)
}

// ComputeCost prices a stay. food may be nil.
func ComputeCost(room roomModel.Room, food *foodModel.FoodPlan, checkIn, checkOut string) Cost {
	days := Days(checkIn, checkOut)
	cost := Cost{
		Days:     days,
		RoomCost: room.Price * days,
	}

	if food != nil {
		cost.FoodCost = food.Price * days
	}

	cost.TotalCost = cost.RoomCost + cost.FoodCost

	return cost
}
