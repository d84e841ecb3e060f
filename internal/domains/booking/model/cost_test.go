package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostel/internal/domains/booking/model"
	foodModel "hostel/internal/domains/food/model"
	roomModel "hostel/internal/domains/room/model"
)

func TestDays(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{name: "three nights", checkIn: "2024-01-01", checkOut: "2024-01-04", expected: 3},
		{name: "same day", checkIn: "2024-01-01", checkOut: "2024-01-01", expected: 1},
		{name: "checkout before checkin", checkIn: "2024-01-05", checkOut: "2024-01-01", expected: 1},
		{name: "across leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", expected: 2},
		{name: "month", checkIn: "2024-01-01", checkOut: "2024-02-01", expected: 31},
		{name: "unreadable checkin", checkIn: "soon", checkOut: "2024-01-04", expected: 1},
		{name: "missing checkout", checkIn: "2024-01-01", checkOut: "", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Days(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeCost(t *testing.T) {
	room := roomModel.Room{ID: "r3", Price: 800}
	food := foodModel.FoodPlan{ID: "f2", Price: 200}

	tests := []struct {
		name     string
		food     *foodModel.FoodPlan
		checkOut string
		expected model.Cost
	}{
		{
			name:     "room and food",
			food:     &food,
			checkOut: "2024-01-04",
			expected: model.Cost{Days: 3, RoomCost: 2400, FoodCost: 600, TotalCost: 3000},
		},
		{
			name:     "room only",
			checkOut: "2024-01-04",
			expected: model.Cost{Days: 3, RoomCost: 2400, FoodCost: 0, TotalCost: 2400},
		},
		{
			name:     "minimum one day",
			food:     &food,
			checkOut: "2024-01-01",
			expected: model.Cost{Days: 1, RoomCost: 800, FoodCost: 200, TotalCost: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := model.ComputeCost(room, tt.food, "2024-01-01", tt.checkOut)
			assert.Equal(t, tt.expected, cost)
			assert.Equal(t, cost.RoomCost+cost.FoodCost, cost.TotalCost)
		})
	}
}
