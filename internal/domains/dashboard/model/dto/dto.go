package dto

import (
	bookingModel "hostel/internal/domains/booking/model"
	userModel "hostel/internal/domains/user/model"
)

// RecentBookingsLimit caps Stats.RecentBookings.
const RecentBookingsLimit = 5

type Stats struct {
	TotalRooms       int                    `json:"totalRooms"`
	AvailableRooms   int                    `json:"availableRooms"`
	OccupiedRooms    int                    `json:"occupiedRooms"`
	OccupiedPercent  int                    `json:"occupiedPercent"`
	AvailablePercent int                    `json:"availablePercent"`
	TotalBookings    int                    `json:"totalBookings"`
	PendingBookings  int                    `json:"pendingBookings"`
	TotalRevenue     int                    `json:"totalRevenue"`
	TotalCustomers   int                    `json:"totalCustomers"`
	TotalFoodPlans   int                    `json:"totalFoodPlans"`
	RecentBookings   []bookingModel.Booking `json:"recentBookings"`
}

type Customer struct {
	userModel.Profile
	BookingCount int `json:"bookingCount"`
}
