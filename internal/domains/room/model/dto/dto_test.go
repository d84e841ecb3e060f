package dto_test

import (
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveRoomRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.SaveRoomRequest
		expected model.Room
	}{
		{
			name: "normalizes fields",
			req: dto.SaveRoomRequest{
				Name:      "  Lake View  ",
				Type:      "double",
				Price:     " 900 ",
				Status:    "occupied",
				Desc:      " Quiet room ",
				Amenities: "Wi-Fi, AC,, Balcony ",
			},
			expected: model.Room{
				ID:        "r-1",
				Name:      "Lake View",
				Type:      "double",
				Price:     900,
				Status:    "occupied",
				Desc:      "Quiet room",
				Amenities: []string{"Wi-Fi", "AC", "Balcony"},
			},
		},
		{
			name: "defaults status and zeroes unreadable price",
			req: dto.SaveRoomRequest{
				Name:  "Attic",
				Type:  "single",
				Price: "cheap",
			},
			expected: model.Room{
				ID:        "r-1",
				Name:      "Attic",
				Type:      "single",
				Price:     0,
				Status:    "available",
				Amenities: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToModel("r-1"))
		})
	}
}
