package dto

import (
	"hostel/internal/domains/room/model"
	"hostel/shared"
	"hostel/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

// SaveRoomRequest mirrors the admin room form. Price and amenities arrive as raw text.
type SaveRoomRequest struct {
	Name      string      `json:"name"      validate:"notblank"`
	Type      string      `json:"type"      validate:"oneof=single double shared"`
	Price     shared.Text `json:"price"`
	Status    string      `json:"status"    validate:"omitempty,oneof=available occupied"`
	Desc      string      `json:"desc"`
	Amenities string      `json:"amenities"`
}

// ToModel normalizes the form. An unreadable price is stored as 0 rather than rejected.
func (r *SaveRoomRequest) ToModel(id string) model.Room {
	price, ok := shared.ParseLeadingInt(r.Price.String())
	if !ok {
		log.Warn().Str("price", r.Price.String()).Str("room", r.Name).Msg("room price is not a number, storing 0")
	}

	status := strings.TrimSpace(r.Status)
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:        id,
		Name:      strings.TrimSpace(r.Name),
		Type:      strings.TrimSpace(r.Type),
		Price:     price,
		Status:    status,
		Desc:      strings.TrimSpace(r.Desc),
		Amenities: shared.SplitList(r.Amenities),
	}
}

type SaveRoomResponse struct {
	Outcome constant.Outcome `json:"outcome"`
	Room    *model.Room      `json:"room,omitempty"`
}

type DeleteRoomResponse struct {
	Outcome constant.Outcome `json:"outcome"`
}
