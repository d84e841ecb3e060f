package dto

import (
	"hostel/internal/domains/food/model"
	"hostel/shared"
	"hostel/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

// SaveFoodPlanRequest mirrors the admin food plan form.
type SaveFoodPlanRequest struct {
	Name     string      `json:"name"     validate:"notblank"`
	Price    shared.Text `json:"price"`
	Icon     string      `json:"icon"`
	Popular  shared.Text `json:"popular"`
	Features string      `json:"features"`
}

// ToModel normalizes the form. Only the literal "true" marks a plan popular.
func (r *SaveFoodPlanRequest) ToModel(id string) model.FoodPlan {
	price, ok := shared.ParseLeadingInt(r.Price.String())
	if !ok {
		log.Warn().Str("price", r.Price.String()).Str("plan", r.Name).Msg("food plan price is not a number, storing 0")
	}

	icon := strings.TrimSpace(r.Icon)
	if icon == constant.Empty {
		icon = model.DefaultIcon
	}

	return model.FoodPlan{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Price:    price,
		Icon:     icon,
		Popular:  r.Popular.String() == "true",
		Features: shared.SplitList(r.Features),
	}
}

type SaveFoodPlanResponse struct {
	Outcome  constant.Outcome `json:"outcome"`
	FoodPlan *model.FoodPlan  `json:"foodPlan,omitempty"`
}

type DeleteFoodPlanResponse struct {
	Outcome constant.Outcome `json:"outcome"`
}
