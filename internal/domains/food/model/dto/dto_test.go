package dto_test

import (
	"encoding/json"
	"hostel/internal/domains/food/model"
	"hostel/internal/domains/food/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFoodPlanRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected model.FoodPlan
	}{
		{
			name: "form strings",
			body: `{"name":" Keto ","price":"250","icon":"🥩","popular":"true","features":"Low carb, Dinner"}`,
			expected: model.FoodPlan{
				ID: "f-1", Name: "Keto", Price: 250, Icon: "🥩", Popular: true,
				Features: []string{"Low carb", "Dinner"},
			},
		},
		{
			name: "json numbers and booleans",
			body: `{"name":"Vegan","price":180,"popular":true,"features":"Lunch"}`,
			expected: model.FoodPlan{
				ID: "f-1", Name: "Vegan", Price: 180, Icon: model.DefaultIcon, Popular: true,
				Features: []string{"Lunch"},
			},
		},
		{
			name: "permissive price and popular flag",
			body: `{"name":"Mystery","price":"n/a","popular":"yes"}`,
			expected: model.FoodPlan{
				ID: "f-1", Name: "Mystery", Price: 0, Icon: model.DefaultIcon, Popular: false,
				Features: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.SaveFoodPlanRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.expected, req.ToModel("f-1"))
		})
	}
}
