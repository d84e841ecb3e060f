package model

const (
	EntityName = "food_plan"

	DefaultIcon = "🍽️"
)

type FoodPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Icon     string   `json:"icon"`
	Popular  bool     `json:"popular"`
	Features []string `json:"features"`
}

// Seed is the plan list served until an admin edits it.
func Seed() []FoodPlan {
	return []FoodPlan{
		{
			ID: "f1", Name: "Basic Plan", Price: 100, Icon: "🍞", Popular: false,
			Features: []string{"Breakfast Only", "2 Tea/Coffee", "Weekend Snack", "Basic Menu Rotation"},
		},
		{
			ID: "f2", Name: "Standard Plan", Price: 200, Icon: "🍛", Popular: true,
			Features: []string{"Breakfast + Lunch + Dinner", "Daily Fruits", "Evening Snack", "Variety Menu", "Weekend Special"},
		},
		{
			ID: "f3", Name: "Premium Plan", Price: 350, Icon: "🥗", Popular: false,
			Features: []string{"All 3 Meals + Snacks", "Custom Diet Options", "Premium Ingredients", "Dessert Daily", "Room Service", "Midnight Snack"},
		},
	}
}
