package menu

// Item is a single menu line. An empty Price means the location does
// not price items individually (dining halls).
type Item struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Section is a titled category of items in source order.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// MealPeriod is one meal period's full menu. An empty MealPeriod
// means the location does not serve during that period.
type MealPeriod []Section

// Menu is a location's full menu, one slot per meal period. An empty
// Menu means the location is closed.
type Menu []MealPeriod

func (m Menu) Empty() bool {
	for _, period := range m {
		if len(period) > 0 {
			return false
		}
	}
	return true
}

var fourMealTitles = []string{"Breakfast", "Lunch", "Dinner", "Late Night"}
var twoMealTitles = []string{"Breakfast", "All Day"}

// PeriodTitles returns the display labels for each slot of the menu,
// collapsing to ["Closed"] when nothing is served at all.
func (m Menu) PeriodTitles() []string {
	if m.Empty() {
		return []string{"Closed"}
	}
	switch len(m) {
	case 4:
		return fourMealTitles
	case 2:
		return twoMealTitles
	}
	return []string{"Menu"}
}
