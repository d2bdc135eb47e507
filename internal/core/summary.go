package core

// DayTotal is the calorie total for one calendar date.
type DayTotal struct {
	Date     CalendarDate
	Calories int64
}

// TotalCalories sums calories over entries. Empty input sums to 0.
func TotalCalories(entries []FoodEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Calories
	}
	return total
}

// TotalCaloriesForDate sums calories over entries dated exactly d.
func TotalCaloriesForDate(entries []FoodEntry, d CalendarDate) int64 {
	var total int64
	for _, e := range entries {
		if e.Date == d {
			total += e.Calories
		}
	}
	return total
}
