// Package staging holds the food and calorie text fields before they are
// committed to the log.
package staging

import (
	"foodlog/internal/core"
)

// Fields is the staging area for one pending entry.
type Fields struct {
	food     string
	calories string
}

// Food returns the staged food name.
func (f *Fields) Food() string { return f.food }

// Calories returns the staged calorie text.
func (f *Fields) Calories() string { return f.calories }

// SetFood accepts any text, including empty.
func (f *Fields) SetFood(text string) {
	f.food = text
}

// SetCalories replaces the staged calorie text when text is digits only or
// empty. Otherwise the previous value is kept. It reports whether text was
// accepted.
func (f *Fields) SetCalories(text string) bool {
	if !core.IsCalorieText(text) {
		return false
	}
	f.calories = text
	return true
}

// CanSubmit reports whether both fields are non-empty.
func (f *Fields) CanSubmit() bool {
	return f.food != "" && f.calories != ""
}

// Submit builds an entry dated date from the staged values and clears both
// fields. It returns false and leaves the fields untouched when submission
// is not permitted.
func (f *Fields) Submit(date core.CalendarDate) (core.FoodEntry, bool) {
	if !f.CanSubmit() {
		return core.FoodEntry{}, false
	}
	kcal, err := core.ParseCalories(f.calories)
	if err != nil {
		return core.FoodEntry{}, false
	}
	e, err := core.NewFoodEntry(f.food, kcal, date)
	if err != nil {
		return core.FoodEntry{}, false
	}
	f.Reset()
	return e, true
}

// Reset clears both fields.
func (f *Fields) Reset() {
	f.food = ""
	f.calories = ""
}
