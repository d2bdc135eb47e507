package http

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatCalories renders a calorie count with digit grouping, e.g. "1,234".
func formatCalories(kcal int64) string {
	return printer.Sprintf("%d", kcal)
}
