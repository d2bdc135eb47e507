// Package core provides the food log domain types and calorie parsing.
//
// This file contains the digit-only calorie text rules shared by the
// staging fields and the raw-text append path.
package core

import (
	"strconv"
)

// MaxCalories bounds a single entry so totals stay well inside int64.
const MaxCalories int64 = 1_000_000_000

// IsCalorieText reports whether s is an acceptable staged calorie value:
// only ASCII decimal digits, or the empty string.
func IsCalorieText(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseCalories converts committed calorie text to a count.
//
// The text must be non-empty and made only of decimal digits. Leading zeros
// are allowed and ignored ("007" -> 7). No sign, whitespace or separators are
// accepted.
//
// Examples:
//
//	ParseCalories("95")  -> 95, nil
//	ParseCalories("")    -> 0, ErrInvalidCalories
//	ParseCalories("12a") -> 0, ErrInvalidCalories
func ParseCalories(s string) (int64, error) {
	if s == "" || !IsCalorieText(s) {
		return 0, ErrInvalidCalories
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidCalories
	}
	if v > MaxCalories {
		return 0, ErrInvalidCalories
	}
	return v, nil
}
