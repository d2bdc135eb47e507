package store

import (
	"context"

	"foodlog/internal/core"
)

// Ports implemented by every food log backend.
type (
	EntryWriter interface {
		// Append adds e to the end of the log and returns a backend reference.
		// Invalid entries are rejected and leave the log unchanged.
		Append(ctx context.Context, e core.FoodEntry) (ref string, err error)
	}

	// EntryReader exposes the log in insertion order.
	EntryReader interface {
		Entries(ctx context.Context) ([]core.FoodEntry, error)
		Len(ctx context.Context) (int, error)
	}

	// TotalsReader provides derived calorie aggregates.
	TotalsReader interface {
		TotalCalories(ctx context.Context) (int64, error)
		TotalCaloriesForDate(ctx context.Context, d core.CalendarDate) (int64, error)
	}

	// FoodLogStore is the full append-only log.
	FoodLogStore interface {
		EntryWriter
		EntryReader
		TotalsReader
	}
)
