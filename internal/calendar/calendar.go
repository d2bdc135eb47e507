// Package calendar lists per-date calorie totals over a nominal year of
// 12 months x 31 days.
package calendar

import (
	"context"
	"fmt"
	"iter"
	"time"

	"foodlog/internal/core"
	"foodlog/internal/store"
)

// Slots is the number of (date, total) pairs in one listing.
const Slots = 12 * core.DaysPerMonth

// Dates yields every nominal date, January 1 through December 31, with 31
// day slots per month.
func Dates() iter.Seq[core.CalendarDate] {
	return func(yield func(core.CalendarDate) bool) {
		for m := time.January; m <= time.December; m++ {
			for d := 1; d <= core.DaysPerMonth; d++ {
				if !yield(core.NewCalendarDate(m, d)) {
					return
				}
			}
		}
	}
}

// Totals lazily pairs every nominal date with its calorie total over
// entries. Each total is computed when the pair is pulled.
func Totals(entries []core.FoodEntry) iter.Seq[core.DayTotal] {
	return func(yield func(core.DayTotal) bool) {
		for d := range Dates() {
			if !yield(core.DayTotal{Date: d, Calories: core.TotalCaloriesForDate(entries, d)}) {
				return
			}
		}
	}
}

// Aggregator produces calendar listings from a log.
type Aggregator struct {
	reader store.EntryReader
}

func NewAggregator(reader store.EntryReader) *Aggregator {
	return &Aggregator{reader: reader}
}

// Days snapshots the log and returns the lazy listing over that snapshot.
// Nothing is cached between calls.
func (a *Aggregator) Days(ctx context.Context) (iter.Seq[core.DayTotal], error) {
	entries, err := a.reader.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot entries: %w", err)
	}
	return Totals(entries), nil
}

// Collect materializes a listing.
func Collect(seq iter.Seq[core.DayTotal]) []core.DayTotal {
	out := make([]core.DayTotal, 0, Slots)
	for dt := range seq {
		out = append(out, dt)
	}
	return out
}
