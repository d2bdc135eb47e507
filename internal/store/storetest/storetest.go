// Package storetest holds the behaviour every store.FoodLogStore must share.
package storetest

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/internal/core"
	"foodlog/internal/store"
)

// Factory returns a fresh, empty store.
type Factory func(t *testing.T) store.FoodLogStore

var (
	april1 = core.NewCalendarDate(time.April, 1)
	april2 = core.NewCalendarDate(time.April, 2)
)

// Run executes the shared suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("empty log", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		total, err := s.TotalCalories(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)

		day, err := s.TotalCaloriesForDate(ctx, april1)
		require.NoError(t, err)
		assert.Zero(t, day)

		entries, err := s.Entries(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("scenario totals and order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		want := []core.FoodEntry{
			{Food: "Apple", Calories: 95, Date: april1},
			{Food: "Banana", Calories: 105, Date: april1},
			{Food: "Rice", Calories: 200, Date: april2},
		}
		for _, e := range want {
			_, err := s.Append(ctx, e)
			require.NoError(t, err)
		}

		total, err := s.TotalCalories(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(400), total)

		day1, err := s.TotalCaloriesForDate(ctx, april1)
		require.NoError(t, err)
		assert.Equal(t, int64(200), day1)

		day2, err := s.TotalCaloriesForDate(ctx, april2)
		require.NoError(t, err)
		assert.Equal(t, int64(200), day2)

		got, err := s.Entries(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Append(ctx, core.FoodEntry{Food: "", Calories: 100, Date: april1})
		assert.ErrorIs(t, err, core.ErrEmptyFood)

		_, err = s.Append(ctx, core.FoodEntry{Food: "Soup", Calories: -5, Date: april1})
		assert.ErrorIs(t, err, core.ErrInvalidCalories)

		_, err = s.Append(ctx, core.FoodEntry{Food: "Soup", Calories: 5})
		assert.ErrorIs(t, err, core.ErrInvalidDate)

		n, err := s.Len(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("entries snapshot is a copy", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		_, err := s.Append(ctx, core.FoodEntry{Food: "Tea", Calories: 2, Date: april1})
		require.NoError(t, err)

		got, err := s.Entries(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		got[0].Food = "Coffee"

		again, err := s.Entries(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Tea", again[0].Food)
	})

	t.Run("sums match arithmetic for random logs", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		rng := rand.New(rand.NewSource(7))

		var total int64
		perDate := map[core.CalendarDate]int64{}
		for i := 0; i < 60; i++ {
			d := core.NewCalendarDate(time.Month(1+rng.Intn(3)), 1+rng.Intn(3))
			kcal := int64(rng.Intn(900))
			_, err := s.Append(ctx, core.FoodEntry{Food: fmt.Sprintf("item-%d", i), Calories: kcal, Date: d})
			require.NoError(t, err)
			total += kcal
			perDate[d] += kcal
		}

		got, err := s.TotalCalories(ctx)
		require.NoError(t, err)
		assert.Equal(t, total, got)

		for m := time.January; m <= time.April; m++ {
			for day := 1; day <= 4; day++ {
				d := core.NewCalendarDate(m, day)
				got, err := s.TotalCaloriesForDate(ctx, d)
				require.NoError(t, err)
				assert.Equal(t, perDate[d], got, "date %s", d)
			}
		}

		n, err := s.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 60, n)
	})
}
