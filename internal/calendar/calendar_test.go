package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/internal/core"
	"foodlog/internal/store/memory"
)

func TestEmptyLogHas372ZeroPairs(t *testing.T) {
	days := Collect(Totals(nil))
	require.Len(t, days, 372)
	for _, d := range days {
		assert.Zero(t, d.Calories, "date %s", d.Date)
	}
}

func TestOrdering(t *testing.T) {
	days := Collect(Totals(nil))
	require.Len(t, days, Slots)

	assert.Equal(t, core.NewCalendarDate(time.January, 1), days[0].Date)
	assert.Equal(t, core.NewCalendarDate(time.January, 31), days[30].Date)
	assert.Equal(t, core.NewCalendarDate(time.February, 1), days[31].Date)
	assert.Equal(t, core.NewCalendarDate(time.February, 31), days[61].Date)
	assert.Equal(t, core.NewCalendarDate(time.December, 31), days[Slots-1].Date)

	for i := 1; i < len(days); i++ {
		prev, cur := days[i-1].Date, days[i].Date
		if cur.Month == prev.Month {
			assert.Equal(t, prev.Day+1, cur.Day)
		} else {
			assert.Equal(t, prev.Month+1, cur.Month)
			assert.Equal(t, 1, cur.Day)
		}
	}
}

func TestTotalsMatchPerDateSums(t *testing.T) {
	april1 := core.NewCalendarDate(time.April, 1)
	april2 := core.NewCalendarDate(time.April, 2)
	entries := []core.FoodEntry{
		{Food: "Apple", Calories: 95, Date: april1},
		{Food: "Banana", Calories: 105, Date: april1},
		{Food: "Rice", Calories: 200, Date: april2},
	}

	var sum int64
	for dt := range Totals(entries) {
		switch dt.Date {
		case april1, april2:
			assert.Equal(t, int64(200), dt.Calories)
		default:
			assert.Zero(t, dt.Calories)
		}
		sum += dt.Calories
	}
	assert.Equal(t, core.TotalCalories(entries), sum)
}

func TestTotalsStopsEarly(t *testing.T) {
	n := 0
	for range Totals(nil) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestAggregatorIsNotCached(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	agg := NewAggregator(s)
	may5 := core.NewCalendarDate(time.May, 5)

	before, err := agg.Days(ctx)
	require.NoError(t, err)

	_, err = s.Append(ctx, core.FoodEntry{Food: "Soup", Calories: 150, Date: may5})
	require.NoError(t, err)

	after, err := agg.Days(ctx)
	require.NoError(t, err)

	find := func(days []core.DayTotal) int64 {
		for _, d := range days {
			if d.Date == may5 {
				return d.Calories
			}
		}
		t.Fatalf("date %s missing", may5)
		return 0
	}
	assert.Zero(t, find(Collect(before)))
	assert.Equal(t, int64(150), find(Collect(after)))
}
