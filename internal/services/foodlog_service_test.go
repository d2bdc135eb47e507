package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/internal/amqp"
	"foodlog/internal/core"
	applog "foodlog/internal/log"
	"foodlog/internal/store/memory"
)

type fakePublisher struct {
	mu   sync.Mutex
	msgs []*amqp.EntryLoggedMessage
	err  error
}

func (f *fakePublisher) PublishEntryLogged(ctx context.Context, msg *amqp.EntryLoggedMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Output: io.Discard})
}

func fixedClock(month time.Month, day int) Clock {
	return func() time.Time { return time.Date(2026, month, day, 12, 0, 0, 0, time.Local) }
}

func newTestService(opts ...Option) *FoodLogService {
	opts = append([]Option{WithLogger(quietLogger()), WithClock(fixedClock(time.April, 1))}, opts...)
	return NewFoodLogService(memory.New(), opts...)
}

func TestLogFoodScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	april1 := core.NewCalendarDate(time.April, 1)
	april2 := core.NewCalendarDate(time.April, 2)

	_, err := svc.LogFood(ctx, "Apple", "95", april1)
	require.NoError(t, err)
	_, err = svc.LogFood(ctx, "Banana", "105", april1)
	require.NoError(t, err)
	_, err = svc.LogFood(ctx, "Rice", "200", april2)
	require.NoError(t, err)

	total, err := svc.TotalCalories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(400), total)

	d1, err := svc.TotalCaloriesForDate(ctx, april1)
	require.NoError(t, err)
	assert.Equal(t, int64(200), d1)

	d2, err := svc.TotalCaloriesForDate(ctx, april2)
	require.NoError(t, err)
	assert.Equal(t, int64(200), d2)

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Apple", "Banana", "Rice"}, []string{entries[0].Food, entries[1].Food, entries[2].Food})
}

func TestLogFoodRejections(t *testing.T) {
	ctx := context.Background()
	april1 := core.NewCalendarDate(time.April, 1)

	tests := []struct {
		name     string
		food     string
		calories string
		want     error
	}{
		{"empty food", "", "100", core.ErrEmptyFood},
		{"empty calories", "Soup", "", core.ErrInvalidCalories},
		{"non-numeric calories", "Soup", "12a", core.ErrInvalidCalories},
		{"negative calories", "Soup", "-3", core.ErrInvalidCalories},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.LogFood(ctx, tt.food, tt.calories, april1)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsRejection(err))

			n, err := svc.Len(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestAppendPublishesEvent(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc := newTestService(WithPublisher(pub, time.Second))

	_, err := svc.LogFood(ctx, "Apple", "95", svc.Today())
	require.NoError(t, err)
	_, err = svc.LogFood(ctx, "", "95", svc.Today())
	require.Error(t, err)

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "Apple", pub.msgs[0].Food)
	assert.Equal(t, int64(95), pub.msgs[0].Calories)
	assert.Equal(t, 4, pub.msgs[0].Month)
	assert.Equal(t, 1, pub.msgs[0].Day)
}

func TestPublishFailureDoesNotFailAppend(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newTestService(WithPublisher(pub, time.Second))

	ref, err := svc.LogFood(ctx, "Apple", "95", svc.Today())
	require.NoError(t, err)
	assert.Equal(t, "mem:1", ref)

	n, err := svc.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTodayUsesClock(t *testing.T) {
	svc := newTestService(WithClock(fixedClock(time.October, 18)))
	assert.Equal(t, core.NewCalendarDate(time.October, 18), svc.Today())
}

func TestServiceCalendar(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	days, err := svc.Calendar(ctx)
	require.NoError(t, err)
	require.Len(t, days, 372)

	_, err = svc.LogFood(ctx, "Apple", "95", core.NewCalendarDate(time.January, 2))
	require.NoError(t, err)

	days, err = svc.Calendar(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(95), days[1].Calories)
}
