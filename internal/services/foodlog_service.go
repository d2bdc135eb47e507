package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodlog/internal/amqp"
	"foodlog/internal/calendar"
	"foodlog/internal/core"
	applog "foodlog/internal/log"
	"foodlog/internal/store"
)

// EventPublisher announces appended entries. *amqp.Client implements it.
type EventPublisher interface {
	PublishEntryLogged(ctx context.Context, msg *amqp.EntryLoggedMessage) error
}

// Clock returns the current time.
type Clock func() time.Time

// FoodLogService appends to a store and optionally publishes an event for
// every accepted entry.
type FoodLogService struct {
	store          store.FoodLogStore
	publisher      EventPublisher
	publishTimeout time.Duration
	now            Clock
	logger         *applog.StructuredLogger
	calendar       *calendar.Aggregator
}

// Option configures a FoodLogService.
type Option func(*FoodLogService)

// WithPublisher enables event publishing.
func WithPublisher(p EventPublisher, timeout time.Duration) Option {
	return func(s *FoodLogService) {
		s.publisher = p
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

// WithClock overrides the clock used to date entries.
func WithClock(now Clock) Option {
	return func(s *FoodLogService) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *applog.Logger) Option {
	return func(s *FoodLogService) { s.logger = applog.NewStructuredLogger(l) }
}

func NewFoodLogService(st store.FoodLogStore, opts ...Option) *FoodLogService {
	s := &FoodLogService{
		store:          st,
		publishTimeout: 5 * time.Second,
		now:            time.Now,
		logger:         applog.NewStructuredLogger(applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentFoodLog)),
		calendar:       calendar.NewAggregator(st),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the date new entries receive.
func (s *FoodLogService) Today() core.CalendarDate {
	return core.DateOf(s.now())
}

// Append stores e. Invalid entries return a core validation error and leave
// the log unchanged. Publishing failures are logged and never fail the
// append.
func (s *FoodLogService) Append(ctx context.Context, e core.FoodEntry) (string, error) {
	ref, err := s.store.Append(ctx, e)
	if err != nil {
		if IsRejection(err) {
			s.logger.LogEntryRejected(ctx, err)
		}
		return "", err
	}
	s.logger.LogEntryLogged(ctx, e.Food, e.Calories, e.Date.String(), ref)

	if s.publisher != nil {
		pctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
		defer cancel()
		if err := s.publisher.PublishEntryLogged(pctx, amqp.NewEntryLoggedMessage(e)); err != nil {
			s.logger.LogError(ctx, "Failed to publish entry logged message", err,
				applog.ComponentAMQP, applog.OpPublish, applog.NewFields().WithEntry(e.Food, e.Calories, e.Date.String()))
		}
	}

	return ref, nil
}

// LogFood appends from raw text fields. Empty food or empty/non-digit
// calorie text is rejected and the log is left unchanged.
func (s *FoodLogService) LogFood(ctx context.Context, food, calories string, date core.CalendarDate) (string, error) {
	if food == "" {
		s.logger.LogEntryRejected(ctx, core.ErrEmptyFood)
		return "", core.ErrEmptyFood
	}
	kcal, err := core.ParseCalories(calories)
	if err != nil {
		s.logger.LogEntryRejected(ctx, err)
		return "", err
	}
	return s.Append(ctx, core.FoodEntry{Food: food, Calories: kcal, Date: date})
}

func (s *FoodLogService) Entries(ctx context.Context) ([]core.FoodEntry, error) {
	return s.store.Entries(ctx)
}

func (s *FoodLogService) Len(ctx context.Context) (int, error) {
	return s.store.Len(ctx)
}

func (s *FoodLogService) TotalCalories(ctx context.Context) (int64, error) {
	return s.store.TotalCalories(ctx)
}

func (s *FoodLogService) TotalCaloriesForDate(ctx context.Context, d core.CalendarDate) (int64, error) {
	return s.store.TotalCaloriesForDate(ctx, d)
}

// Calendar returns the 372-slot listing over the current log.
func (s *FoodLogService) Calendar(ctx context.Context) ([]core.DayTotal, error) {
	seq, err := s.calendar.Days(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	return calendar.Collect(seq), nil
}

// IsRejection reports whether err is an invalid-input rejection rather than
// an infrastructure failure.
func IsRejection(err error) bool {
	return errors.Is(err, core.ErrEmptyFood) ||
		errors.Is(err, core.ErrInvalidCalories) ||
		errors.Is(err, core.ErrInvalidDate)
}
