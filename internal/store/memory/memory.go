package memory

import (
	"context"
	"fmt"
	"sync"

	"foodlog/internal/core"
)

// Store keeps the food log in process memory for the lifetime of the session.
type Store struct {
	mu    sync.Mutex
	items []core.FoodEntry
}

func New() *Store {
	return &Store{}
}

// Append stores the entry and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, e core.FoodEntry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return fmt.Sprintf("mem:%d", len(s.items)), nil
}

// Entries returns a copy of the log, oldest first.
func (s *Store) Entries(_ context.Context) ([]core.FoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.FoodEntry(nil), s.items...), nil
}

func (s *Store) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}

func (s *Store) TotalCalories(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.TotalCalories(s.items), nil
}

func (s *Store) TotalCaloriesForDate(_ context.Context, d core.CalendarDate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.TotalCaloriesForDate(s.items, d), nil
}
