package services

import (
	"context"
	"sync"

	"foodlog/internal/core"
	"foodlog/internal/navigation"
	"foodlog/internal/staging"
)

// Session is the single UI session: staged fields, navigation state and the
// food log. Every method runs under one lock so concurrent callers see the
// same ordering as discrete UI events.
type Session struct {
	mu      sync.Mutex
	fields  staging.Fields
	nav     navigation.State
	service *FoodLogService
}

// View is everything a shell needs to render one frame.
type View struct {
	Page     navigation.Page
	Title    string
	MenuOpen bool
	Food     string
	Calories string
	Entries  []core.FoodEntry
	Total    int64
	Today    core.CalendarDate
	// Calendar is filled only on the Calendar page.
	Calendar []core.DayTotal
}

func NewSession(service *FoodLogService) *Session {
	return &Session{service: service}
}

// Service returns the underlying food log service.
func (s *Session) Service() *FoodLogService {
	return s.service
}

func (s *Session) SetFood(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields.SetFood(text)
	return s.fields.Food()
}

// SetCalories proposes a new staged calorie value and returns the value now
// staged, which is the previous one when text had a non-digit.
func (s *Session) SetCalories(text string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.fields.SetCalories(text)
	return s.fields.Calories(), ok
}

// Submit commits the staged fields as an entry dated today. It is a no-op
// returning false when either field is empty.
func (s *Session) Submit(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fields.CanSubmit() {
		return false, nil
	}
	// Stage a copy so a failed append keeps the user's input.
	pending := s.fields
	e, ok := pending.Submit(s.service.Today())
	if !ok {
		return false, nil
	}
	if _, err := s.service.Append(ctx, e); err != nil {
		if IsRejection(err) {
			return false, nil
		}
		return false, err
	}
	s.fields = pending
	return true, nil
}

func (s *Session) OpenMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.OpenMenu()
}

func (s *Session) CloseMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.CloseMenu()
}

func (s *Session) Navigate(p navigation.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Navigate(p)
}

// View builds the current frame.
func (s *Session) View(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.service.Entries(ctx)
	if err != nil {
		return View{}, err
	}
	total, err := s.service.TotalCalories(ctx)
	if err != nil {
		return View{}, err
	}

	v := View{
		Page:     s.nav.Page(),
		Title:    s.nav.Page().Title(),
		MenuOpen: s.nav.MenuOpen(),
		Food:     s.fields.Food(),
		Calories: s.fields.Calories(),
		Entries:  entries,
		Total:    total,
		Today:    s.service.Today(),
	}
	if v.Page == navigation.Calendar {
		days, err := s.service.Calendar(ctx)
		if err != nil {
			return View{}, err
		}
		v.Calendar = days
	}
	return v, nil
}
