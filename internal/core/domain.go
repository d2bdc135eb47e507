package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DaysPerMonth is the number of nominal day slots every month gets.
// Month lengths are not checked: "February 31" is a valid CalendarDate.
const DaysPerMonth = 31

type (
	// CalendarDate is a (month, day) aggregation key with no year.
	CalendarDate struct {
		Month time.Month
		Day   int
	}

	// FoodEntry is one logged item. It is never mutated after creation.
	FoodEntry struct {
		Food     string
		Calories int64
		Date     CalendarDate
	}
)

var (
	ErrEmptyFood       = errors.New("empty food")
	ErrInvalidCalories = errors.New("invalid calories")
	ErrInvalidDate     = errors.New("invalid date")
)

// NewCalendarDate creates a CalendarDate from a month and a day number.
func NewCalendarDate(month time.Month, day int) CalendarDate {
	return CalendarDate{Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	_, m, d := t.Date()
	return CalendarDate{Month: m, Day: d}
}

// ParseCalendarDate parses the "April 1" form produced by String.
func ParseCalendarDate(s string) (CalendarDate, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	month, ok := monthByName(fields[0])
	if !ok {
		return CalendarDate{}, fmt.Errorf("%w: unknown month %q", ErrInvalidDate, fields[0])
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: day %q", ErrInvalidDate, fields[1])
	}
	d := CalendarDate{Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return d, nil
}

func monthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}

func (d CalendarDate) Validate() error {
	if d.Month < time.January || d.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, int(d.Month))
	}
	if d.Day < 1 || d.Day > DaysPerMonth {
		return fmt.Errorf("%w: day %d", ErrInvalidDate, d.Day)
	}
	return nil
}

// String renders the date as "April 1".
func (d CalendarDate) String() string {
	return d.Month.String() + " " + strconv.Itoa(d.Day)
}

// IsZero reports whether the date was never set.
func (d CalendarDate) IsZero() bool {
	return d.Month == 0 && d.Day == 0
}

// NewFoodEntry validates and builds an entry.
func NewFoodEntry(food string, calories int64, date CalendarDate) (FoodEntry, error) {
	e := FoodEntry{Food: food, Calories: calories, Date: date}
	if err := e.Validate(); err != nil {
		return FoodEntry{}, err
	}
	return e, nil
}

func (e FoodEntry) Validate() error {
	if e.Food == "" {
		return ErrEmptyFood
	}
	if e.Calories < 0 || e.Calories > MaxCalories {
		return ErrInvalidCalories
	}
	return e.Date.Validate()
}
