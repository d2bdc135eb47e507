package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"foodlog/internal/core"
)

// EntryLoggedMessage announces one appended food entry.
type EntryLoggedMessage struct {
	ID        string    `json:"id"`
	Food      string    `json:"food"`
	Calories  int64     `json:"calories"`
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntryLoggedMessage creates a message with a fresh id for e.
func NewEntryLoggedMessage(e core.FoodEntry) *EntryLoggedMessage {
	return &EntryLoggedMessage{
		ID:        uuid.NewString(),
		Food:      e.Food,
		Calories:  e.Calories,
		Month:     int(e.Date.Month),
		Day:       e.Date.Day,
		Timestamp: time.Now(),
	}
}

// Entry converts the message back to a domain entry.
func (m *EntryLoggedMessage) Entry() (core.FoodEntry, error) {
	return core.NewFoodEntry(m.Food, m.Calories, core.NewCalendarDate(time.Month(m.Month), m.Day))
}

// ToJSON converts the message to JSON bytes
func (m *EntryLoggedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EntryLoggedMessageFromJSON decodes a message from JSON bytes
func EntryLoggedMessageFromJSON(data []byte) (*EntryLoggedMessage, error) {
	var msg EntryLoggedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
