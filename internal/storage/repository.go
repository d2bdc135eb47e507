package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"foodlog/internal/core"
)

// SQLiteRepository keeps the food log in a private in-memory SQLite
// database. The database lives as long as the repository's single
// connection and is never written to disk.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
	name    string
}

// MemoryDSN returns a DSN for a named in-memory database.
func MemoryDSN(name string) string {
	return "file:" + name + "?mode=memory&cache=shared"
}

func NewSQLiteRepository(ctx context.Context) (*SQLiteRepository, error) {
	name := "foodlog-" + uuid.NewString()

	db, err := sql.Open("sqlite", MemoryDSN(name))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One long-lived connection; the in-memory database disappears with it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
		name:    name,
	}, nil
}

// Name returns the in-memory database name.
func (r *SQLiteRepository) Name() string {
	return r.name
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements store.EntryWriter
func (r *SQLiteRepository) Append(ctx context.Context, e core.FoodEntry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	row, err := r.queries.CreateFoodEntry(ctx, CreateFoodEntryParams{
		Food:     e.Food,
		Calories: e.Calories,
		Month:    int64(e.Date.Month),
		Day:      int64(e.Date.Day),
	})
	if err != nil {
		return "", fmt.Errorf("create food entry: %w", err)
	}

	slog.DebugContext(ctx, "Food entry saved to SQLite",
		"id", row.ID,
		"food", row.Food,
		"calories", row.Calories,
		"month", row.Month,
		"day", row.Day)

	return strconv.FormatInt(row.ID, 10), nil
}

// Entries implements store.EntryReader
func (r *SQLiteRepository) Entries(ctx context.Context) ([]core.FoodEntry, error) {
	rows, err := r.queries.ListFoodEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}

	entries := make([]core.FoodEntry, len(rows))
	for i, row := range rows {
		entries[i] = core.FoodEntry{
			Food:     row.Food,
			Calories: row.Calories,
			Date:     core.NewCalendarDate(time.Month(row.Month), int(row.Day)),
		}
	}
	return entries, nil
}

// Len implements store.EntryReader
func (r *SQLiteRepository) Len(ctx context.Context) (int, error) {
	n, err := r.queries.CountFoodEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("count food entries: %w", err)
	}
	return int(n), nil
}

// TotalCalories implements store.TotalsReader
func (r *SQLiteRepository) TotalCalories(ctx context.Context) (int64, error) {
	total, err := r.queries.GetTotalCalories(ctx)
	if err != nil {
		return 0, fmt.Errorf("get total calories: %w", err)
	}
	return total, nil
}

// TotalCaloriesForDate implements store.TotalsReader
func (r *SQLiteRepository) TotalCaloriesForDate(ctx context.Context, d core.CalendarDate) (int64, error) {
	total, err := r.queries.GetDateCalories(ctx, int64(d.Month), int64(d.Day))
	if err != nil {
		return 0, fmt.Errorf("get calories for %s: %w", d, err)
	}
	return total, nil
}
