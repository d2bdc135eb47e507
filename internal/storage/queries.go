package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// FoodEntry is a food_entries row.
type FoodEntry struct {
	ID       int64
	Food     string
	Calories int64
	Month    int64
	Day      int64
}

type CreateFoodEntryParams struct {
	Food     string
	Calories int64
	Month    int64
	Day      int64
}

const createFoodEntry = `-- name: CreateFoodEntry :one
INSERT INTO food_entries (food, calories, month, day)
VALUES (?, ?, ?, ?)
RETURNING id, food, calories, month, day
`

func (q *Queries) CreateFoodEntry(ctx context.Context, arg CreateFoodEntryParams) (FoodEntry, error) {
	row := q.db.QueryRowContext(ctx, createFoodEntry, arg.Food, arg.Calories, arg.Month, arg.Day)
	var i FoodEntry
	err := row.Scan(&i.ID, &i.Food, &i.Calories, &i.Month, &i.Day)
	return i, err
}

const listFoodEntries = `-- name: ListFoodEntries :many
SELECT id, food, calories, month, day
FROM food_entries
ORDER BY id
`

func (q *Queries) ListFoodEntries(ctx context.Context) ([]FoodEntry, error) {
	rows, err := q.db.QueryContext(ctx, listFoodEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FoodEntry
	for rows.Next() {
		var i FoodEntry
		if err := rows.Scan(&i.ID, &i.Food, &i.Calories, &i.Month, &i.Day); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countFoodEntries = `-- name: CountFoodEntries :one
SELECT COUNT(*) FROM food_entries
`

func (q *Queries) CountFoodEntries(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countFoodEntries)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getTotalCalories = `-- name: GetTotalCalories :one
SELECT CAST(COALESCE(SUM(calories), 0) AS INTEGER) FROM food_entries
`

func (q *Queries) GetTotalCalories(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, getTotalCalories)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const getDateCalories = `-- name: GetDateCalories :one
SELECT CAST(COALESCE(SUM(calories), 0) AS INTEGER)
FROM food_entries
WHERE month = ? AND day = ?
`

func (q *Queries) GetDateCalories(ctx context.Context, month, day int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, getDateCalories, month, day)
	var total int64
	err := row.Scan(&total)
	return total, err
}
