package repository // repository defines data access for seat maps

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-seatmap-editor/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// SeatRepo provides methods to work with seats in the database. Seats
// belong to a seat map; the map id plus (row_label, seat_number) is
// unique, and the seat id itself is a stable uuid assigned at
// generation time.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// GetByMap retrieves all seats of a map ordered by row (in label
// sequence order) then seat_number. An empty result is not an error: a
// map with no seats is simply fresh.
func (r *SeatRepo) GetByMap(ctx context.Context, mapID uint64) ([]model.Seat, error) {
	// Label length sorts before the label itself so "B" comes before "AA",
	// matching the alphabetic row sequence A..Z, AA, AB, ...
	const q = `SELECT id, row_label, seat_number, type_id, status, x, y, rotation, seat_type
	           FROM seats
	           WHERE map_id = ?
	           ORDER BY LENGTH(row_label), row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, q, mapID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(
			&s.ID, &s.Row, &s.Number, &s.TypeID, &s.Status,
			&s.X, &s.Y, &s.Rotation, &s.SeatType,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceForMap swaps the full seat set of a map in one transaction:
// existing rows are deleted and the new set is inserted with a single
// multi-VALUES statement. Saving always writes the whole array, so a
// partial update is never observable.
func (r *SeatRepo) ReplaceForMap(ctx context.Context, mapID uint64, seats []model.Seat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE map_id = ?`, mapID); err != nil {
		return err
	}
	if len(seats) > 0 {
		query := `INSERT INTO seats (id, map_id, row_label, seat_number, type_id, status, x, y, rotation, seat_type) VALUES `
		args := make([]interface{}, 0, len(seats)*10)
		for i, s := range seats {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
			args = append(args, s.ID, mapID, s.Row, s.Number, s.TypeID, s.Status, s.X, s.Y, s.Rotation, s.SeatType)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteByMap removes all seats of a map. Used when the map itself is
// deleted; callers verify ownership first.
func (r *SeatRepo) DeleteByMap(ctx context.Context, mapID uint64) error {
	const q = `DELETE FROM seats WHERE map_id = ?`
	_, err := r.db.ExecContext(ctx, q, mapID)
	return err
}

// GetByID retrieves a single seat by its uuid.
func (r *SeatRepo) GetByID(ctx context.Context, id string) (*model.Seat, error) {
	const q = `SELECT id, row_label, seat_number, type_id, status, x, y, rotation, seat_type
	           FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.Row, &s.Number, &s.TypeID, &s.Status, &s.X, &s.Y, &s.Rotation, &s.SeatType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}
