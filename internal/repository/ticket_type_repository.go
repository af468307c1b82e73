package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-seatmap-editor/internal/model"
)

// ErrTicketTypeNotFound is returned when a catalog lookup yields no rows.
var ErrTicketTypeNotFound = errors.New("ticket type not found")

// TicketTypeRepo reads the ticket-type catalog. The editor consumes it
// read-only for per-type seat coloring; catalog maintenance lives in a
// different service.
type TicketTypeRepo struct {
	db *sql.DB
}

// NewTicketTypeRepo constructs a TicketTypeRepo with the given DB handle.
func NewTicketTypeRepo(db *sql.DB) *TicketTypeRepo {
	return &TicketTypeRepo{db: db}
}

// List returns the full catalog ordered by name.
func (r *TicketTypeRepo) List(ctx context.Context) ([]model.TicketType, error) {
	const q = `SELECT id, name, price_cents, color FROM ticket_types ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TicketType
	for rows.Next() {
		var t model.TicketType
		if err := rows.Scan(&t.ID, &t.Name, &t.PriceCents, &t.Color); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a single catalog entry.
func (r *TicketTypeRepo) GetByID(ctx context.Context, id string) (*model.TicketType, error) {
	const q = `SELECT id, name, price_cents, color FROM ticket_types WHERE id = ?`
	var t model.TicketType
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.PriceCents, &t.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}
