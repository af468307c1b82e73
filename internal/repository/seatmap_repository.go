package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iliyamo/venue-seatmap-editor/internal/model"
)

// SeatMap is the metadata row of one venue seat map. The layout config
// itself lives in seat_map_layouts so legacy maps saved before layout
// metadata existed simply have no row there.
type SeatMap struct {
	ID        uint64 `json:"id"`
	OwnerID   uint64 `json:"owner_id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ErrSeatMapNotFound is returned when a map lookup yields no rows.
var ErrSeatMapNotFound = errors.New("seat map not found")

// ErrLayoutNotFound is returned when a map has no stored layout
// metadata; callers reconstruct the layout from defaults plus the
// actual seat set.
var ErrLayoutNotFound = errors.New("layout metadata not found")

// SeatMapRepo provides methods to work with seat map metadata and the
// versioned layout config.
type SeatMapRepo struct {
	db *sql.DB
}

// NewSeatMapRepo constructs a SeatMapRepo with the given DB handle.
func NewSeatMapRepo(db *sql.DB) *SeatMapRepo {
	return &SeatMapRepo{db: db}
}

// Create inserts a new seat map. On success the map's ID is populated.
func (r *SeatMapRepo) Create(ctx context.Context, m *SeatMap) error {
	const q = `INSERT INTO seat_maps (owner_id, name) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.OwnerID, m.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = `SELECT id, owner_id, name, is_active, created_at, updated_at
	                 FROM seat_maps WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, m.ID).
		Scan(&m.ID, &m.OwnerID, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
}

// GetByID retrieves a map regardless of owner.
func (r *SeatMapRepo) GetByID(ctx context.Context, id uint64) (*SeatMap, error) {
	const q = `SELECT id, owner_id, name, is_active, created_at, updated_at FROM seat_maps WHERE id = ?`
	var m SeatMap
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.OwnerID, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatMapNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetByIDAndOwner retrieves a map while enforcing ownership.
func (r *SeatMapRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*SeatMap, error) {
	const q = `SELECT id, owner_id, name, is_active, created_at, updated_at
	           FROM seat_maps WHERE id = ? AND owner_id = ?`
	var m SeatMap
	err := r.db.QueryRowContext(ctx, q, id, ownerID).
		Scan(&m.ID, &m.OwnerID, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatMapNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListByOwner returns all maps of an owner ordered by id.
func (r *SeatMapRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*SeatMap, error) {
	const q = `SELECT id, owner_id, name, is_active, created_at, updated_at
	           FROM seat_maps
	           WHERE owner_id = ?
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*SeatMap
	for rows.Next() {
		m := new(SeatMap)
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndOwner deletes a map while enforcing ownership. Returns
// sql.ErrNoRows when not found or not owned by this owner.
func (r *SeatMapRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	const q = `DELETE FROM seat_maps WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetLayout reads the stored layout config and its format version.
// Maps saved before layout metadata existed return ErrLayoutNotFound.
func (r *SeatMapRepo) GetLayout(ctx context.Context, mapID uint64) (*model.VenueLayout, int, error) {
	const q = `SELECT config, format_version FROM seat_map_layouts WHERE map_id = ?`
	var (
		raw     []byte
		version int
	)
	err := r.db.QueryRowContext(ctx, q, mapID).Scan(&raw, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrLayoutNotFound
		}
		return nil, 0, err
	}
	var l model.VenueLayout
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, 0, err
	}
	return &l, version, nil
}

// UpsertLayout writes the layout config JSON tagged with a format
// version so future format changes can branch on it when loading.
func (r *SeatMapRepo) UpsertLayout(ctx context.Context, mapID uint64, l model.VenueLayout, version int) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return err
	}
	const q = `INSERT INTO seat_map_layouts (map_id, config, format_version)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE config = VALUES(config), format_version = VALUES(format_version),
	                                   updated_at = CURRENT_TIMESTAMP`
	_, err = r.db.ExecContext(ctx, q, mapID, raw, version)
	return err
}

// TouchUpdatedAt bumps the map's updated_at after a successful save.
func (r *SeatMapRepo) TouchUpdatedAt(ctx context.Context, mapID uint64) error {
	const q = `UPDATE seat_maps SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, mapID)
	return err
}
