package store

import (
	"context"
	"errors"

	"github.com/iliyamo/venue-seatmap-editor/internal/model"
	"github.com/iliyamo/venue-seatmap-editor/internal/repository"
)

// RepoStore adapts the MySQL repositories to the SeatStore contract.
type RepoStore struct {
	Seats *repository.SeatRepo
	Maps  *repository.SeatMapRepo
}

// NewRepoStore bundles the repositories the adapter persists through.
func NewRepoStore(seats *repository.SeatRepo, maps *repository.SeatMapRepo) *RepoStore {
	return &RepoStore{Seats: seats, Maps: maps}
}

// FetchSeats returns the map's seats; an empty map yields an empty slice.
func (s *RepoStore) FetchSeats(ctx context.Context, mapID uint64) ([]model.Seat, error) {
	return s.Seats.GetByMap(ctx, mapID)
}

// FetchLayout returns the stored layout config. A map saved before
// layout metadata existed yields a nil layout, per the SeatStore
// contract.
func (s *RepoStore) FetchLayout(ctx context.Context, mapID uint64) (*model.VenueLayout, int, error) {
	l, version, err := s.Maps.GetLayout(ctx, mapID)
	if errors.Is(err, repository.ErrLayoutNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return l, version, nil
}

// WriteSeats replaces the map's seat set.
func (s *RepoStore) WriteSeats(ctx context.Context, mapID uint64, seats []model.Seat) error {
	return s.Seats.ReplaceForMap(ctx, mapID, seats)
}

// WriteLayout upserts the versioned layout config and bumps the map's
// updated_at.
func (s *RepoStore) WriteLayout(ctx context.Context, mapID uint64, l model.VenueLayout, version int) error {
	if err := s.Maps.UpsertLayout(ctx, mapID, l, version); err != nil {
		return err
	}
	return s.Maps.TouchUpdatedAt(ctx, mapID)
}
