// Package store implements the persistence adapter between the editor
// core and the external seat-map store. The adapter is the sole writer
// of the seat/layout pair; viewport and selection state are session
// local and never pass through here.
//
// Calls are independent asynchronous operations with last-write-wins
// semantics: a save started before an earlier load completes is not
// sequenced against it, and concurrent sessions editing the same map
// get no conflict detection. Ordering is the caller's responsibility.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iliyamo/venue-seatmap-editor/internal/layout"
	"github.com/iliyamo/venue-seatmap-editor/internal/model"
)

// LayoutFormatVersion tags every layout write so future format changes
// can branch on it when loading.
const LayoutFormatVersion = 2

// ErrEmptySeatSet rejects saving a map with no seats. The message is
// user-facing.
var ErrEmptySeatSet = errors.New("create at least one seat before saving")

// SeatStore is the remote seat-map store the adapter talks to. A map
// with no seats yields an empty slice, not an error; FetchLayout
// returns a nil layout for maps saved before layout metadata existed.
type SeatStore interface {
	FetchSeats(ctx context.Context, mapID uint64) ([]model.Seat, error)
	FetchLayout(ctx context.Context, mapID uint64) (*model.VenueLayout, int, error)
	WriteSeats(ctx context.Context, mapID uint64, seats []model.Seat) error
	WriteLayout(ctx context.Context, mapID uint64, l model.VenueLayout, version int) error
}

// Document is the load result: the reconstructed layout and the seat
// set, ready for the editor to frame via zoom-to-fit.
type Document struct {
	Layout        model.VenueLayout
	LayoutVersion int
	Seats         []model.Seat
}

// StatusKind classifies the adapter's transient status line.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSaved
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusSaved:
		return "saved"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// Status is the save feedback shown by the host UI. Success statuses
// clear themselves after a few seconds; error statuses stay until
// dismissed or overwritten.
type Status struct {
	Kind    StatusKind
	Message string
}

// Adapter performs the load/save round trip against a SeatStore.
type Adapter struct {
	store SeatStore

	mu          sync.Mutex
	status      Status
	statusUntil time.Time
	statusTTL   time.Duration
	now         func() time.Time
}

// NewAdapter wraps the given store. Success statuses auto-clear after
// four seconds.
func NewAdapter(s SeatStore) *Adapter {
	return &Adapter{store: s, statusTTL: 4 * time.Second, now: time.Now}
}

// DefaultLayout is the baseline config merged under stored layout
// metadata on load and offered to fresh maps.
func DefaultLayout() model.VenueLayout {
	return model.VenueLayout{
		Rows:          10,
		Columns:       12,
		RowSpacing:    50,
		ColumnSpacing: 40,
		SeatSize:      30,
		VenueWidth:    1200,
		VenueHeight:   800,
		Stage:         model.StageConfig{X: 400, Y: 40, Width: 400, Height: 80},
	}
}

// Load fetches the seat set and layout metadata of a map and merges
// them into a Document. A map with no seats is a fresh map, not an
// error. Maps saved before explicit layout metadata existed get their
// rows/columns inferred from the actual seat set.
func (a *Adapter) Load(ctx context.Context, mapID uint64) (*Document, error) {
	seats, err := a.store.FetchSeats(ctx, mapID)
	if err != nil {
		return nil, fmt.Errorf("fetch seats: %w", err)
	}

	stored, version, err := a.store.FetchLayout(ctx, mapID)
	if err != nil {
		return nil, fmt.Errorf("fetch layout: %w", err)
	}

	merged := DefaultLayout()
	if stored != nil {
		merged = mergeLayout(merged, *stored)
	}
	// Inference must look at the stored config, not the merged one: by now
	// mergeLayout has backfilled any zero grid from the defaults.
	if stored == nil || stored.Rows == 0 || stored.Columns == 0 {
		if rows, cols, ok := inferGrid(seats); ok {
			merged.Rows = rows
			merged.Columns = cols
		}
	}
	return &Document{Layout: merged, LayoutVersion: version, Seats: seats}, nil
}

// Save validates and persists the seat set and the versioned layout
// config as two coordinated writes. An empty seat set aborts before
// any network write. Failures surface as returned errors and in the
// status line; they never panic through to the host.
func (a *Adapter) Save(ctx context.Context, mapID uint64, l model.VenueLayout, seats []model.Seat) error {
	if len(seats) == 0 {
		a.setStatus(Status{Kind: StatusError, Message: ErrEmptySeatSet.Error()})
		return ErrEmptySeatSet
	}
	if err := layout.Validate(l); err != nil {
		a.setStatus(Status{Kind: StatusError, Message: err.Error()})
		return err
	}
	if err := a.store.WriteSeats(ctx, mapID, seats); err != nil {
		err = fmt.Errorf("write seats: %w", err)
		a.setStatus(Status{Kind: StatusError, Message: err.Error()})
		return err
	}
	if err := a.store.WriteLayout(ctx, mapID, l, LayoutFormatVersion); err != nil {
		err = fmt.Errorf("write layout: %w", err)
		a.setStatus(Status{Kind: StatusError, Message: err.Error()})
		return err
	}
	a.setStatus(Status{Kind: StatusSaved, Message: "seat map saved"})
	return nil
}

// Status returns the current save feedback. Saved statuses expire
// after the auto-clear window.
func (a *Adapter) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status.Kind == StatusSaved && a.now().After(a.statusUntil) {
		a.status = Status{}
	}
	return a.status
}

// ClearStatus dismisses the current status line.
func (a *Adapter) ClearStatus() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = Status{}
}

func (a *Adapter) setStatus(s Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = s
	a.statusUntil = a.now().Add(a.statusTTL)
}

// mergeLayout lays stored values over the defaults, keeping default
// values wherever the stored config left a field unset.
func mergeLayout(def, stored model.VenueLayout) model.VenueLayout {
	out := stored
	if out.Rows == 0 {
		out.Rows = def.Rows
	}
	if out.Columns == 0 {
		out.Columns = def.Columns
	}
	if out.RowSpacing == 0 {
		out.RowSpacing = def.RowSpacing
	}
	if out.ColumnSpacing == 0 {
		out.ColumnSpacing = def.ColumnSpacing
	}
	if out.SeatSize == 0 {
		out.SeatSize = def.SeatSize
	}
	if out.VenueWidth == 0 {
		out.VenueWidth = def.VenueWidth
	}
	if out.VenueHeight == 0 {
		out.VenueHeight = def.VenueHeight
	}
	if out.Stage == (model.StageConfig{}) {
		out.Stage = def.Stage
	}
	return out
}

// inferGrid derives rows/columns from the actual seat set: the number
// of distinct row labels and the highest seat number.
func inferGrid(seats []model.Seat) (rows, cols int, ok bool) {
	if len(seats) == 0 {
		return 0, 0, false
	}
	labels := make(map[string]struct{}, len(seats))
	maxNum := uint32(0)
	for _, s := range seats {
		labels[s.Row] = struct{}{}
		if s.Number > maxNum {
			maxNum = s.Number
		}
	}
	return len(labels), int(maxNum), true
}
