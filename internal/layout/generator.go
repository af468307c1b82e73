// Package layout turns a VenueLayout into concrete seat positions.
// Generation is deterministic: the same layout always yields the same
// geometry. Seat ids come from an injectable source so callers that
// need reproducible output (tests, previews) can supply their own.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/iliyamo/venue-seatmap-editor/internal/geometry"
	"github.com/iliyamo/venue-seatmap-editor/internal/model"
)

// stageMargin is the venue-space gap between the stage's bottom edge
// and the first seat row.
const stageMargin = 40.0

// Validation errors reported before any seats are produced.
var (
	ErrNoRows        = errors.New("layout needs at least one row")
	ErrNoColumns     = errors.New("layout needs at least one column")
	ErrArcColumns    = errors.New("arc layout needs at least two columns")
	ErrBadRowSpacing = errors.New("row spacing must be positive")
	ErrBadColSpacing = errors.New("column spacing must be positive")
)

// IsValidationError reports whether err is one of the layout validation
// errors above, letting HTTP handlers map them to 400 responses.
func IsValidationError(err error) bool {
	for _, e := range []error{ErrNoRows, ErrNoColumns, ErrArcColumns, ErrBadRowSpacing, ErrBadColSpacing} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// Generator produces seat sets from layout configs. The zero value is
// not usable; construct with New.
type Generator struct {
	newID func() string
}

// New returns a Generator. A nil id source defaults to uuid.NewString.
func New(newID func() string) *Generator {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Generator{newID: newID}
}

// Validate checks the layout parameters the generator depends on. An
// arc layout with fewer than two columns would make the angular step
// degenerate, so it is rejected up front.
func Validate(l model.VenueLayout) error {
	if l.Rows < 1 {
		return ErrNoRows
	}
	if l.Columns < 1 {
		return ErrNoColumns
	}
	if l.RowSpacing <= 0 {
		return ErrBadRowSpacing
	}
	if l.ColumnSpacing <= 0 {
		return ErrBadColSpacing
	}
	if l.ArcEnabled && l.Columns < 2 {
		return ErrArcColumns
	}
	return nil
}

// Generate replaces the seat set for the given layout. Every seat
// starts available with the fallback type id; callers keep hand-edited
// seat attributes alive across regeneration with CarryOver. Returns an
// error only for invalid layout parameters.
func (g *Generator) Generate(l model.VenueLayout, fallbackTypeID string) ([]model.Seat, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	seats := make([]model.Seat, 0, l.Rows*l.Columns)
	for r := 0; r < l.Rows; r++ {
		lbl := RowLabel(l.RowLabels, r)
		for c := 0; c < l.Columns; c++ {
			seat := model.Seat{
				ID:     g.newID(),
				Row:    lbl,
				Number: uint32(c + 1),
				TypeID: fallbackTypeID,
				Status: model.SeatAvailable,
			}
			if l.ArcEnabled {
				placeArc(&seat, l, r, c)
			} else {
				placeStraight(&seat, l, r, c)
			}
			seats = append(seats, seat)
		}
	}
	return seats, nil
}

// FallbackTypeID picks the type id newly generated seats inherit: the
// first existing seat's type, or empty when the map has none.
func FallbackTypeID(existing []model.Seat) string {
	if len(existing) == 0 {
		return ""
	}
	return existing[0].TypeID
}

// CarryOver reapplies hand-edited typeId/status values from the old
// seat set onto regenerated seats matched by (row, number). Seats in
// new positions keep their generated defaults.
func CarryOver(old, regenerated []model.Seat) []model.Seat {
	if len(old) == 0 {
		return regenerated
	}
	type key struct {
		row string
		num uint32
	}
	prev := make(map[key]model.Seat, len(old))
	for _, s := range old {
		prev[key{row: s.Row, num: s.Number}] = s
	}
	for i := range regenerated {
		if p, ok := prev[key{row: regenerated[i].Row, num: regenerated[i].Number}]; ok {
			regenerated[i].TypeID = p.TypeID
			regenerated[i].Status = p.Status
			regenerated[i].SeatType = p.SeatType
		}
	}
	return regenerated
}

// placeStraight centers the row horizontally under the stage and
// stacks rows downwards by RowSpacing.
func placeStraight(seat *model.Seat, l model.VenueLayout, r, c int) {
	centerX := l.VenueWidth / 2
	startX := centerX - float64(l.Columns)*l.ColumnSpacing/2 + l.ColumnSpacing/2
	seat.X = startX + float64(c)*l.ColumnSpacing
	seat.Y = l.Stage.Bottom() + stageMargin + float64(r)*l.RowSpacing
}

// placeArc distributes the row along a circular arc below the stage.
// The row radius shrinks by RowSpacing per row, and each seat carries
// the tangent angle so rendered glyphs face the stage.
func placeArc(seat *model.Seat, l model.VenueLayout, r, c int) {
	step := l.ArcSpanDegrees / float64(l.Columns-1)
	angle := l.ArcStartDegree + float64(c)*step
	radius := l.ArcRadius - float64(r)*l.RowSpacing
	rad := geometry.Radians(angle)
	cx := l.VenueWidth / 2
	cy := l.Stage.Bottom() + stageMargin
	seat.X = cx + radius*math.Cos(rad)
	seat.Y = cy + radius*math.Sin(rad)
	seat.Rotation = angle + 90
}

// CounterIDs is an id source for reproducible generation: seat-1,
// seat-2, ... Useful in previews and tests.
func CounterIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
