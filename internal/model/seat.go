package model

import "fmt"

// SeatStatus tracks the sale state of a single seat.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available" // open for sale
	SeatLocked    SeatStatus = "locked"    // temporarily withheld by the operator
	SeatConfirmed SeatStatus = "confirmed" // sold
)

// ValidSeatStatus reports whether s is one of the known seat statuses.
func ValidSeatStatus(s SeatStatus) bool {
	switch s {
	case SeatAvailable, SeatLocked, SeatConfirmed:
		return true
	}
	return false
}

// Seat is one individually addressable seat placed in venue space.
// A seat is uniquely identified by its ID, which never changes once
// assigned; within one layout the (Row, Number) pair is also unique.
//
// Fields:
//
//	ID       - stable unique identifier.
//	Row      - row label, e.g. "A" or "AB".
//	Number   - 1-based position within the row.
//	TypeID   - optional reference to a ticket type; empty when unpriced.
//	Status   - sale state of the seat.
//	X, Y     - absolute venue-space coordinates.
//	Rotation - glyph rotation in degrees; non-zero only for arc seats.
//	SeatType - optional free-form tag such as "wheelchair".
type Seat struct {
	ID       string     `json:"id"`
	Row      string     `json:"row"`
	Number   uint32     `json:"number"`
	TypeID   string     `json:"typeId,omitempty"`
	Status   SeatStatus `json:"status"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Rotation float64    `json:"rotation,omitempty"`
	SeatType string     `json:"seatType,omitempty"`
}

// Label renders the display label with the seat number zero-padded to
// two digits, e.g. "A01", "AB12".
func (s Seat) Label() string {
	return fmt.Sprintf("%s%02d", s.Row, s.Number)
}
