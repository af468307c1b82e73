// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatMapSavedEvent is published whenever an editor saves a seat map. It
// carries enough context for audit and analytics consumers without a trip
// back to the primary database.
type SeatMapSavedEvent struct {
	MapID         uint64 `json:"map_id"`
	OwnerID       uint64 `json:"owner_id"`
	MapName       string `json:"map_name"`
	SeatCount     int    `json:"seat_count"`
	Rows          int    `json:"rows"`
	Columns       int    `json:"columns"`
	FormatVersion int    `json:"format_version"`
	SavedAt       string `json:"saved_at"`
}
