package model

// StageConfig positions the stage rectangle inside the venue. Seat rows
// are generated below the stage, so it acts as the generation anchor.
type StageConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns the venue-space Y coordinate of the stage's lower edge.
func (s StageConfig) Bottom() float64 { return s.Y + s.Height }

// VenueLayout fully determines seat positions when a layout is
// (re)generated. It does not carry the seats themselves: previously
// hand-edited typeId/status values are reapplied after regeneration so
// geometry changes never destroy pricing work.
//
// Rows and Columns must be at least 1; arc mode additionally requires
// Columns >= 2 so the angular step is well defined. RowLabels supplies
// one label per row in order; rows beyond the supplied labels fall back
// to the alphabetic sequence A, B, ... Z, AA, AB, ...
type VenueLayout struct {
	Rows           int         `json:"rows"`
	Columns        int         `json:"columns"`
	RowSpacing     float64     `json:"rowSpacing"`
	ColumnSpacing  float64     `json:"columnSpacing"`
	SeatSize       float64     `json:"seatSize"`
	ArcEnabled     bool        `json:"arcEnabled"`
	ArcRadius      float64     `json:"arcRadius,omitempty"`
	ArcSpanDegrees float64     `json:"arcSpanDegrees,omitempty"`
	ArcStartDegree float64     `json:"arcStartDegree,omitempty"`
	RowLabels      []string    `json:"rowLabels,omitempty"`
	VenueWidth     float64     `json:"venueWidth"`
	VenueHeight    float64     `json:"venueHeight"`
	Stage          StageConfig `json:"stageConfig"`
}
