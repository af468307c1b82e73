package model

// TicketType is a pricing/category entry from the ticket-type catalog.
// The editor consumes the catalog read-only to color seats per type.
//
// Fields:
//
//	ID         - catalog identifier referenced by Seat.TypeID.
//	Name       - display name, e.g. "Balcony".
//	PriceCents - price in minor currency units.
//	Color      - hex color used when rendering seats of this type.
type TicketType struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents uint32 `json:"price_cents"`
	Color      string `json:"color"`
}
