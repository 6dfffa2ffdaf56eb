package domain

// Equipment is a rentable inventory item with a total owned quantity.
// ID and RegisteredDate are immutable once the record is created.
type Equipment struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	PriceCents     int32  `json:"price_cents"`
	RegisteredDate string `json:"registered_date"` // yyyy-mm-dd
	Note           string `json:"note,omitempty"`
}
