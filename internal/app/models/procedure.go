package models

// Procedure is immutable reference data from the catalog, keyed by ID.
type Procedure struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}
