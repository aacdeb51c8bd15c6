package models

// MenuItem is a static catalog entry. The menu has no lifecycle; it is
// loaded once at startup and never persisted or mutated.
type MenuItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"cat"`
}
