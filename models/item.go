package models

// Item is a single element of the paginated listing.
type Item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
