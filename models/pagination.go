package models

// Pagination is the page selector decoded from the query string of the
// listing endpoint, e.g. `?page=2&page_size=30`.
type Pagination struct {
	// Page is the requested page number. It is only echoed in logs; every
	// page contains the same generated items.
	Page uint `schema:"page,required" json:"page"`

	// PageSize is the number of items to return.
	PageSize uint `schema:"page_size,required" json:"page_size"`
}
