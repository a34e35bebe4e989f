package entities

// Category is an equipment category available when opening a request.
//
// Names are unique case-insensitively. Requests keep the name as a snapshot,
// so deleting a category never cascades to existing records.

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
