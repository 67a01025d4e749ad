package models

// Category is the stored payload shape for the category collection.
type Category struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}
