// Package todo holds the domain model shared by the storage, service, and
// HTTP layers.
package todo

// Item is a single todo entry, exactly as serialized in the data file and
// over the API.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Patch describes a partial update to an Item. Nil fields are left
// untouched by an update.
type Patch struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Completed == nil
}

// Apply merges the patch into item and returns the result.
func (p Patch) Apply(item Item) Item {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
	return item
}
