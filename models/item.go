package models

import (
	"encoding/json"
	"time"
)

// Item is a user-owned resource. Every item belongs to exactly one user;
// only the owner or an admin may mutate it, while any active user may read it.
type Item struct {
	// ItemID is the internal unique identifier of the item.
	ItemID int64 `json:"id"`

	// Title is the short name of the item (1-200 characters, trimmed).
	Title string `json:"title"`

	// Description is optional free text (up to 1000 characters, trimmed).
	// An empty description is stored as NULL and omitted from responses.
	Description *string `json:"description,omitempty"`

	// IsActive marks whether the item is visible in active-only listings.
	IsActive bool `json:"is_active"`

	// OwnerID references the user that created the item. It is always
	// derived from the authenticated principal, never from client input.
	OwnerID int64 `json:"owner_id"`

	// OwnerUsername and OwnerEmail are populated only by listings that
	// join the owning user (include_owner=true).
	OwnerUsername string `json:"owner_username,omitempty"`
	OwnerEmail    string `json:"owner_email,omitempty"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation, nil until the
	// first update.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemCreate carries the fields accepted when creating an item.
// The owner is always the authenticated principal.
type ItemCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ItemUpdate is a partial-update request for an item.
// Only non-nil fields are applied; a present-but-empty description clears
// the stored value to NULL.
type ItemUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsActive == nil
}

// UnmarshalJSON tracks field presence so an explicit JSON null can clear the
// nullable description. A present null decodes to a pointer to the empty
// string, the same representation a blank value uses, and the store writes it
// as NULL. Null on any other field is treated as absent.
func (u *ItemUpdate) UnmarshalJSON(data []byte) error {
	type plain ItemUpdate
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*u = ItemUpdate(decoded)
	if _, ok := fields["description"]; ok && u.Description == nil {
		u.Description = new(string)
	}

	return nil
}
