package models

import (
	"encoding/json"
	"time"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique contact address of the user.
	// Stored exactly as provided and compared case-sensitively.
	Email string `json:"email"`

	// Username is the unique login identifier (3-50 characters).
	// Stored exactly as provided and compared case-sensitively.
	Username string `json:"username"`

	// FullName is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name,omitempty"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialised into API responses.
	PasswordHash string `json:"-"`

	// IsActive marks whether the account may authenticate.
	// Disabled accounts keep their data but are rejected at login and on
	// every authenticated request.
	IsActive bool `json:"is_active"`

	// IsAdmin grants the administrative override role. Self-registration
	// can never set it; only the startup bootstrap or another admin can.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation, nil until
	// the first update.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate carries the fields accepted when creating an account, either
// through self-registration or the admin create endpoint.
type UserCreate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`

	// IsActive and IsAdmin are honoured only on the admin create endpoint.
	// Self-registration overwrites them unconditionally.
	IsActive *bool `json:"is_active,omitempty"`
	IsAdmin  *bool `json:"is_admin,omitempty"`
}

// UserUpdate is a partial-update request for a user profile.
// Only non-nil fields are applied; absent fields keep their stored value.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Username == nil && u.FullName == nil &&
		u.IsActive == nil && u.IsAdmin == nil
}

// UnmarshalJSON tracks field presence so an explicit JSON null can clear the
// optional full name. A present null decodes to a pointer to the empty
// string, the same representation a blank value uses. Null on any other
// field is treated as absent, since none of them may be cleared.
func (u *UserUpdate) UnmarshalJSON(data []byte) error {
	type plain UserUpdate
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*u = UserUpdate(decoded)
	if _, ok := fields["full_name"]; ok && u.FullName == nil {
		u.FullName = new(string)
	}

	return nil
}
