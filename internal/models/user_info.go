package models

import "time"

// UserInfo is the internal user record shared between the business layer and its collaborators.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash
}

// UserInfoDB represents a user row in the database
type UserInfoDB struct {
	ID        int64     `db:"id"`         // Primary key
	Username  string    `db:"username"`   // Unique username
	Password  string    `db:"password"`   // Hashed password
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `db:"updated_at"` // Last update timestamp
}

// UserView is the external representation of a user
// swagger:model UserView
type UserView struct {
	// User id, assigned on registration
	// example: 1
	ID int64 `json:"id,omitempty"`

	// Username
	// required: true
	// example: hardcore
	Username string `json:"username" validate:"required,max=50"`

	// Password
	// required: true
	// example: hardcore
	Password string `json:"password" validate:"required,max=72"`
}
