package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"` // plaintext demo fixture, stripped from sessions
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"isAdmin"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address is a saved delivery address. Type is a display label ("home",
// "office"). At most one address per user is the default.
type Address struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	IsDefault bool   `json:"isDefault"`
}

// Session is the persisted copy of the authenticated user. NextAddressID is
// a monotonic counter so address ids stay unique across deletions.
type Session struct {
	User          User      `json:"user"`
	Token         string    `json:"token,omitempty"`
	NextAddressID int       `json:"nextAddressId"`
	LoggedInAt    time.Time `json:"loggedInAt"`
}
