// internal/domain/models/user.go
package models

// User is an underwriter account. Accounts are created only by the seed
// endpoint; the (username, role) pair is what the login form submits.
//
// Documents are keyed by the application-level `id` string (a UUID), not by
// the Mongo _id, so user records round-trip between the API and the store
// with the same field names.
type User struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"-"` // stored in the clear; see DESIGN.md
	FullName string `bson:"fullName" json:"fullName"`
	Role     string `bson:"role" json:"role"` // UWR_B | UWR_C
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
