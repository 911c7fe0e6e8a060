// internal/domain/models/session.go
package models

import "time"

// Session maps an opaque bearer token to a user id. Tokens are minted at
// login and have no expiry; an unknown token simply resolves to no user.
type Session struct {
	Token     string    `bson:"token" json:"token"`
	UserID    string    `bson:"userId" json:"userId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
