package sessions

import (
	"context"

	"github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/dalemusser/riskintel/internal/app/system/timeouts"
	"github.com/dalemusser/riskintel/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher implements auth.UserFetcher: it resolves a bearer token through the
// sessions collection to a fresh user record on each request, so a reseeded
// or removed user loses access immediately.
type Fetcher struct {
	sessions *mongo.Collection
	users    *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{
		sessions: db.Collection("sessions"),
		users:    db.Collection("users"),
	}
}

// FetchUser resolves token → session → user. It returns nil if the token is
// unknown, the user is gone, or any error occurs; the caller treats nil as
// an anonymous request.
func (f *Fetcher) FetchUser(ctx context.Context, token string) *auth.SessionUser {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var sess models.Session
	if err := f.sessions.FindOne(ctx, bson.M{"token": token}).Decode(&sess); err != nil {
		return nil
	}

	var u models.User
	if err := f.users.FindOne(ctx, bson.M{"id": sess.UserID}).Decode(&u); err != nil {
		return nil
	}

	return &auth.SessionUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}
