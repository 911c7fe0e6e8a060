// Package sessions persists the opaque bearer tokens minted at login.
//
// A session document is nothing more than token → user id. Tokens never
// expire in this scope; presenting an unknown token resolves to no user,
// which downstream endpoints treat as anonymous.
package sessions

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/gorilla/securecookie"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTokenGeneration is returned when the system entropy source fails.
var ErrTokenGeneration = errors.New("could not generate session token")

// Store manages login sessions.
type Store struct {
	c *mongo.Collection
}

// New creates a sessions Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sessions")}
}

// Create mints a new opaque token for the user and persists the session.
func (s *Store) Create(ctx context.Context, userID string) (models.Session, error) {
	raw := securecookie.GenerateRandomKey(32)
	if raw == nil {
		return models.Session{}, ErrTokenGeneration
	}

	sess := models.Session{
		Token:     hex.EncodeToString(raw),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// UserIDForToken resolves a token to the owning user id. Returns
// mongo.ErrNoDocuments for unknown tokens.
func (s *Store) UserIDForToken(ctx context.Context, token string) (string, error) {
	var sess models.Session
	if err := s.c.FindOne(ctx, bson.M{"token": token}).Decode(&sess); err != nil {
		return "", err
	}
	return sess.UserID, nil
}

// DeleteAll removes every session. Force reseeding calls this because the
// seeded user ids change and existing tokens would dangle.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}
