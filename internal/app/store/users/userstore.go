package userstore

import (
	"context"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by application id. Returns mongo.ErrNoDocuments if
// not found.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsernameRole looks up a user by the (username, role) pair the login
// form submits. Returns mongo.ErrNoDocuments if no user matches.
func (s *Store) GetByUsernameRole(ctx context.Context, username, role string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": username, "role": role}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Count returns the number of user documents. The seed endpoint uses this to
// decide whether the database has already been seeded.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// InsertMany inserts the given users. Used only by the seed endpoint.
func (s *Store) InsertMany(ctx context.Context, users []models.User) error {
	docs := make([]any, len(users))
	for i, u := range users {
		docs[i] = u
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// DeleteAll removes every user. Used only by force reseeding.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}
