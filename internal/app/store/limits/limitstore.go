package limitstore

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
	return &Store{c: db.Collection("limits")}
}

// Get loads the limit-of-liability record for (propertyID, lob). Returns
// mongo.ErrNoDocuments when no record exists.
func (s *Store) Get(ctx context.Context, propertyID, lob string) (*models.Limits, error) {
	var l models.Limits
	if err := s.c.FindOne(ctx, bson.M{"propertyId": propertyID, "lob": lob}).Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}
