package exposurestore

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
	return &Store{c: db.Collection("exposures")}
}

// Get loads the exposure record for (propertyID, lob). Returns
// mongo.ErrNoDocuments when no record exists; the handler substitutes the
// zero-value default in that case.
func (s *Store) Get(ctx context.Context, propertyID, lob string) (*models.Exposure, error) {
	var e models.Exposure
	if err := s.c.FindOne(ctx, bson.M{"propertyId": propertyID, "lob": lob}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}
