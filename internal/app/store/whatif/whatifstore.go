package whatifstore

import (
	"context"
	"time"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("whatif")}
}

// Get loads the saved scenario for (propertyID, lob). Returns
// mongo.ErrNoDocuments when none has been saved.
func (s *Store) Get(ctx context.Context, propertyID, lob string) (*models.WhatIf, error) {
	var w models.WhatIf
	if err := s.c.FindOne(ctx, bson.M{"propertyId": propertyID, "lob": lob}).Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Save upserts the scenario for (propertyID, lob), always refreshing
// updatedAt. The coverage items are caller-defined; no shape is enforced
// beyond being an ordered sequence.
func (s *Store) Save(ctx context.Context, propertyID, lob string, coverages []map[string]any, totalPremium string) error {
	if coverages == nil {
		coverages = []map[string]any{}
	}
	set := bson.M{
		"propertyId":   propertyID,
		"lob":          lob,
		"coverages":    coverages,
		"totalPremium": totalPremium,
		"updatedAt":    time.Now().UTC().Format(time.RFC3339),
	}
	_, err := s.c.UpdateOne(ctx,
		bson.M{"propertyId": propertyID, "lob": lob},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}

// DeleteAll removes every saved scenario.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}
