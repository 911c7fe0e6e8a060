package propertystore

import (
	"context"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCap = 1000

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("properties")}
}

// Filter narrows List. Empty values and the "All" sentinel mean no filter
// for that field; Lob matches membership in the property's lobs array.
type Filter struct {
	State      string
	Lob        string
	CustomerID string
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.State != "" && f.State != "All" {
		q["state"] = f.State
	}
	if f.Lob != "" && f.Lob != "All" {
		q["lobs"] = f.Lob
	}
	if f.CustomerID != "" && f.CustomerID != "All" {
		q["customerId"] = f.CustomerID
	}
	return q
}

// List returns properties matching the filter, capped at 1000 documents.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Property, error) {
	cur, err := s.c.Find(ctx, f.query(), options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Property{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// All returns every property; statistics and filter options read the whole
// collection.
func (s *Store) All(ctx context.Context) ([]models.Property, error) {
	return s.List(ctx, Filter{})
}

// Get loads a property by id. Returns mongo.ErrNoDocuments if not found.
func (s *Store) Get(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
