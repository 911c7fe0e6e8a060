package proposalstore

import (
	"context"
	"time"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listCap bounds every list query; the dashboard has no pagination.
const listCap = 1000

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("proposals")}
}

// ListFilter narrows List. Status "" or "all" means no status filter; Search
// matches title, client, or location case-insensitively as a substring.
type ListFilter struct {
	Status string
	Search string
}

// List returns proposals matching the filter in insertion order, capped at
// 1000 documents.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Proposal, error) {
	query := bson.M{}
	if f.Status != "" && f.Status != "all" {
		query["status"] = f.Status
	}
	if f.Search != "" {
		rx := primitive.Regex{Pattern: regexEscape(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"client": rx},
			bson.M{"location": rx},
		}
	}

	cur, err := s.c.Find(ctx, query, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Proposal{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get loads a proposal by id. Returns mongo.ErrNoDocuments if not found.
func (s *Store) Get(ctx context.Context, id string) (*models.Proposal, error) {
	var p models.Proposal
	if err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new proposal, assigning its id and timestamps. CreatedBy
// must already be set by the caller from the authenticated identity.
func (s *Store) Create(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = "to_do"
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Proposal{}, err
	}
	return p, nil
}

// Update holds the fields a partial update may change. Nil pointers are left
// untouched.
type Update struct {
	Title             *string `json:"title"`
	Client            *string `json:"client"`
	Location          *string `json:"location"`
	Priority          *string `json:"priority"`
	Status            *string `json:"status"`
	ClientID          *string `json:"clientId"`
	FirstNameInsured  *string `json:"firstNameInsured"`
	BusinessType      *string `json:"businessType"`
	TotalInsuredValue *string `json:"totalInsuredValue"`
	Website           *string `json:"website"`
	EffectiveDate     *string `json:"effectiveDate"`
	ExpirationDate    *string `json:"expirationDate"`
}

// ApplyUpdate sets only the non-nil fields of upd and always refreshes
// updatedAt, returning the updated document. Returns mongo.ErrNoDocuments
// if the id does not exist.
func (s *Store) ApplyUpdate(ctx context.Context, id string, upd Update) (*models.Proposal, error) {
	set := bson.M{"updatedAt": time.Now().UTC().Format(time.RFC3339)}
	for field, v := range map[string]*string{
		"title":             upd.Title,
		"client":            upd.Client,
		"location":          upd.Location,
		"priority":          upd.Priority,
		"status":            upd.Status,
		"clientId":          upd.ClientID,
		"firstNameInsured":  upd.FirstNameInsured,
		"businessType":      upd.BusinessType,
		"totalInsuredValue": upd.TotalInsuredValue,
		"website":           upd.Website,
		"effectiveDate":     upd.EffectiveDate,
		"expirationDate":    upd.ExpirationDate,
	} {
		if v != nil {
			set[field] = *v
		}
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Proposal
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, after).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a proposal by id and returns the number of documents
// removed (0 or 1).
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// InsertMany inserts the given proposals. Used only by the seed endpoint.
func (s *Store) InsertMany(ctx context.Context, proposals []models.Proposal) error {
	docs := make([]any, len(proposals))
	for i, p := range proposals {
		docs[i] = p
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// DeleteAll removes every proposal. Used only by force reseeding.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}

// regexEscape neutralizes regex metacharacters so a search term is always a
// literal substring match.
func regexEscape(s string) string {
	const meta = `\.+*?()|[]{}^$`
	out := make([]rune, 0, len(s))
	for _, r := range s {
		for _, m := range meta {
			if r == m {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, r)
	}
	return string(out)
}
