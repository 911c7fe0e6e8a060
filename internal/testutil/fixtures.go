package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given login triple and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, username, password, role string) models.User {
	f.t.Helper()

	u := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		FullName: username,
		Role:     role,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateProposal inserts a proposal with the given title/client/location and
// status, filling the remaining fields with fixed sample values.
func (f *Fixtures) CreateProposal(ctx context.Context, title, client, location, status string) models.Proposal {
	f.t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)
	p := models.Proposal{
		ID:                uuid.NewString(),
		Title:             title,
		Client:            client,
		Location:          location,
		Priority:          "medium",
		Status:            status,
		ClientID:          "CLT-TEST0001",
		FirstNameInsured:  "Test",
		BusinessType:      "Office",
		TotalInsuredValue: "$10.0M",
		Website:           "www.example.com",
		CreatedBy:         "Test User",
		EffectiveDate:     "10/1/2025",
		ExpirationDate:    "12/1/2025",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := f.db.Collection("proposals").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test proposal: %v", err)
	}
	return p
}

// CreateProperty inserts a property document.
func (f *Fixtures) CreateProperty(ctx context.Context, p models.Property) models.Property {
	f.t.Helper()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := f.db.Collection("properties").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test property: %v", err)
	}
	return p
}

// CreateExposure inserts an exposure record for (propertyID, lob).
func (f *Fixtures) CreateExposure(ctx context.Context, propertyID, lob string, coverages []map[string]any) models.Exposure {
	f.t.Helper()

	e := models.Exposure{
		PropertyID:              propertyID,
		Lob:                     lob,
		TotalInsurableValue2024: "$10.0M",
		TotalInsurableValue2025: "$12.0M",
		Coverages:               coverages,
	}
	if _, err := f.db.Collection("exposures").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test exposure: %v", err)
	}
	return e
}

// CreateWhatIf inserts a saved scenario for (propertyID, lob).
func (f *Fixtures) CreateWhatIf(ctx context.Context, propertyID, lob, totalPremium string) models.WhatIf {
	f.t.Helper()

	w := models.WhatIf{
		PropertyID:   propertyID,
		Lob:          lob,
		Coverages:    []map[string]any{},
		TotalPremium: totalPremium,
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := f.db.Collection("whatif").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test what-if: %v", err)
	}
	return w
}
