// internal/domain/models/whatif.go
package models

// WhatIf is a saved premium scenario for one line of business on a property.
// At most one exists per (PropertyID, Lob); saves upsert on that pair.
type WhatIf struct {
	PropertyID   string           `bson:"propertyId" json:"propertyId"`
	Lob          string           `bson:"lob" json:"lob"`
	Coverages    []map[string]any `bson:"coverages" json:"coverages"`
	TotalPremium string           `bson:"totalPremium" json:"totalPremium"` // "$1.50M"
	UpdatedAt    string           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
