// internal/domain/models/exposure.go
package models

// Exposure holds insurable values and coverage line items for one line of
// business on a property. (PropertyID, Lob) is the natural key.
//
// Coverage items are caller-defined documents (name, limit, premium,
// deductible, ...); the API passes them through without imposing a schema.
type Exposure struct {
	PropertyID               string           `bson:"propertyId" json:"propertyId"`
	Lob                      string           `bson:"lob" json:"lob"`
	TotalInsurableValue2024  string           `bson:"totalInsurableValue2024,omitempty" json:"totalInsurableValue2024"`
	TotalInsurableValue2025  string           `bson:"totalInsurableValue2025,omitempty" json:"totalInsurableValue2025"`
	Coverages                []map[string]any `bson:"coverages" json:"coverages"`
}
