// internal/domain/models/limits.go
package models

// Limits holds the categorized limit-of-liability entries for one line of
// business on a property. (PropertyID, Lob) is the natural key.
type Limits struct {
	PropertyID string           `bson:"propertyId" json:"propertyId"`
	Lob        string           `bson:"lob" json:"lob"`
	Categories []map[string]any `bson:"categories" json:"categories"`
}
