// internal/domain/models/property.go
package models

// Property is a submission on the UWR_C dashboard. Properties are read-only
// through the API; the collection is populated out of band.
type Property struct {
	ID           string   `bson:"id" json:"id"`
	PropertyName string   `bson:"propertyName,omitempty" json:"propertyName,omitempty"`
	CustomerName string   `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerID   string   `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Type         string   `bson:"type,omitempty" json:"type,omitempty"`     // new_business | renewal | endorsement
	Status       string   `bson:"status,omitempty" json:"status,omitempty"` // pending | completed | ...
	Premium      string   `bson:"premium,omitempty" json:"premium,omitempty"` // "$1.5M"
	State        string   `bson:"state,omitempty" json:"state,omitempty"`
	Lobs         []string `bson:"lobs,omitempty" json:"lobs,omitempty"` // line-of-business codes
	SicCode      string   `bson:"sicCode,omitempty" json:"sicCode,omitempty"`
	Product      string   `bson:"product,omitempty" json:"product,omitempty"`
	Operation    string   `bson:"operation,omitempty" json:"operation,omitempty"`
	EffectiveDate  string `bson:"effectiveDate,omitempty" json:"effectiveDate,omitempty"`
	ExpirationDate string `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
}
