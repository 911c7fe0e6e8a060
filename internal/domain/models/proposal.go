// internal/domain/models/proposal.go
package models

// Proposal is an underwriting submission tracked on the UWR_B dashboard.
//
// Monetary fields (TotalInsuredValue) and dates are stored as the display
// strings the dashboard uses; timestamps are RFC 3339 strings in UTC.
type Proposal struct {
	ID               string `bson:"id" json:"id"`
	Title            string `bson:"title" json:"title"`
	Client           string `bson:"client" json:"client"`
	Location         string `bson:"location" json:"location"`
	Priority         string `bson:"priority" json:"priority"` // high | medium | low
	Status           string `bson:"status" json:"status"`     // to_do | in_process | completed
	ClientID         string `bson:"clientId" json:"clientId"`
	FirstNameInsured string `bson:"firstNameInsured" json:"firstNameInsured"`
	BusinessType     string `bson:"businessType" json:"businessType"`
	TotalInsuredValue string `bson:"totalInsuredValue" json:"totalInsuredValue"` // "$185.0M"
	Website          string `bson:"website" json:"website"`
	CreatedBy        string `bson:"createdBy" json:"createdBy"`
	EffectiveDate    string `bson:"effectiveDate" json:"effectiveDate"`
	ExpirationDate   string `bson:"expirationDate" json:"expirationDate"`
	CreatedAt        string `bson:"createdAt" json:"createdAt"`
	UpdatedAt        string `bson:"updatedAt" json:"updatedAt"`
}
