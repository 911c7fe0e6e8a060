// internal/app/features/seed/seeddata.go
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/google/uuid"
)

// Users returns the two fixed demo accounts, one per dashboard role.
func Users() []models.User {
	return []models.User{
		{
			ID:       uuid.NewString(),
			Username: "LARA",
			Password: "password123",
			FullName: "Lara",
			Role:     "UWR_B",
			Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Lara",
		},
		{
			ID:       uuid.NewString(),
			Username: "ZARA",
			Password: "password123",
			FullName: "Zara",
			Role:     "UWR_C",
			Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Zara",
		},
	}
}

// seedEntry is one row of the fixed demo property table.
type seedEntry struct {
	title        string
	client       string
	location     string
	priority     string
	status       string
	businessType string
	value        string
}

var seedEntries = []seedEntry{
	{"Austin Commercial Center", "John's Bakery", "Springfield, IL", "low", "completed", "Retail", "$45.0M"},
	{"Austin Office Tower", "Summit Commercial Inc.", "Austin, TX", "medium", "completed", "Office", "$78.0M"},
	{"Austin Retail Plaza", "Coastal Properties LLC Inc.", "Austin, TX", "high", "completed", "Retail", "$52.0M"},
	{"Boston Commercial Center", "Apex Real Estate Inc.", "Boston, MA", "medium", "completed", "Office", "$95.0M"},
	{"Boston Retail Plaza", "Horizon Investments Inc.", "Boston, MA", "medium", "to_do", "Retail", "$38.0M"},
	{"Charlotte Office Tower", "Apex Real Estate Inc.", "Charlotte, NC", "low", "completed", "Office", "$62.0M"},
	{"Denver Shopping Mall", "Mountain View Properties", "Denver, CO", "high", "in_process", "Retail", "$120.0M"},
	{"Miami Beach Resort", "Oceanfront Hotels Group", "Miami, FL", "high", "in_process", "Hotel & Hospitality", "$250.0M"},
	{"Seattle Tech Campus", "Pacific Northwest Tech Inc.", "Seattle, WA", "medium", "to_do", "Technology", "$180.0M"},
	{"Portland Industrial Park", "Northwest Manufacturing", "Portland, OR", "low", "completed", "Manufacturing", "$65.0M"},
	{"Phoenix Medical Center", "Desert Healthcare Systems", "Phoenix, AZ", "high", "in_process", "Healthcare", "$145.0M"},
	{"Las Vegas Convention Center", "Nevada Events Corp", "Las Vegas, NV", "medium", "in_process", "Entertainment", "$200.0M"},
	{"Atlanta Financial Tower", "Southern Banking Group", "Atlanta, GA", "high", "to_do", "Finance", "$165.0M"},
	{"San Francisco Tech Hub", "Bay Area Ventures LLC", "San Francisco, CA", "high", "in_process", "Technology", "$320.0M"},
	{"Houston Energy Complex", "Texas Energy Holdings", "Houston, TX", "medium", "completed", "Energy", "$275.0M"},
	{"Detroit Manufacturing Plant", "Great Lakes Industrial", "Detroit, MI", "low", "to_do", "Manufacturing", "$85.0M"},
	{"Philadelphia Historic Building", "Liberty Properties Inc.", "Philadelphia, PA", "medium", "completed", "Office", "$72.0M"},
	{"Nashville Music Hall", "Tennessee Entertainment LLC", "Nashville, TN", "low", "completed", "Entertainment", "$48.0M"},
	{"Minneapolis Corporate Center", "Twin Cities Realty", "Minneapolis, MN", "medium", "in_process", "Office", "$98.0M"},
	{"San Diego Coastal Resort", "Pacific Beachfront Hotels", "San Diego, CA", "high", "in_process", "Hotel & Hospitality", "$195.0M"},
	{"New Orleans Convention Hotel", "Crescent City Hospitality", "New Orleans, LA", "medium", "to_do", "Hotel & Hospitality", "$125.0M"},
	{"Pittsburgh Innovation Center", "Steel City Ventures", "Pittsburgh, PA", "low", "completed", "Technology", "$78.0M"},
	{"Indianapolis Distribution Hub", "Midwest Logistics Corp", "Indianapolis, IN", "medium", "in_process", "Logistics", "$92.0M"},
	{"Tampa Bay Medical Plaza", "Florida Healthcare Partners", "Tampa, FL", "high", "to_do", "Healthcare", "$115.0M"},
	{"Kansas City Business Park", "Heartland Commercial Group", "Kansas City, MO", "low", "completed", "Office", "$68.0M"},
	{"Salt Lake City Ski Resort", "Mountain Peak Resorts Inc.", "Salt Lake City, UT", "high", "in_process", "Hotel & Hospitality", "$155.0M"},
	{"Raleigh Research Facility", "Triangle Innovation Partners", "Raleigh, NC", "medium", "completed", "Technology", "$88.0M"},
	{"Milwaukee Brewery Complex", "Great Lakes Brewing Co", "Milwaukee, WI", "low", "to_do", "Manufacturing", "$42.0M"},
	{"Richmond Historic District", "Virginia Heritage Properties", "Richmond, VA", "medium", "in_process", "Mixed Use", "$105.0M"},
	{"Oklahoma City Energy Tower", "Plains Petroleum Group", "Oklahoma City, OK", "high", "completed", "Energy", "$132.0M"},
	{"Louisville Distribution Center", "Kentucky Commerce Holdings", "Louisville, KY", "medium", "to_do", "Logistics", "$75.0M"},
	{"Tucson Desert Plaza", "Southwest Retail Partners", "Tucson, AZ", "low", "completed", "Retail", "$55.0M"},
	{"Albuquerque Tech Park", "Rio Grande Innovation LLC", "Albuquerque, NM", "medium", "in_process", "Technology", "$82.0M"},
	{"Buffalo Industrial Complex", "Great Lakes Manufacturing", "Buffalo, NY", "low", "completed", "Manufacturing", "$58.0M"},
	{"Fresno Agricultural Center", "Central Valley Agribusiness", "Fresno, CA", "medium", "to_do", "Agriculture", "$48.0M"},
	{"Omaha Financial Plaza", "Midwest Banking Corporation", "Omaha, NE", "high", "in_process", "Finance", "$128.0M"},
	{"Boise Tech Campus", "Mountain West Technology", "Boise, ID", "medium", "completed", "Technology", "$95.0M"},
	{"Charleston Historic Inn", "Lowcountry Hospitality Group", "Charleston, SC", "high", "to_do", "Hotel & Hospitality", "$112.0M"},
	{"Spokane Medical Complex", "Inland Northwest Healthcare", "Spokane, WA", "medium", "in_process", "Healthcare", "$98.0M"},
}

// Proposals returns the 39 demo proposals: a fixed flagship entry plus one
// proposal per table row with derived client id, contact, website, and
// policy dates.
func Proposals() []models.Proposal {
	now := time.Now().UTC().Format(time.RFC3339)

	out := []models.Proposal{{
		ID:                "prop-001",
		Title:             "JW Marriott Chicago",
		Client:            "Marriott International Inc.",
		Location:          "Chicago, IL",
		Priority:          "high",
		Status:            "in_process",
		ClientID:          "CLT-60F86F01",
		FirstNameInsured:  "William",
		BusinessType:      "Hotel & Hospitality",
		TotalInsuredValue: "$185.0M",
		Website:           "www.marriottinterna.com",
		CreatedBy:         "LARA",
		EffectiveDate:     "10/26/2025",
		ExpirationDate:    "12/25/2025",
		CreatedAt:         now,
		UpdatedAt:         now,
	}}

	for idx, e := range seedEntries {
		i := idx + 2
		day := (i % 28) + 1
		out = append(out, models.Proposal{
			ID:                fmt.Sprintf("prop-%03d", i),
			Title:             e.title,
			Client:            e.client,
			Location:          e.location,
			Priority:          e.priority,
			Status:            e.status,
			ClientID:          "CLT-" + clientIDSuffix(),
			FirstNameInsured:  strings.Fields(e.client)[0],
			BusinessType:      e.businessType,
			TotalInsuredValue: e.value,
			Website:           websiteFor(e.client),
			CreatedBy:         "LARA",
			EffectiveDate:     fmt.Sprintf("10/%d/2025", day),
			ExpirationDate:    fmt.Sprintf("12/%d/2025", day),
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}
	return out
}

func clientIDSuffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// websiteFor derives a demo domain from the client name: lowercased, with
// spaces and punctuation stripped, truncated to 15 characters.
func websiteFor(client string) string {
	s := strings.ToLower(client)
	s = strings.NewReplacer(" ", "", ".", "", ",", "").Replace(s)
	if len(s) > 15 {
		s = s[:15]
	}
	return "www." + s + ".com"
}
