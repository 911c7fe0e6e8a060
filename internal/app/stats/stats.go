// Package stats derives the dashboard aggregates from raw record sets:
// submission counts, hit ratios, premium rollups, and filter options.
//
// Everything here is arithmetic over already-fetched documents; handlers
// fetch and stats computes. Malformed currency strings are coerced to zero
// (see the currency package) so an aggregate never fails on one bad record.
package stats

import (
	"math"
	"sort"

	"github.com/dalemusser/riskintel/internal/app/system/currency"
	"github.com/dalemusser/riskintel/internal/domain/models"
)

// ProposalStatistics summarizes the UWR_B proposal pipeline.
type ProposalStatistics struct {
	TotalSubmissions   int     `json:"totalSubmissions"`
	PendingSubmissions int     `json:"pendingSubmissions"`
	InProcess          int     `json:"inProcess"`
	Completed          int     `json:"completed"`
	HitRatio           float64 `json:"hitRatio"`
}

// Proposals counts proposals by status. "to_do" counts as pending. The hit
// ratio is completed/total*100 rounded to one decimal, and 0 when there are
// no proposals at all.
func Proposals(ps []models.Proposal) ProposalStatistics {
	s := ProposalStatistics{TotalSubmissions: len(ps)}
	for _, p := range ps {
		switch p.Status {
		case "to_do":
			s.PendingSubmissions++
		case "in_process":
			s.InProcess++
		case "completed":
			s.Completed++
		}
	}
	s.HitRatio = hitRatio(s.Completed, s.TotalSubmissions)
	return s
}

// PropertyStatistics summarizes the UWR_C property pipeline.
type PropertyStatistics struct {
	NewBusiness        int     `json:"newBusiness"`
	Renewals           int     `json:"renewals"`
	Endorsements       int     `json:"endorsements"`
	PendingSubmissions int     `json:"pendingSubmissions"`
	PotentialPremium   string  `json:"potentialPremium"`
	HitRatio           float64 `json:"hitRatio"`
}

// Properties counts properties by type and status and sums their premiums
// into the potential-premium figure.
func Properties(ps []models.Property) PropertyStatistics {
	var s PropertyStatistics
	var completed int
	var premium float64
	for _, p := range ps {
		switch p.Type {
		case "new_business":
			s.NewBusiness++
		case "renewal":
			s.Renewals++
		case "endorsement":
			s.Endorsements++
		}
		switch p.Status {
		case "pending":
			s.PendingSubmissions++
		case "completed":
			completed++
		}
		premium += currency.Parse(p.Premium)
	}
	s.PotentialPremium = currency.Format(premium)
	s.HitRatio = hitRatio(completed, len(ps))
	return s
}

// Lobs is the fixed line-of-business filter list. It is not derived from
// data; the dashboard offers these six regardless of what properties exist.
var Lobs = []string{"All", "Package", "Property", "Auto", "Inland Marine", "Umbrella", "General Liability"}

// FilterOptions are the dashboard filter dropdowns. "All" is a sentinel
// meaning no filter.
type FilterOptions struct {
	States      []string `json:"states"`
	Lobs        []string `json:"lobs"`
	CustomerIDs []string `json:"customerIds"`
}

// Filters collects the distinct non-empty states and customer ids across the
// given properties, sorted, each prefixed with the "All" sentinel.
func Filters(ps []models.Property) FilterOptions {
	return FilterOptions{
		States:      withAll(distinct(ps, func(p models.Property) string { return p.State })),
		Lobs:        Lobs,
		CustomerIDs: withAll(distinct(ps, func(p models.Property) string { return p.CustomerID })),
	}
}

// QuoteItem is one line of a multiline quote.
type QuoteItem struct {
	Product string `json:"product"`
	Premium string `json:"premium"`
}

// MultilineQuote is the per-property premium rollup across lines of business.
type MultilineQuote struct {
	Items        []QuoteItem `json:"items"`
	TotalPremium string      `json:"totalPremium"`
}

// Quote builds the multiline quote for a property. For each line of business,
// premiumFor reports the saved what-if scenario's total premium; lines with
// no saved scenario are omitted from the items, not zero-filled.
func Quote(lobs []string, premiumFor func(lob string) (string, bool)) MultilineQuote {
	q := MultilineQuote{Items: []QuoteItem{}}
	var total float64
	for _, lob := range lobs {
		raw, ok := premiumFor(lob)
		if !ok {
			continue
		}
		v := currency.Parse(raw)
		q.Items = append(q.Items, QuoteItem{Product: lob, Premium: currency.FormatPrecise(v)})
		total += v
	}
	q.TotalPremium = currency.FormatPrecise(total)
	return q
}

// hitRatio is completed/total*100 rounded to one decimal. The total==0 guard
// is a hard rule, not an approximation.
func hitRatio(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

func distinct(ps []models.Property, field func(models.Property) string) []string {
	seen := make(map[string]struct{})
	for _, p := range ps {
		if v := field(p); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func withAll(vals []string) []string {
	return append([]string{"All"}, vals...)
}
