package uwrc_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/riskintel/internal/app/features/uwrc"
	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/dalemusser/riskintel/internal/testutil"
	"go.uber.org/zap"
)

func seedProperties(t *testing.T, fixtures *testutil.Fixtures) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProperty(ctx, models.Property{
		ID:           "prop-1",
		PropertyName: "JW Marriott Chicago",
		CustomerName: "Marriott",
		CustomerID:   "CUST-001",
		Type:         "new_business",
		Status:       "pending",
		Premium:      "$2.0M",
		State:        "IL",
		Lobs:         []string{"Property", "Auto"},
	})
	fixtures.CreateProperty(ctx, models.Property{
		ID:           "prop-2",
		PropertyName: "Hilton Austin",
		CustomerName: "Hilton",
		CustomerID:   "CUST-002",
		Type:         "renewal",
		Status:       "completed",
		Premium:      "$3.0M",
		State:        "TX",
		Lobs:         []string{"Property"},
	})
}

func TestStatistics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := uwrc.NewHandler(db, zap.NewNop())
	seedProperties(t, testutil.NewFixtures(t, db))

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	rec := httptest.NewRecorder()
	h.Statistics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var resp struct {
		NewBusiness        int     `json:"newBusiness"`
		Renewals           int     `json:"renewals"`
		PendingSubmissions int     `json:"pendingSubmissions"`
		PotentialPremium   string  `json:"potentialPremium"`
		HitRatio           float64 `json:"hitRatio"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.NewBusiness != 1 || resp.Renewals != 1 || resp.PendingSubmissions != 1 {
		t.Errorf("counts: got %+v", resp)
	}
	if resp.PotentialPremium != "$5.0M" {
		t.Errorf("potentialPremium: got %q, want %q", resp.PotentialPremium, "$5.0M")
	}
	if resp.HitRatio != 50.0 {
		t.Errorf("hitRatio: got %v, want 50", resp.HitRatio)
	}
}

func TestList_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := uwrc.NewHandler(db, zap.NewNop())
	seedProperties(t, testutil.NewFixtures(t, db))

	cases := []struct {
		name   string
		target string
		want   []string
	}{
		{"no filter", "/properties", []string{"prop-1", "prop-2"}},
		{"All sentinels", "/properties?state=All&lob=All&customerId=All", []string{"prop-1", "prop-2"}},
		{"by state", "/properties?state=TX", []string{"prop-2"}},
		{"by lob membership", "/properties?lob=Auto", []string{"prop-1"}},
		{"by customer", "/properties?customerId=CUST-002", []string{"prop-2"}},
		{"no match", "/properties?state=NY", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rec.Code)
			}
			var got []models.Property
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("results: got %d, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("result %d: got %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilters_Options(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := uwrc.NewHandler(db, zap.NewNop())
	seedProperties(t, testutil.NewFixtures(t, db))

	req := httptest.NewRequest(http.MethodGet, "/filters", nil)
	rec := httptest.NewRecorder()
	h.Filters(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var resp struct {
		States      []string `json:"states"`
		Lobs        []string `json:"lobs"`
		CustomerIDs []string `json:"customerIds"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	wantStates := []string{"All", "IL", "TX"}
	if len(resp.States) != len(wantStates) {
		t.Fatalf("states: got %v, want %v", resp.States, wantStates)
	}
	for i, s := range wantStates {
		if resp.States[i] != s {
			t.Errorf("states[%d]: got %q, want %q", i, resp.States[i], s)
		}
	}
	if len(resp.Lobs) != 7 || resp.Lobs[0] != "All" {
		t.Errorf("lobs: got %v", resp.Lobs)
	}
	if len(resp.CustomerIDs) != 3 || resp.CustomerIDs[0] != "All" {
		t.Errorf("customerIds: got %v", resp.CustomerIDs)
	}
}
