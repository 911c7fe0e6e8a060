package properties_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/riskintel/internal/app/features/properties"
	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/dalemusser/riskintel/internal/testutil"
	"go.uber.org/zap"
)

func withPropertyLob(req *http.Request, id, lob string) *http.Request {
	req = testutil.WithChiURLParam(req, "propertyID", id)
	return testutil.WithChiURLParam(req, "lob", lob)
}

func TestDetail_FoundAnd404(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProperty(ctx, models.Property{ID: "prop-1", PropertyName: "JW Marriott Chicago"})

	req := httptest.NewRequest(http.MethodGet, "/prop-1", nil)
	req = testutil.WithChiURLParam(req, "propertyID", "prop-1")
	rec := httptest.NewRecorder()
	h.Detail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var got models.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PropertyName != "JW Marriott Chicago" {
		t.Errorf("propertyName: got %q", got.PropertyName)
	}

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	req = testutil.WithChiURLParam(req, "propertyID", "missing")
	rec = httptest.NewRecorder()
	h.Detail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status: got %d, want 404", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Property not found" {
		t.Errorf("error: got %q, want %q", resp.Error, "Property not found")
	}
}

func TestExposure_DefaultWhenAbsent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/prop-1/exposure/Property", nil)
	req = withPropertyLob(req, "prop-1", "Property")
	rec := httptest.NewRecorder()
	h.Exposure(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var got models.Exposure
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PropertyID != "prop-1" || got.Lob != "Property" {
		t.Errorf("keys: got %+v", got)
	}
	if got.TotalInsurableValue2024 != "$0M" || got.TotalInsurableValue2025 != "$0M" {
		t.Errorf("default TIVs: got %q / %q", got.TotalInsurableValue2024, got.TotalInsurableValue2025)
	}
	if got.Coverages == nil || len(got.Coverages) != 0 {
		t.Errorf("default coverages: got %v, want empty array", got.Coverages)
	}
}

func TestExposure_ReturnsStoredRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateExposure(ctx, "prop-1", "Property",
		[]map[string]any{{"name": "Building", "premium": "$1.00M"}})

	req := httptest.NewRequest(http.MethodGet, "/prop-1/exposure/Property", nil)
	req = withPropertyLob(req, "prop-1", "Property")
	rec := httptest.NewRecorder()
	h.Exposure(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var got models.Exposure
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalInsurableValue2024 != "$10.0M" {
		t.Errorf("tiv2024: got %q", got.TotalInsurableValue2024)
	}
	if len(got.Coverages) != 1 {
		t.Errorf("coverages: got %d items", len(got.Coverages))
	}
}

func TestLimitOfLiability_DefaultWhenAbsent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/prop-1/limits/Auto", nil)
	req = withPropertyLob(req, "prop-1", "Auto")
	rec := httptest.NewRecorder()
	h.LimitOfLiability(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var got models.Limits
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PropertyID != "prop-1" || got.Lob != "Auto" {
		t.Errorf("keys: got %+v", got)
	}
	if got.Categories == nil || len(got.Categories) != 0 {
		t.Errorf("default categories: got %v, want empty array", got.Categories)
	}
}

func TestWhatIfGet_ResolutionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// No scenario, no exposure: empty scenario with totalPremium "0".
	req := httptest.NewRequest(http.MethodGet, "/prop-1/whatif/Property", nil)
	req = withPropertyLob(req, "prop-1", "Property")
	rec := httptest.NewRecorder()
	h.WhatIfGet(rec, req)

	var got models.WhatIf
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalPremium != "0" || len(got.Coverages) != 0 {
		t.Errorf("empty default: got %+v", got)
	}

	// Exposure present: its coverages seed the scenario, premium stays "0".
	fixtures.CreateExposure(ctx, "prop-1", "Property",
		[]map[string]any{{"name": "Building", "premium": "$1.00M"}})

	rec = httptest.NewRecorder()
	h.WhatIfGet(rec, req)
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalPremium != "0" || len(got.Coverages) != 1 {
		t.Errorf("exposure-seeded: got %+v", got)
	}

	// Saved scenario wins over the exposure.
	fixtures.CreateWhatIf(ctx, "prop-1", "Property", "$2.50M")

	rec = httptest.NewRecorder()
	h.WhatIfGet(rec, req)
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalPremium != "$2.50M" {
		t.Errorf("saved scenario: got %+v", got)
	}
}

func TestWhatIfSave(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(http.MethodPost, "/prop-1/whatif/Property",
		`{"coverages":[{"name":"Building","premium":"$1.00M"}],"totalPremium":"$1.00M"}`)
	req = withPropertyLob(req, "prop-1", "Property")
	rec := httptest.NewRecorder()
	h.WhatIfSave(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "What-if analysis saved" {
		t.Errorf("response: got %+v", resp)
	}

	// The scenario round-trips through the get endpoint.
	getReq := httptest.NewRequest(http.MethodGet, "/prop-1/whatif/Property", nil)
	getReq = withPropertyLob(getReq, "prop-1", "Property")
	rec = httptest.NewRecorder()
	h.WhatIfGet(rec, getReq)

	var got models.WhatIf
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalPremium != "$1.00M" || len(got.Coverages) != 1 {
		t.Errorf("round-trip: got %+v", got)
	}
}

func TestWhatIfSave_MalformedBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(http.MethodPost, "/prop-1/whatif/Property", `{"coverages":`)
	req = withPropertyLob(req, "prop-1", "Property")
	rec := httptest.NewRecorder()
	h.WhatIfSave(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", rec.Code)
	}
}

func TestMultilineQuote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProperty(ctx, models.Property{
		ID:   "prop-1",
		Lobs: []string{"Property", "Auto", "Umbrella"},
	})
	fixtures.CreateWhatIf(ctx, "prop-1", "Property", "$2.00M")
	fixtures.CreateWhatIf(ctx, "prop-1", "Auto", "$0.50M")
	// No scenario for Umbrella: it must be omitted, not zero-filled.

	req := httptest.NewRequest(http.MethodGet, "/prop-1/multiline-quote", nil)
	req = testutil.WithChiURLParam(req, "propertyID", "prop-1")
	rec := httptest.NewRecorder()
	h.MultilineQuote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items []struct {
			Product string `json:"product"`
			Premium string `json:"premium"`
		} `json:"items"`
		TotalPremium string `json:"totalPremium"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items: got %d, want 2", len(resp.Items))
	}
	if resp.Items[0].Product != "Property" || resp.Items[0].Premium != "$2.00M" {
		t.Errorf("item 0: got %+v", resp.Items[0])
	}
	if resp.TotalPremium != "$2.50M" {
		t.Errorf("totalPremium: got %q, want %q", resp.TotalPremium, "$2.50M")
	}
}

func TestMultilineQuote_PropertyNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := properties.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/missing/multiline-quote", nil)
	req = testutil.WithChiURLParam(req, "propertyID", "missing")
	rec := httptest.NewRecorder()
	h.MultilineQuote(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
