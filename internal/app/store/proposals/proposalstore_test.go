package proposalstore_test

import (
	"testing"

	proposalstore "github.com/dalemusser/riskintel/internal/app/store/proposals"
	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/dalemusser/riskintel/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Proposal{
		Title:     "Acme Tower",
		Client:    "Acme Corp",
		Location:  "Austin, TX",
		Priority:  "high",
		CreatedBy: "Lara",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Status != "to_do" {
		t.Errorf("default status: got %q, want %q", created.Status, "to_do")
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Error("expected timestamps to be set")
	}

	found, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found.Title != "Acme Tower" {
		t.Errorf("Title: got %q, want %q", found.Title, "Acme Tower")
	}
	if found.CreatedBy != "Lara" {
		t.Errorf("CreatedBy: got %q, want %q", found.CreatedBy, "Lara")
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Get(ctx, "no-such-id"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_List_StatusFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProposal(ctx, "A", "Client A", "Austin, TX", "to_do")
	fixtures.CreateProposal(ctx, "B", "Client B", "Boston, MA", "completed")
	fixtures.CreateProposal(ctx, "C", "Client C", "Chicago, IL", "completed")

	completed, err := store.List(ctx, proposalstore.ListFilter{Status: "completed"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(completed) != 2 {
		t.Errorf("completed: got %d, want 2", len(completed))
	}

	// "all" and "" both mean no status filter.
	for _, status := range []string{"all", ""} {
		all, err := store.List(ctx, proposalstore.ListFilter{Status: status})
		if err != nil {
			t.Fatalf("List(%q) failed: %v", status, err)
		}
		if len(all) != 3 {
			t.Errorf("List(%q): got %d, want 3", status, len(all))
		}
	}
}

func TestStore_List_SearchIsCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProposal(ctx, "Acme Tower", "Acme Corp", "Austin, TX", "to_do")
	fixtures.CreateProposal(ctx, "Other Building", "Someone Else", "Boston, MA", "to_do")

	for _, q := range []string{"acme", "ACME", "AcMe"} {
		got, err := store.List(ctx, proposalstore.ListFilter{Search: q})
		if err != nil {
			t.Fatalf("List(search=%q) failed: %v", q, err)
		}
		if len(got) != 1 || got[0].Title != "Acme Tower" {
			t.Errorf("search %q: got %d results", q, len(got))
		}
	}

	// Search matches location too.
	got, err := store.List(ctx, proposalstore.ListFilter{Search: "boston"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Other Building" {
		t.Errorf("location search: got %d results", len(got))
	}

	// And misses return nothing.
	got, err = store.List(ctx, proposalstore.ListFilter{Search: "zzz"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("miss search: got %d results, want 0", len(got))
	}
}

func TestStore_ApplyUpdate_PartialSemantics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orig := fixtures.CreateProposal(ctx, "Acme Tower", "Acme Corp", "Austin, TX", "to_do")

	status := "completed"
	updated, err := store.ApplyUpdate(ctx, orig.ID, proposalstore.Update{Status: &status})
	if err != nil {
		t.Fatalf("ApplyUpdate failed: %v", err)
	}

	if updated.Status != "completed" {
		t.Errorf("status: got %q, want %q", updated.Status, "completed")
	}
	if updated.Title != orig.Title || updated.Client != orig.Client || updated.Location != orig.Location {
		t.Error("untouched fields changed during partial update")
	}
	if updated.UpdatedAt == orig.UpdatedAt {
		t.Error("expected updatedAt to be refreshed")
	}
	if updated.CreatedAt != orig.CreatedAt {
		t.Error("createdAt must not change on update")
	}
}

func TestStore_ApplyUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	status := "completed"
	if _, err := store.ApplyUpdate(ctx, "no-such-id", proposalstore.Update{Status: &status}); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := proposalstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProposal(ctx, "Acme Tower", "Acme Corp", "Austin, TX", "to_do")

	n, err := store.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d, want 1", n)
	}

	n, err = store.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second delete count: got %d, want 0", n)
	}
}
