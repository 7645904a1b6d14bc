package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestUserFindOrCreateByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	const email = "first-login@store.test"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.FindOrCreateByEmail(email)
	if err != nil {
		t.Fatalf("FindOrCreateByEmail: %v", err)
	}
	if created.Email != email {
		t.Errorf("email: got %q", created.Email)
	}
	if created.DisplayName != "first-login" {
		t.Errorf("display_name: got %q, want local part", created.DisplayName)
	}

	again, err := s.FindOrCreateByEmail(email)
	if err != nil {
		t.Fatalf("second FindOrCreateByEmail: %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("second call created a new account: %v vs %v", again.ID, created.ID)
	}
}

func TestUserFindOrCreateNormalizesEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	t.Cleanup(func() { cleanUsers(t, db, "mixed-case@store.test") })

	created, err := s.FindOrCreateByEmail("  Mixed-Case@Store.Test ")
	if err != nil {
		t.Fatalf("FindOrCreateByEmail: %v", err)
	}
	if created.Email != "mixed-case@store.test" {
		t.Errorf("email not normalized: %q", created.Email)
	}

	found, err := s.FindByEmail("MIXED-CASE@STORE.TEST")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Errorf("lookup with different casing missed the account")
	}
}

func TestUserFindByID(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	const email = "by-id@store.test"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.FindOrCreateByEmail(email)
	if err != nil {
		t.Fatalf("FindOrCreateByEmail: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Email != email {
		t.Errorf("FindByID returned %v", found)
	}

	missing, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for a random ID, got %v", missing)
	}
}

func TestUserDelete(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	const email = "deleted@store.test"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.FindOrCreateByEmail(email)
	if err != nil {
		t.Fatalf("FindOrCreateByEmail: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found != nil {
		t.Errorf("user still present after delete")
	}
}
