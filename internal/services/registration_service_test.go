package services

import "testing"

func TestRegistrationService(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	svc := NewRegistrationService(db)

	post, err := posts.CreatePost("Study Group", "Weekly study group", "alice")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	t.Run("CreateRegistration snapshots the post title", func(t *testing.T) {
		reg, err := svc.CreateRegistration("alice", post, "Bob", "b@x.com", "math")
		if err != nil {
			t.Fatalf("CreateRegistration failed: %v", err)
		}
		if reg.ID == "" {
			t.Error("Expected registration ID to be assigned")
		}
		if reg.PostTitle != "Study Group" {
			t.Errorf("PostTitle mismatch: got %s, want Study Group", reg.PostTitle)
		}

		// Renaming the post must not touch the stored snapshot
		if _, err := db.Exec("UPDATE posts SET title = ? WHERE id = ?", "Renamed", post.ID); err != nil {
			t.Fatalf("Failed to rename post: %v", err)
		}

		regs, err := svc.ListRegistrationsByUsername("alice")
		if err != nil {
			t.Fatalf("ListRegistrationsByUsername failed: %v", err)
		}
		if len(regs) != 1 {
			t.Fatalf("Expected 1 registration, got %d", len(regs))
		}
		if regs[0].PostTitle != "Study Group" {
			t.Errorf("Snapshot changed after post rename: got %s", regs[0].PostTitle)
		}
	})

	t.Run("Duplicate registrations are allowed", func(t *testing.T) {
		if _, err := svc.CreateRegistration("alice", post, "Bob", "b@x.com", "math"); err != nil {
			t.Fatalf("Second registration failed: %v", err)
		}

		regs, err := svc.ListRegistrationsByUsername("alice")
		if err != nil {
			t.Fatalf("ListRegistrationsByUsername failed: %v", err)
		}
		if len(regs) != 2 {
			t.Errorf("Expected 2 registrations, got %d", len(regs))
		}
	})

	t.Run("ListRegistrationsByUsername filters by registrant", func(t *testing.T) {
		regs, err := svc.ListRegistrationsByUsername("carol")
		if err != nil {
			t.Fatalf("ListRegistrationsByUsername failed: %v", err)
		}
		if len(regs) != 0 {
			t.Errorf("Expected no registrations for carol, got %d", len(regs))
		}
	})
}
