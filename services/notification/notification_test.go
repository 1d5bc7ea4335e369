package notification

import (
	"testing"

	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/user"
)

func TestBuild(t *testing.T) {
	pending := []membership.Player{
		{ID: "p1", UserID: "u1", Number: -1},
		{ID: "p2", UserID: "u2", Number: -1},
	}
	users := map[string]user.User{
		"u1": {ID: "u1", DisplayName: "Rose", AvatarURL: "https://cdn/avatar1"},
	}

	got := Build(pending, users)

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].DisplayName != "Rose" {
		t.Errorf("expected display name Rose, got %q", got[0].DisplayName)
	}
	if got[0].Message != "Rose want to join your club" {
		t.Errorf("unexpected message %q", got[0].Message)
	}
	if got[0].AvatarURL != "https://cdn/avatar1" {
		t.Errorf("unexpected avatar %q", got[0].AvatarURL)
	}

	// No profile for u2, falls back to the placeholder name.
	if got[1].DisplayName != "A player" {
		t.Errorf("expected placeholder name, got %q", got[1].DisplayName)
	}
	if got[1].Message != "A player want to join your club" {
		t.Errorf("unexpected message %q", got[1].Message)
	}
	if got[1].ID != "p2" {
		t.Errorf("expected notification id p2, got %q", got[1].ID)
	}
}

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil, nil); len(got) != 0 {
		t.Errorf("expected no notifications, got %d", len(got))
	}
}
