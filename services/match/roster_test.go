package match

import (
	"reflect"
	"testing"

	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/user"
)

func TestAppendRoster(t *testing.T) {
	tests := []struct {
		name     string
		roster   []string
		playerID string
		want     []string
	}{
		{"empty roster", nil, "p1", []string{"p1"}},
		{"appends at the end", []string{"p1", "p2"}, "p3", []string{"p1", "p2", "p3"}},
		{"joining twice keeps one entry", []string{"p1", "p2"}, "p1", []string{"p1", "p2"}},
		{"cleans stored duplicates", []string{"p1", "p1", "p2"}, "p2", []string{"p1", "p2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendRoster(tt.roster, tt.playerID); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AppendRoster() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInRoster(t *testing.T) {
	players := []membership.Player{
		{ID: "p1", UserID: "u1"},
		{ID: "p2", UserID: "u2", User: user.User{ID: "u2"}},
	}
	if !InRoster(players, "u1") {
		t.Error("expected u1 to be in roster")
	}
	if !InRoster(players, "u2") {
		t.Error("expected u2 to be in roster")
	}
	if InRoster(players, "u3") {
		t.Error("did not expect u3 in roster")
	}
}

func TestReconcileRoster(t *testing.T) {
	players := []membership.Player{
		{ID: "p1", UserID: "u1", Number: 10, Role: membership.RoleCaptain},
		{ID: "p2", UserID: "u2", Number: 11, Role: membership.RoleMember},
	}
	users := map[string]user.User{
		"u1": {ID: "u1", DisplayName: "Rose"},
	}

	got := ReconcileRoster(players, users, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 players, got %d", len(got))
	}
	if got[0].User.DisplayName != "Rose" {
		t.Errorf("expected reconciled profile for u1, got %+v", got[0].User)
	}
	// No profile loaded keeps the user id but nothing else.
	if got[1].User.ID != "u2" || got[1].User.DisplayName != "" {
		t.Errorf("expected bare profile for u2, got %+v", got[1].User)
	}
	// Dangling roster id pads out as an anonymous member.
	if got[2].User.DisplayName != "Anonymous" || got[2].Role != membership.RoleMember {
		t.Errorf("expected anonymous placeholder, got %+v", got[2])
	}
}

func TestReconcileRosterNoPadding(t *testing.T) {
	players := []membership.Player{{ID: "p1", UserID: "u1"}}
	got := ReconcileRoster(players, nil, 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 player, got %d", len(got))
	}
}
