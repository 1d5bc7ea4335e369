package membership

import "testing"

func TestResolveAction(t *testing.T) {
	confirmed := []Player{
		{ID: "p1", ClubID: "c1", UserID: "u1", Number: 10, Role: RoleCaptain},
		{ID: "p2", ClubID: "c1", UserID: "u2", Number: 11, Role: RoleMember},
		{ID: "p3", ClubID: "c1", UserID: "u3", Number: 12, Role: RoleSubCaptain},
	}
	pending := []Player{
		{ID: "p4", ClubID: "c1", UserID: "u4", Number: -1, Role: RoleMember},
	}

	tests := []struct {
		name     string
		viewerID string
		want     ActionType
	}{
		{"no viewer", "", ActionNone},
		{"captain gets add match", "u1", ActionAddMatch},
		{"plain member gets none", "u2", ActionNone},
		{"sub captain gets add match", "u3", ActionAddMatch},
		{"pending requester gets cancel", "u4", ActionCancelAsk},
		{"outsider gets ask to join", "u5", ActionAskToJoin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAction(tt.viewerID, confirmed, pending); got != tt.want {
				t.Errorf("ResolveAction(%q) = %v, want %v", tt.viewerID, got, tt.want)
			}
		})
	}
}

func TestResolveActionMemberBeatsPending(t *testing.T) {
	// A confirmed plain membership wins over a stray pending record for
	// the same user, the confirmed list is checked first.
	confirmed := []Player{{UserID: "u1", Number: 11, Role: RoleMember}}
	pending := []Player{{UserID: "u1", Number: -1, Role: RoleMember}}

	if got := ResolveAction("u1", confirmed, pending); got != ActionNone {
		t.Errorf("ResolveAction() = %v, want %v", got, ActionNone)
	}
}

func TestNextMemberNumber(t *testing.T) {
	tests := []struct {
		name      string
		confirmed []Player
		want      int
	}{
		{"empty club", nil, 0},
		{"founding captain only", []Player{{Number: 10}}, 11},
		{"takes the max not the last", []Player{{Number: 12}, {Number: 10}, {Number: 11}}, 13},
		{"zero is a valid number", []Player{{Number: 0}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextMemberNumber(tt.confirmed); got != tt.want {
				t.Errorf("NextMemberNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoleCanManage(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleCaptain, true},
		{RoleSubCaptain, true},
		{RoleMember, false},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := tt.role.CanManage(); got != tt.want {
				t.Errorf("CanManage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleFromValue(t *testing.T) {
	for _, v := range []int{1, 2, 3} {
		if _, err := RoleFromValue(v); err != nil {
			t.Errorf("RoleFromValue(%d) unexpected error: %v", v, err)
		}
	}
	if _, err := RoleFromValue(4); err == nil {
		t.Error("RoleFromValue(4) expected error, got nil")
	}
}
