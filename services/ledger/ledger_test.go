package ledger

import (
	"testing"

	"github.com/idobelieveinmiracle/clubs/services/match"
	"github.com/idobelieveinmiracle/clubs/services/membership"
)

func TestNetBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		costs   []int
		want    int
	}{
		{"no matches leaves balance unchanged", 500, nil, 500},
		{"single match", 500, []int{100}, 400},
		{"costs add up linearly", 500, []int{100, 50}, 350},
		{"balance can go negative", 100, []int{150}, -50},
		{"zero cost match is free", 500, []int{0}, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := membership.Player{ID: "p1", Balance: tt.balance}
			matches := make([]match.Match, 0, len(tt.costs))
			for _, c := range tt.costs {
				matches = append(matches, match.Match{Cost: c, Players: []string{"p1"}})
			}
			if got := NetBalance(p, matches); got != tt.want {
				t.Errorf("NetBalance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNetBalanceChargesFullCostPerAttendee(t *testing.T) {
	// The cost is deliberately not divided among attendees.
	m := match.Match{Cost: 100, Players: []string{"p1", "p2", "p3", "p4"}}
	p := membership.Player{ID: "p1", Balance: 500}

	if got := NetBalance(p, []match.Match{m}); got != 400 {
		t.Errorf("NetBalance() = %d, want 400", got)
	}
}
