package membership

// ResolveAction computes what the viewer may do on a club, given a
// snapshot of the confirmed members and the pending requesters. First
// match wins:
//
//  1. no viewer -> NONE
//  2. viewer is confirmed -> NONE for plain members, ADD_MATCH for
//     captains and sub-captains
//  3. viewer has a pending request -> CANCEL_ASK
//  4. otherwise -> ASK_TO_JOIN
//
// The two lists come from separate reads, so the caller owns whatever
// consistency they have.
func ResolveAction(viewerID string, confirmed []Player, pending []Player) ActionType {
	if viewerID == "" {
		return ActionNone
	}

	for _, p := range confirmed {
		if p.UserID != viewerID {
			continue
		}
		if p.Role.CanManage() {
			return ActionAddMatch
		}
		return ActionNone
	}

	for _, p := range pending {
		if p.UserID == viewerID {
			return ActionCancelAsk
		}
	}

	return ActionAskToJoin
}

// NextMemberNumber returns the number to assign when a pending request is
// approved: one past the highest confirmed number in the club. Pending
// records (negative numbers) never influence the result.
func NextMemberNumber(confirmed []Player) int {
	max := -1
	for _, p := range confirmed {
		if p.Number > max {
			max = p.Number
		}
	}
	return max + 1
}
