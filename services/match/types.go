package match

// Match is one scheduled match of a club. Players holds the attendee
// roster as player ids, in join order. Everything but the roster is
// immutable after creation.
type Match struct {
	ID       string   `json:"matchId" firestore:"-" structs:"-"`
	ClubID   string   `json:"clubId" firestore:"clubId" structs:"clubId"`
	Location string   `json:"location" firestore:"location" structs:"location"`
	Time     int64    `json:"time" firestore:"time" structs:"time"`
	Cost     int      `json:"cost" firestore:"cost" structs:"cost"`
	Players  []string `json:"players" firestore:"players" structs:"players"`
}

// JoinResult reports a join attempt. Failures carry a fixed
// human-readable message, never a wrapped error.
type JoinResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func joinFailed(message string) JoinResult {
	return JoinResult{Success: false, Message: message}
}
