package component

import "time"

type MatchState int

const (
	MatchPlaying MatchState = iota
	MatchOver
)

func (s MatchState) String() string {
	if s == MatchOver {
		return "over"
	}
	return "playing"
}

// Match is the singleton match record.
type Match struct {
	ID        string
	State     MatchState
	Winner    string
	StartedAt time.Time
	EndedAt   time.Time
}

var MatchComponent = NewComponent[Match]()
