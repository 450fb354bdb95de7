package league

import "fmt"

// Entry is a team registered in the draft league. ID is the league entry id
// used by standings; EntryID is the team id used by per-entry endpoints.
type Entry struct {
	ID              int64
	EntryID         int64
	EntryName       string
	PlayerFirstName string
	PlayerLastName  string
	ShortName       string
	WaiverPick      int
}

func (e Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("league entry id is required")
	}
	if e.EntryID <= 0 {
		return fmt.Errorf("league entry team id is required")
	}
	if e.EntryName == "" {
		return fmt.Errorf("league entry name is required")
	}

	return nil
}

// League is the league metadata row from the details payload.
type League struct {
	ID              int64
	Name            string
	AdminEntry      int64
	DraftStatus     string
	Scoring         string
	StartEvent      int
	StopEvent       int
	Trades          string
	TransactionMode string
}

type Standing struct {
	LeagueEntry int64
	Rank        int
	LastRank    int
	RankSort    int
	Total       int
	EventTotal  int
}

// EventStatus is one row of the event-status payload. The highest Event seen
// is the current gameweek.
type EventStatus struct {
	Event      int
	Date       string
	Points     string
	BonusAdded bool
}

type Profile struct {
	EntryID         int64
	Name            string
	PlayerFirstName string
	PlayerLastName  string
	StartedEvent    int
}

// Ownership records which league entry currently holds a player. Owner is
// nil for free agents.
type Ownership struct {
	Element         int64
	Owner           *int64
	Status          string
	InAcceptedTrade bool
}

type DraftChoice struct {
	ID         int64
	Entry      int64
	Element    int64
	Round      int
	Pick       int
	WasAuto    bool
	ChoiceTime string
}

// Scope is the set of entries and the last gameweek a run operates on.
type Scope struct {
	EntryIDs []int64
	MaxGW    int
}

func (s Scope) Gameweeks() []int {
	out := make([]int, 0, s.MaxGW)
	for gw := 1; gw <= s.MaxGW; gw++ {
		out = append(out, gw)
	}
	return out
}

func (s Scope) Validate() error {
	if len(s.EntryIDs) == 0 {
		return fmt.Errorf("scope has no entries")
	}
	if s.MaxGW <= 0 {
		return fmt.Errorf("scope max gameweek must be > 0")
	}
	return nil
}
