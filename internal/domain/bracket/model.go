package bracket

import (
	"fmt"
	"regexp"
	"sort"
)

const (
	WinnerPrize   = 50
	RunnerUpPrize = 25
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Bracket is a named, inclusive gameweek range.
type Bracket struct {
	Name  string
	Start int
	End   int
}

// Clip bounds the bracket to [1, maxGW]. ok is false when the bracket has not
// started yet.
func (b Bracket) Clip(maxGW int) (start, end int, ok bool) {
	start, end = b.Start, b.End
	if end > maxGW {
		end = maxGW
	}
	if start > end {
		return start, end, false
	}
	return start, end, true
}

// FromMap builds brackets from the configured name -> [start, end] map,
// ordered by start gameweek.
func FromMap(raw map[string][2]int) []Bracket {
	out := make([]Bracket, 0, len(raw))
	for name, bounds := range raw {
		out = append(out, Bracket{Name: name, Start: bounds[0], End: bounds[1]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ValidatePartition checks that brackets, ordered by start, cover
// 1..seasonGW contiguously without overlap.
func ValidatePartition(brackets []Bracket, seasonGW int) error {
	if seasonGW <= 0 {
		return fmt.Errorf("season gameweeks must be > 0")
	}
	if len(brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}

	seen := make(map[string]struct{}, len(brackets))
	next := 1
	for _, b := range brackets {
		if !namePattern.MatchString(b.Name) {
			return fmt.Errorf("bracket name %q must match %s", b.Name, namePattern.String())
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("duplicate bracket name %q", b.Name)
		}
		seen[b.Name] = struct{}{}

		if b.Start > b.End {
			return fmt.Errorf("bracket %s: start %d is after end %d", b.Name, b.Start, b.End)
		}
		if b.Start != next {
			return fmt.Errorf("bracket %s: expected start %d, got %d", b.Name, next, b.Start)
		}
		next = b.End + 1
	}
	if next-1 != seasonGW {
		return fmt.Errorf("brackets end at gameweek %d, season has %d", next-1, seasonGW)
	}

	return nil
}

// Standing is one ranked row of a bracket table.
type Standing struct {
	Bracket  string
	Rank     int
	EntryID  int64
	TeamName string
	Points   int
}

type PrizeTotal struct {
	TeamName string
	Amount   int
}

// PrizeTotals awards WinnerPrize to rank 1 and RunnerUpPrize to rank 2 of
// every bracket in which at least one point has been scored. Every team seen
// in standings is listed, ordered by amount desc then team name.
func PrizeTotals(standings []Standing) []PrizeTotal {
	totals := make(map[string]int)
	scored := make(map[string]bool)
	for _, s := range standings {
		if _, ok := totals[s.TeamName]; !ok {
			totals[s.TeamName] = 0
		}
		if s.Points > 0 {
			scored[s.Bracket] = true
		}
	}
	for _, s := range standings {
		if !scored[s.Bracket] {
			continue
		}
		switch s.Rank {
		case 1:
			totals[s.TeamName] += WinnerPrize
		case 2:
			totals[s.TeamName] += RunnerUpPrize
		}
	}

	out := make([]PrizeTotal, 0, len(totals))
	for team, amount := range totals {
		out = append(out, PrizeTotal{TeamName: team, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}
