package analytics

import (
	"sort"

	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/league"
)

// ConcatTeamPoints joins each in-scope entry's history with its team name.
// Rows are ordered by entry id then gameweek.
func ConcatTeamPoints(entries []league.Entry, history []entryhistory.History) []TeamPoints {
	names := TeamNames(entries)
	out := make([]TeamPoints, 0, len(history))
	for _, h := range history {
		name, ok := names[h.EntryID]
		if !ok {
			continue
		}
		out = append(out, TeamPoints{
			EntryID:     h.EntryID,
			Team:        name,
			GW:          h.GW,
			Points:      h.Points,
			TotalPoints: h.TotalPoints,
		})
	}
	sortTeamPoints(out)
	return out
}

// Cumulative turns per-gameweek points into a running sum per entry.
func Cumulative(points []TeamPoints) []CumulativePoints {
	rows := append([]TeamPoints(nil), points...)
	sortTeamPoints(rows)

	out := make([]CumulativePoints, 0, len(rows))
	running := make(map[int64]int)
	for _, p := range rows {
		running[p.EntryID] += p.Points
		out = append(out, CumulativePoints{
			EntryID:    p.EntryID,
			Team:       p.Team,
			GW:         p.GW,
			Points:     p.Points,
			CummPoints: running[p.EntryID],
		})
	}
	return out
}

// RunningStandings ranks every entry in every gameweek by cumulative points.
// Ties go to the lower entry id. Positions run 1..N per gameweek.
func RunningStandings(points []TeamPoints) []TimelineRow {
	byGW := make(map[int]map[int64]int)
	names := make(map[int64]string)
	for _, p := range points {
		if byGW[p.GW] == nil {
			byGW[p.GW] = make(map[int64]int)
		}
		byGW[p.GW][p.EntryID] += p.Points
		names[p.EntryID] = p.Team
	}

	gws := make([]int, 0, len(byGW))
	for gw := range byGW {
		gws = append(gws, gw)
	}
	sort.Ints(gws)

	entryIDs := make([]int64, 0, len(names))
	for id := range names {
		entryIDs = append(entryIDs, id)
	}
	sort.Slice(entryIDs, func(i, j int) bool { return entryIDs[i] < entryIDs[j] })

	type score struct {
		entryID int64
		total   int
	}

	out := make([]TimelineRow, 0, len(gws)*len(entryIDs))
	running := make(map[int64]int, len(entryIDs))
	for _, gw := range gws {
		scores := make([]score, 0, len(entryIDs))
		for _, id := range entryIDs {
			running[id] += byGW[gw][id]
			scores = append(scores, score{entryID: id, total: running[id]})
		}
		sort.SliceStable(scores, func(i, j int) bool {
			if scores[i].total != scores[j].total {
				return scores[i].total > scores[j].total
			}
			return scores[i].entryID < scores[j].entryID
		})
		for i, s := range scores {
			out = append(out, TimelineRow{
				GW:      gw,
				Pos:     i + 1,
				EntryID: s.entryID,
				Name:    names[s.entryID],
			})
		}
	}
	return out
}

// BracketStandings sums points per entry over the bracket clipped to maxGW.
// Every entry is ranked, with 0 points when the bracket has not started.
func BracketStandings(b bracket.Bracket, maxGW int, entries []league.Entry, points []TeamPoints) []bracket.Standing {
	start, end, started := b.Clip(maxGW)

	totals := make(map[int64]int, len(entries))
	if started {
		for _, p := range points {
			if p.GW >= start && p.GW <= end {
				totals[p.EntryID] += p.Points
			}
		}
	}

	out := make([]bracket.Standing, 0, len(entries))
	for _, e := range entries {
		out = append(out, bracket.Standing{
			Bracket:  b.Name,
			EntryID:  e.EntryID,
			TeamName: e.EntryName,
			Points:   totals[e.EntryID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].EntryID < out[j].EntryID
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func sortTeamPoints(rows []TeamPoints) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EntryID != rows[j].EntryID {
			return rows[i].EntryID < rows[j].EntryID
		}
		return rows[i].GW < rows[j].GW
	})
}
