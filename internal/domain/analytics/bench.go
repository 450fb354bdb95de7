package analytics

import (
	"sort"

	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/pick"
	"github.com/riskibarqy/drafty/internal/domain/player"
)

type benchKey struct {
	entryID int64
	gw      int
}

type positionSpread struct {
	startMin int
	hasStart bool
	benchMax int
	hasBench bool
}

// BenchLosses compares, per entry, gameweek and position, the worst starter
// with the best bench player. A loss is recorded only when the bench player
// outscored the starter. Two bench players at one position are not combined.
// Picks without stats or without a known position are ignored.
func BenchLosses(entries []league.Entry, picks []pick.Pick, stats livestats.Index, elements map[int64]player.Element) []BenchLoss {
	names := TeamNames(entries)
	spreads := make(map[benchKey]map[player.Position]*positionSpread)

	for _, p := range picks {
		if _, ok := names[p.EntryID]; !ok {
			continue
		}
		el, ok := elements[p.Element]
		if !ok || !el.Position.Valid() {
			continue
		}
		pts, ok := stats.Points(p.Element, p.GW)
		if !ok {
			continue
		}

		key := benchKey{entryID: p.EntryID, gw: p.GW}
		if spreads[key] == nil {
			spreads[key] = make(map[player.Position]*positionSpread, len(player.AllPositions))
		}
		spread := spreads[key][el.Position]
		if spread == nil {
			spread = &positionSpread{}
			spreads[key][el.Position] = spread
		}

		switch {
		case p.IsStarting():
			if !spread.hasStart || pts < spread.startMin {
				spread.startMin = pts
				spread.hasStart = true
			}
		case p.IsBench():
			if !spread.hasBench || pts > spread.benchMax {
				spread.benchMax = pts
				spread.hasBench = true
			}
		}
	}

	out := make([]BenchLoss, 0)
	for key, byPos := range spreads {
		for _, pos := range player.AllPositions {
			spread, ok := byPos[pos]
			if !ok || !spread.hasStart || !spread.hasBench {
				continue
			}
			if spread.benchMax <= spread.startMin {
				continue
			}
			out = append(out, BenchLoss{
				EntryID:        key.entryID,
				Team:           names[key.entryID],
				GW:             key.gw,
				Position:       pos,
				StartingMinPts: spread.startMin,
				BenchMaxPts:    spread.benchMax,
				PtsLost:        spread.benchMax - spread.startMin,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].EntryID != out[j].EntryID {
			return out[i].EntryID < out[j].EntryID
		}
		if out[i].GW != out[j].GW {
			return out[i].GW < out[j].GW
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// BenchTotals sums losses per entry. Every entry is listed, ordered by
// bench points desc then entry id.
func BenchTotals(entries []league.Entry, losses []BenchLoss) []BenchTotal {
	sums := make(map[int64]int, len(entries))
	for _, l := range losses {
		sums[l.EntryID] += l.PtsLost
	}

	out := make([]BenchTotal, 0, len(entries))
	for _, e := range entries {
		out = append(out, BenchTotal{
			EntryID:  e.EntryID,
			Team:     e.EntryName,
			BenchPts: sums[e.EntryID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BenchPts != out[j].BenchPts {
			return out[i].BenchPts > out[j].BenchPts
		}
		return out[i].EntryID < out[j].EntryID
	})
	return out
}
