package analytics

import (
	"sort"

	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
)

// Blunders scores the accepted transactions of gameweek gw against the
// players' points in gw+1. net_pts is in minus out. Transactions whose
// players have no stats in gw+1 are dropped. Rows are ordered by net_pts
// asc then transaction id.
func Blunders(gw int, entries []league.Entry, txs []transaction.Transaction, stats livestats.Index, elements map[int64]player.Element) []Blunder {
	names := TeamNames(entries)
	next := gw + 1

	out := make([]Blunder, 0)
	for _, tx := range txs {
		if tx.GW != gw || !tx.Accepted() {
			continue
		}
		team, ok := names[tx.Entry]
		if !ok {
			continue
		}
		inPts, okIn := stats.Points(tx.ElementIn, next)
		outPts, okOut := stats.Points(tx.ElementOut, next)
		if !okIn || !okOut {
			continue
		}
		out = append(out, Blunder{
			TransactionID: tx.ID,
			EntryID:       tx.Entry,
			Team:          team,
			WaiverOrFree:  tx.Kind,
			WaiverGW:      gw,
			NextGW:        next,
			PlayerIn:      elementName(elements, tx.ElementIn),
			PlayerInPts:   inPts,
			PlayerOut:     elementName(elements, tx.ElementOut),
			PlayerOutPts:  outPts,
			NetPts:        inPts - outPts,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].NetPts != out[j].NetPts {
			return out[i].NetPts < out[j].NetPts
		}
		return out[i].TransactionID < out[j].TransactionID
	})
	return out
}

// TopBottomTransfers picks the n best and n worst blunder rows across all
// gameweeks. Ties are broken by waiver gameweek then transaction id.
func TopBottomTransfers(all []Blunder, n int) (top, bottom []Blunder) {
	if n <= 0 {
		n = DefaultTransferLimit
	}

	top = append([]Blunder(nil), all...)
	sort.Slice(top, func(i, j int) bool {
		if top[i].NetPts != top[j].NetPts {
			return top[i].NetPts > top[j].NetPts
		}
		return tieBreak(top[i], top[j])
	})

	bottom = append([]Blunder(nil), all...)
	sort.Slice(bottom, func(i, j int) bool {
		if bottom[i].NetPts != bottom[j].NetPts {
			return bottom[i].NetPts < bottom[j].NetPts
		}
		return tieBreak(bottom[i], bottom[j])
	})

	if len(top) > n {
		top = top[:n]
	}
	if len(bottom) > n {
		bottom = bottom[:n]
	}
	return top, bottom
}

func tieBreak(a, b Blunder) bool {
	if a.WaiverGW != b.WaiverGW {
		return a.WaiverGW < b.WaiverGW
	}
	return a.TransactionID < b.TransactionID
}

func elementName(elements map[int64]player.Element, id int64) string {
	if el, ok := elements[id]; ok && el.WebName != "" {
		return el.WebName
	}
	return ""
}
