package analytics

import (
	"strconv"

	"github.com/riskibarqy/drafty/internal/domain/bracket"
)

// Export headers. Column names are read by the dashboard and must not change.
var (
	JoinedHeader     = []string{"entry_id", "team", "gw", "points", "total_points"}
	BenchHeader      = []string{"team", "gw", "position", "starting_min_pts", "bench_max_pts", "pts_lost"}
	BenchTotalHeader = []string{"team", "bench_pts"}
	BlunderHeader    = []string{"team", "waiver_or_free", "waiver_gw", "next_gw", "player_in", "player_in_pts", "player_out", "player_out_pts", "net_pts"}
	BracketHeader    = []string{"rank", "team_name", "points"}
	TimelineHeader   = []string{"gw", "pos", "name"}
	CumulativeHeader = []string{"team", "gw", "points", "cumm_points"}
)

func (r TeamPoints) Record() []string {
	return []string{itoa64(r.EntryID), r.Team, itoa(r.GW), itoa(r.Points), itoa(r.TotalPoints)}
}

func (r BenchLoss) Record() []string {
	return []string{r.Team, itoa(r.GW), r.Position.String(), itoa(r.StartingMinPts), itoa(r.BenchMaxPts), itoa(r.PtsLost)}
}

func (r BenchTotal) Record() []string {
	return []string{r.Team, itoa(r.BenchPts)}
}

func (r Blunder) Record() []string {
	return []string{
		r.Team,
		r.WaiverOrFree,
		itoa(r.WaiverGW),
		itoa(r.NextGW),
		r.PlayerIn,
		itoa(r.PlayerInPts),
		r.PlayerOut,
		itoa(r.PlayerOutPts),
		itoa(r.NetPts),
	}
}

func (r TimelineRow) Record() []string {
	return []string{itoa(r.GW), itoa(r.Pos), r.Name}
}

func (r CumulativePoints) Record() []string {
	return []string{r.Team, itoa(r.GW), itoa(r.Points), itoa(r.CummPoints)}
}

func BracketRecord(s bracket.Standing) []string {
	return []string{itoa(s.Rank), s.TeamName, itoa(s.Points)}
}

// Records converts rows with a Record method into CSV records.
func Records[T interface{ Record() []string }](rows []T) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
