package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/drafty/internal/domain/analytics"
	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/pick"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
	"github.com/riskibarqy/drafty/internal/platform/logging"
)

// Export file names read by the dashboard.
const (
	ExportJoined         = "joined.csv"
	ExportBenchPoints    = "bench_pts.csv"
	ExportTotalBench     = "total_bench_pts.csv"
	ExportTimeline       = "standings_ts.csv"
	ExportCumulative     = "cumm_points.csv"
	ExportTopTransfers   = "top_df.csv"
	ExportBottomTransfer = "bottom_df.csv"
)

func ExportBlunders(gw int) string {
	return fmt.Sprintf("blunders_%d.csv", gw)
}

func ExportBracket(name string) string {
	return fmt.Sprintf("results_%s.csv", name)
}

type TransformRepositories struct {
	League      league.Repository
	Player      player.Repository
	Transaction transaction.Repository
	History     entryhistory.Repository
	Pick        pick.Repository
	LiveStats   livestats.Repository
	Derived     analytics.Repository
}

// TransformService runs the derived-table stages. Each stage reads its
// inputs, replaces its table and rewrites its export.
type TransformService struct {
	leagueRepo    league.Repository
	playerRepo    player.Repository
	txRepo        transaction.Repository
	historyRepo   entryhistory.Repository
	pickRepo      pick.Repository
	statsRepo     livestats.Repository
	derived       analytics.Repository
	exports       CSVWriter
	transferLimit int
	logger        *logging.Logger
}

func NewTransformService(repos TransformRepositories, exports CSVWriter, logger *logging.Logger) *TransformService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TransformService{
		leagueRepo:    repos.League,
		playerRepo:    repos.Player,
		txRepo:        repos.Transaction,
		historyRepo:   repos.History,
		pickRepo:      repos.Pick,
		statsRepo:     repos.LiveStats,
		derived:       repos.Derived,
		exports:       exports,
		transferLimit: analytics.DefaultTransferLimit,
		logger:        logger,
	}
}

func (s *TransformService) ConcatTeamPoints(ctx context.Context, scope league.Scope) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.ConcatTeamPoints")
	defer span.End()

	entries, err := s.scopedEntries(ctx, scope)
	if err != nil {
		return err
	}
	history, err := s.historyRepo.ListUpTo(ctx, scope.MaxGW)
	if err != nil {
		return markStorage(err, "list history")
	}

	rows := analytics.ConcatTeamPoints(entries, history)
	if err := s.derived.ReplaceTeamPoints(ctx, rows); err != nil {
		return markStorage(err, "replace total_points")
	}
	return s.exports.WriteCSV(ctx, ExportJoined, analytics.JoinedHeader, analytics.Records(rows))
}

func (s *TransformService) BenchPoints(ctx context.Context, scope league.Scope) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.BenchPoints")
	defer span.End()

	entries, err := s.scopedEntries(ctx, scope)
	if err != nil {
		return err
	}
	picks, err := s.pickRepo.ListUpTo(ctx, scope.MaxGW)
	if err != nil {
		return markStorage(err, "list picks")
	}
	stats, err := s.statsIndex(ctx, scope.MaxGW)
	if err != nil {
		return err
	}
	elements, err := s.elementsByID(ctx)
	if err != nil {
		return err
	}

	losses := analytics.BenchLosses(entries, picks, stats, elements)
	totals := analytics.BenchTotals(entries, losses)
	if err := s.derived.ReplaceBenchPoints(ctx, losses, totals); err != nil {
		return markStorage(err, "replace bench points")
	}
	if err := s.exports.WriteCSV(ctx, ExportBenchPoints, analytics.BenchHeader, analytics.Records(losses)); err != nil {
		return err
	}
	return s.exports.WriteCSV(ctx, ExportTotalBench, analytics.BenchTotalHeader, analytics.Records(totals))
}

// Blunders scores the accepted transactions of gw against gw+1 stats.
func (s *TransformService) Blunders(ctx context.Context, scope league.Scope, gw int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.Blunders")
	defer span.End()

	if gw < 1 || gw > scope.MaxGW {
		return fmt.Errorf("%w: gameweek %d outside 1..%d", ErrInvalidInput, gw, scope.MaxGW)
	}

	entries, err := s.scopedEntries(ctx, scope)
	if err != nil {
		return err
	}
	txs, err := s.txRepo.ListAccepted(ctx)
	if err != nil {
		return markStorage(err, "list transactions")
	}
	stats, err := s.statsIndex(ctx, scope.MaxGW)
	if err != nil {
		return err
	}
	elements, err := s.elementsByID(ctx)
	if err != nil {
		return err
	}

	rows := analytics.Blunders(gw, entries, txs, stats, elements)
	if err := s.derived.ReplaceBlunders(ctx, gw, rows); err != nil {
		return markStorage(err, "replace blunders")
	}
	return s.exports.WriteCSV(ctx, ExportBlunders(gw), analytics.BlunderHeader, analytics.Records(rows))
}

// PruneDerived drops per-gameweek and per-bracket rows that the current scope
// and bracket config no longer produce.
func (s *TransformService) PruneDerived(ctx context.Context, scope league.Scope, brackets []bracket.Bracket) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.PruneDerived")
	defer span.End()

	names := make([]string, 0, len(brackets))
	for _, b := range brackets {
		names = append(names, b.Name)
	}
	return markStorage(s.derived.PruneStale(ctx, scope.MaxGW, names), "prune derived tables")
}

func (s *TransformService) BracketStandings(ctx context.Context, scope league.Scope, b bracket.Bracket) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.BracketStandings")
	defer span.End()

	entries, err := s.scopedEntries(ctx, scope)
	if err != nil {
		return err
	}
	points, err := s.derived.ListTeamPoints(ctx)
	if err != nil {
		return markStorage(err, "list total_points")
	}

	rows := analytics.BracketStandings(b, scope.MaxGW, entries, points)
	if err := s.derived.ReplaceBracketStandings(ctx, b.Name, rows); err != nil {
		return markStorage(err, "replace bracket standings")
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, analytics.BracketRecord(r))
	}
	return s.exports.WriteCSV(ctx, ExportBracket(b.Name), analytics.BracketHeader, records)
}

func (s *TransformService) RunningStandings(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.RunningStandings")
	defer span.End()

	points, err := s.derived.ListTeamPoints(ctx)
	if err != nil {
		return markStorage(err, "list total_points")
	}

	rows := analytics.RunningStandings(points)
	if err := s.derived.ReplaceTimeline(ctx, rows); err != nil {
		return markStorage(err, "replace standings_ts")
	}
	return s.exports.WriteCSV(ctx, ExportTimeline, analytics.TimelineHeader, analytics.Records(rows))
}

func (s *TransformService) CumulativePoints(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.CumulativePoints")
	defer span.End()

	points, err := s.derived.ListTeamPoints(ctx)
	if err != nil {
		return markStorage(err, "list total_points")
	}

	rows := analytics.Cumulative(points)
	if err := s.derived.ReplaceCumulativePoints(ctx, rows); err != nil {
		return markStorage(err, "replace cumm_points")
	}
	return s.exports.WriteCSV(ctx, ExportCumulative, analytics.CumulativeHeader, analytics.Records(rows))
}

func (s *TransformService) TopBottomTransfers(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransformService.TopBottomTransfers")
	defer span.End()

	all, err := s.derived.ListBlunders(ctx)
	if err != nil {
		return markStorage(err, "list blunders")
	}

	top, bottom := analytics.TopBottomTransfers(all, s.transferLimit)
	if err := s.derived.ReplaceTransfers(ctx, top, bottom); err != nil {
		return markStorage(err, "replace transfers")
	}
	if err := s.exports.WriteCSV(ctx, ExportTopTransfers, analytics.BlunderHeader, analytics.Records(top)); err != nil {
		return err
	}
	return s.exports.WriteCSV(ctx, ExportBottomTransfer, analytics.BlunderHeader, analytics.Records(bottom))
}

// scopedEntries returns the league entries whose team id is in scope.
func (s *TransformService) scopedEntries(ctx context.Context, scope league.Scope) ([]league.Entry, error) {
	entries, err := s.leagueRepo.ListEntries(ctx)
	if err != nil {
		return nil, markStorage(err, "list league entries")
	}
	inScope := make(map[int64]struct{}, len(scope.EntryIDs))
	for _, id := range scope.EntryIDs {
		inScope[id] = struct{}{}
	}
	out := make([]league.Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := inScope[e.EntryID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *TransformService) statsIndex(ctx context.Context, maxGW int) (livestats.Index, error) {
	// blunders of the last gameweek look one gameweek ahead
	stats, err := s.statsRepo.ListUpTo(ctx, maxGW+1)
	if err != nil {
		return nil, markStorage(err, "list live stats")
	}
	return livestats.NewIndex(stats), nil
}

func (s *TransformService) elementsByID(ctx context.Context) (map[int64]player.Element, error) {
	items, err := s.playerRepo.ListElements(ctx)
	if err != nil {
		return nil, markStorage(err, "list elements")
	}
	out := make(map[int64]player.Element, len(items))
	for _, e := range items {
		out[e.ID] = e
	}
	return out, nil
}
