package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.uber.org/multierr"

	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/platform/logging"
)

type RunOptions struct {
	// Refresh fetches and loads fresh data. Without it the run replays the
	// transforms over the tables already in the store.
	Refresh    bool
	LeagueCode string
	Brackets   []bracket.Bracket
}

type RunResult struct {
	Scope        league.Scope
	StagesRun    int
	StagesFailed int
}

type PipelineService struct {
	api       DraftAPI
	schema    SchemaManager
	loader    *LoaderService
	transform *TransformService
	observer  RunObserver
	logger    *logging.Logger
}

func NewPipelineService(api DraftAPI, schema SchemaManager, loader *LoaderService, transform *TransformService, observer RunObserver, logger *logging.Logger) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &PipelineService{
		api:       api,
		schema:    schema,
		loader:    loader,
		transform: transform,
		observer:  observer,
		logger:    logger,
	}
}

// Run executes one pipeline pass. Ingestion failures abort the run; transform
// stage failures are logged, later stages still run, and all of them are
// returned together marked ErrStageFailed.
func (s *PipelineService) Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	opts.LeagueCode = strings.TrimSpace(opts.LeagueCode)
	if opts.LeagueCode == "" {
		return RunResult{}, fmt.Errorf("%w: league code is required", ErrConfig)
	}

	s.logger.InfoContext(ctx, "pipeline started", "league_code", opts.LeagueCode, "refresh", opts.Refresh, "brackets", len(opts.Brackets))

	if err := s.observe("ensure_tables", func() error {
		created, err := s.schema.Ensure(ctx)
		if len(created) > 0 {
			s.logger.InfoContext(ctx, "created tables", "tables", created)
		}
		return markStorage(err, "ensure tables")
	}); err != nil {
		return RunResult{}, err
	}

	var (
		scope league.Scope
		err   error
	)
	if opts.Refresh {
		scope, err = s.ingest(ctx, opts.LeagueCode)
	} else {
		err = s.observe("resolve_scope", func() error {
			var resolveErr error
			scope, resolveErr = s.loader.ResolveScope(ctx)
			return resolveErr
		})
	}
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{Scope: scope}
	var stageErrs error
	for _, st := range s.stages(scope, opts.Brackets) {
		result.StagesRun++
		if err := s.observe(st.name, func() error { return st.run(ctx) }); err != nil {
			result.StagesFailed++
			s.logger.ErrorContext(ctx, "transform stage failed", append([]any{"stage", st.name, "error", err}, st.params...)...)
			stageErrs = multierr.Append(stageErrs, fmt.Errorf("stage %s: %w", st.label(), err))
			continue
		}
		s.logger.InfoContext(ctx, "transform stage done", append([]any{"stage", st.name}, st.params...)...)
	}

	if stageErrs != nil {
		return result, crerr.Mark(stageErrs, ErrStageFailed)
	}
	s.logger.InfoContext(ctx, "pipeline finished", "entries", len(scope.EntryIDs), "max_gw", scope.MaxGW, "stages", result.StagesRun)
	return result, nil
}

func (s *PipelineService) ingest(ctx context.Context, leagueCode string) (league.Scope, error) {
	if err := s.observe("fetch_static", func() error {
		if err := s.api.FetchStatic(ctx); err != nil {
			return err
		}
		return s.api.FetchLeague(ctx, leagueCode)
	}); err != nil {
		return league.Scope{}, err
	}

	if err := s.observe("load_static", func() error { return s.loader.LoadStatic(ctx) }); err != nil {
		return league.Scope{}, err
	}

	var scope league.Scope
	if err := s.observe("resolve_scope", func() error {
		var err error
		scope, err = s.loader.ResolveScope(ctx)
		return err
	}); err != nil {
		return league.Scope{}, err
	}

	if err := s.observe("fetch_live", func() error { return s.fetchLive(ctx, scope) }); err != nil {
		return league.Scope{}, err
	}
	if err := s.observe("load_live", func() error { return s.loader.LoadLive(ctx, scope) }); err != nil {
		return league.Scope{}, err
	}
	return scope, nil
}

func (s *PipelineService) fetchLive(ctx context.Context, scope league.Scope) error {
	gameweeks := scope.Gameweeks()
	for _, entryID := range scope.EntryIDs {
		if err := s.api.FetchEntry(ctx, entryID); err != nil {
			return err
		}
		for _, gw := range gameweeks {
			if err := s.api.FetchEntryEvent(ctx, entryID, gw); err != nil {
				return err
			}
		}
	}
	for _, gw := range gameweeks {
		if err := s.api.FetchLive(ctx, gw); err != nil {
			return err
		}
	}
	return nil
}

type stage struct {
	name   string
	params []any
	run    func(context.Context) error
}

func (st stage) label() string {
	if len(st.params) == 0 {
		return st.name
	}
	return fmt.Sprintf("%s%v", st.name, st.params)
}

// stages lists the transforms in dependency order: points first, then the
// per-gameweek and per-bracket tables that read them.
func (s *PipelineService) stages(scope league.Scope, brackets []bracket.Bracket) []stage {
	out := []stage{
		{name: "concat_team_points", run: func(ctx context.Context) error { return s.transform.ConcatTeamPoints(ctx, scope) }},
		{name: "bench_points", run: func(ctx context.Context) error { return s.transform.BenchPoints(ctx, scope) }},
		{name: "prune_derived", run: func(ctx context.Context) error { return s.transform.PruneDerived(ctx, scope, brackets) }},
	}
	for _, gw := range scope.Gameweeks() {
		out = append(out, stage{
			name:   "blunders",
			params: []any{"gw", gw},
			run:    func(ctx context.Context) error { return s.transform.Blunders(ctx, scope, gw) },
		})
	}
	ordered := append([]bracket.Bracket(nil), brackets...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })
	for _, b := range ordered {
		out = append(out, stage{
			name:   "bracket_standings",
			params: []any{"bracket", b.Name, "start_gw", b.Start, "end_gw", b.End},
			run:    func(ctx context.Context) error { return s.transform.BracketStandings(ctx, scope, b) },
		})
	}
	out = append(out,
		stage{name: "running_standings", run: s.transform.RunningStandings},
		stage{name: "cumulative_points", run: s.transform.CumulativePoints},
		stage{name: "top_bottom_transfers", run: s.transform.TopBottomTransfers},
	)
	return out
}

func (s *PipelineService) observe(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.observer.ObserveStage(name, time.Since(start), err)
	return err
}
