package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/pick"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
	"github.com/riskibarqy/drafty/internal/infrastructure/staging"
	"github.com/riskibarqy/drafty/internal/platform/logging"
)

// Staged file keys understood by LoadFile.
const (
	KeyLeagueEntries = "league_entries"
	KeyLeague        = "league"
	KeyStandings     = "standings"
	KeyStatus        = "status"
	KeyElements      = "elements"
	KeyTransactions  = "transactions"
	KeyElementStatus = "element_status"
	KeyChoices       = "choices"
)

// StaticFiles maps each league-level staged file to the keys loaded from it.
var StaticFiles = []struct {
	File string
	Keys []string
}{
	{File: staging.FileDetails, Keys: []string{KeyLeagueEntries, KeyLeague, KeyStandings}},
	{File: staging.FileEventStatus, Keys: []string{KeyStatus}},
	{File: staging.FileBootstrapStatic, Keys: []string{KeyElements}},
	{File: staging.FileTransactions, Keys: []string{KeyTransactions}},
	{File: staging.FileElementStatus, Keys: []string{KeyElementStatus}},
	{File: staging.FileChoices, Keys: []string{KeyChoices}},
}

var (
	historyCSVHeader = []string{"entry_id", "gw", "points", "total_points", "event_transfers", "points_on_bench", "squad_value", "bank"}
	liveCSVHeader    = []string{
		"element", "gw", "minutes", "goals_scored", "assists", "clean_sheets", "goals_conceded",
		"own_goals", "penalties_saved", "penalties_missed", "yellow_cards", "red_cards",
		"saves", "bonus", "bps", "total_points",
	}
	eventCSVHeader = []string{"entry_id", "gw", "element", "slot"}
)

type LoaderService struct {
	store       StagingStore
	stagingCSV  CSVWriter
	leagueRepo  league.Repository
	playerRepo  player.Repository
	txRepo      transaction.Repository
	historyRepo entryhistory.Repository
	pickRepo    pick.Repository
	statsRepo   livestats.Repository
	logger      *logging.Logger
}

type LoaderRepositories struct {
	League      league.Repository
	Player      player.Repository
	Transaction transaction.Repository
	History     entryhistory.Repository
	Pick        pick.Repository
	LiveStats   livestats.Repository
}

func NewLoaderService(store StagingStore, stagingCSV CSVWriter, repos LoaderRepositories, logger *logging.Logger) *LoaderService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LoaderService{
		store:       store,
		stagingCSV:  stagingCSV,
		leagueRepo:  repos.League,
		playerRepo:  repos.Player,
		txRepo:      repos.Transaction,
		historyRepo: repos.History,
		pickRepo:    repos.Pick,
		statsRepo:   repos.LiveStats,
		logger:      logger,
	}
}

// LoadFile flattens each key of a staged file into its normalized table.
// A missing key fails the whole file.
func (s *LoaderService) LoadFile(ctx context.Context, file string, keys ...string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadFile")
	defer span.End()

	values, err := s.store.ReadKeys(file, keys...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, key := range keys {
		n, err := s.loadKey(ctx, key, values[key])
		if err != nil {
			return fmt.Errorf("load %s from %s: %w", key, file, err)
		}
		s.logger.InfoContext(ctx, "loaded table from staged file", "file", file, "key", key, "rows", n)
	}
	return nil
}

func (s *LoaderService) loadKey(ctx context.Context, key, raw string) (int, error) {
	switch key {
	case KeyLeagueEntries:
		var items []leagueEntryPayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		entries := make([]league.Entry, 0, len(items))
		for _, item := range items {
			entry := item.toDomain()
			if err := entry.Validate(); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			entries = append(entries, entry)
		}
		return len(entries), markStorage(s.leagueRepo.UpsertEntries(ctx, entries), "upsert league entries")

	case KeyLeague:
		var item leaguePayload
		if err := decodeValue(raw, &item); err != nil {
			return 0, err
		}
		return 1, markStorage(s.leagueRepo.UpsertLeague(ctx, item.toDomain()), "upsert league")

	case KeyStandings:
		var items []standingPayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		rows := make([]league.Standing, 0, len(items))
		for _, item := range items {
			rows = append(rows, league.Standing(item))
		}
		return len(rows), markStorage(s.leagueRepo.UpsertStandings(ctx, rows), "upsert standings")

	case KeyStatus:
		var items []statusPayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		rows := make([]league.EventStatus, 0, len(items))
		for _, item := range items {
			rows = append(rows, league.EventStatus(item))
		}
		return len(rows), markStorage(s.leagueRepo.UpsertStatuses(ctx, rows), "upsert status")

	case KeyElements:
		var items []elementPayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		rows := make([]player.Element, 0, len(items))
		for _, item := range items {
			rows = append(rows, item.toDomain())
		}
		return len(rows), markStorage(s.playerRepo.UpsertElements(ctx, rows), "upsert elements")

	case KeyTransactions:
		var items []transactionPayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		rows := make([]transaction.Transaction, 0, len(items))
		for _, item := range items {
			rows = append(rows, item.toDomain())
		}
		return len(rows), markStorage(s.txRepo.Upsert(ctx, rows), "upsert transactions")

	case KeyElementStatus:
		var items []elementStatusPayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		rows := make([]league.Ownership, 0, len(items))
		for _, item := range items {
			rows = append(rows, league.Ownership(item))
		}
		return len(rows), markStorage(s.leagueRepo.UpsertOwnership(ctx, rows), "upsert element status")

	case KeyChoices:
		var items []choicePayload
		if err := decodeValue(raw, &items); err != nil {
			return 0, err
		}
		rows := make([]league.DraftChoice, 0, len(items))
		for _, item := range items {
			rows = append(rows, league.DraftChoice(item))
		}
		return len(rows), markStorage(s.leagueRepo.UpsertDraftChoices(ctx, rows), "upsert draft choices")

	default:
		return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidInput, key)
	}
}

// LoadStatic loads every league-level staged file.
func (s *LoaderService) LoadStatic(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadStatic")
	defer span.End()

	for _, f := range StaticFiles {
		if err := s.LoadFile(ctx, f.File, f.Keys...); err != nil {
			return err
		}
	}
	return nil
}

// ResolveScope reads the in-scope entries and current gameweek back from the
// normalized tables and records them in the side files.
func (s *LoaderService) ResolveScope(ctx context.Context) (league.Scope, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.ResolveScope")
	defer span.End()

	entries, err := s.leagueRepo.ListEntries(ctx)
	if err != nil {
		return league.Scope{}, markStorage(err, "list league entries")
	}
	maxGW, ok, err := s.leagueRepo.MaxEvent(ctx)
	if err != nil {
		return league.Scope{}, markStorage(err, "resolve max gameweek")
	}
	if !ok {
		return league.Scope{}, fmt.Errorf("%w: status table is empty", ErrNotFound)
	}

	scope := league.Scope{MaxGW: maxGW, EntryIDs: make([]int64, 0, len(entries))}
	for _, e := range entries {
		scope.EntryIDs = append(scope.EntryIDs, e.EntryID)
	}
	sort.Slice(scope.EntryIDs, func(i, j int) bool { return scope.EntryIDs[i] < scope.EntryIDs[j] })
	if err := scope.Validate(); err != nil {
		return league.Scope{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if err := s.store.WriteScope(scope.EntryIDs, scope.MaxGW); err != nil {
		return league.Scope{}, fmt.Errorf("write scope side files: %w", err)
	}

	s.logger.InfoContext(ctx, "resolved scope", "entries", len(scope.EntryIDs), "max_gw", scope.MaxGW)
	return scope, nil
}

// LoadLive unions the per-entry and per-gameweek staged files of the scope
// into their tables, then verifies every pick has live stats.
func (s *LoaderService) LoadLive(ctx context.Context, scope league.Scope) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoaderService.LoadLive")
	defer span.End()

	if err := scope.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	steps := []struct {
		name string
		run  func(context.Context, league.Scope) error
	}{
		{name: "history", run: s.unionHistory},
		{name: "entry_profiles", run: s.unionProfiles},
		{name: "gw_live", run: s.unionLive},
		{name: "gw_event", run: s.unionEvents},
	}
	for _, step := range steps {
		if err := step.run(ctx, scope); err != nil {
			return fmt.Errorf("union %s: %w", step.name, err)
		}
	}

	return s.CheckIntegrity(ctx)
}

// CheckIntegrity fails with ErrIntegrity when a pick references an
// (element, gw) without a live stats row.
func (s *LoaderService) CheckIntegrity(ctx context.Context) error {
	missing, err := s.statsRepo.MissingForPicks(ctx)
	if err != nil {
		return markStorage(err, "check live stats completeness")
	}
	if len(missing) == 0 {
		return nil
	}

	sample := missing
	if len(sample) > 5 {
		sample = sample[:5]
	}
	return crerr.Mark(
		crerr.Newf("%d picked (element, gw) pairs have no live stats, e.g. %v", len(missing), sample),
		ErrIntegrity,
	)
}

func (s *LoaderService) unionHistory(ctx context.Context, scope league.Scope) error {
	for _, entryID := range scope.EntryIDs {
		file := staging.EntryHistory(entryID)
		var payload historyPayload
		if !s.decodeOptional(ctx, file, &payload) {
			continue
		}

		rows := payload.toDomain(entryID)
		if err := s.historyRepo.Upsert(ctx, rows); err != nil {
			return markStorage(err, "upsert history")
		}

		records := make([][]string, 0, len(rows))
		for _, h := range rows {
			records = append(records, []string{
				itoa64(h.EntryID), itoa(h.GW), itoa(h.Points), itoa(h.TotalPoints),
				itoa(h.EventTransfers), itoa(h.PointsOnBench), itoa(h.SquadValue), itoa(h.Bank),
			})
		}
		if err := s.stagingCSV.WriteCSV(ctx, staging.EntryHistoryCSV(entryID), historyCSVHeader, records); err != nil {
			return fmt.Errorf("export history entry=%d: %w", entryID, err)
		}
		s.logger.DebugContext(ctx, "loaded entry history", "entry_id", entryID, "rows", len(rows))
	}
	return nil
}

func (s *LoaderService) unionProfiles(ctx context.Context, scope league.Scope) error {
	rows := make([]league.Profile, 0, len(scope.EntryIDs))
	for _, entryID := range scope.EntryIDs {
		var payload publicPayload
		if !s.decodeOptional(ctx, staging.EntryPublic(entryID), &payload) {
			continue
		}
		rows = append(rows, league.Profile{
			EntryID:         entryID,
			Name:            payload.Entry.Name,
			PlayerFirstName: payload.Entry.PlayerFirstName,
			PlayerLastName:  payload.Entry.PlayerLastName,
			StartedEvent:    payload.Entry.StartedEvent,
		})
	}
	return markStorage(s.leagueRepo.UpsertProfiles(ctx, rows), "upsert entry profiles")
}

func (s *LoaderService) unionLive(ctx context.Context, scope league.Scope) error {
	rows := make([]livestats.Stats, 0)
	for _, gw := range scope.Gameweeks() {
		var payload livePayload
		if !s.decodeOptional(ctx, staging.Live(gw), &payload) {
			continue
		}

		keys := make([]string, 0, len(payload.Elements))
		for key := range payload.Elements {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			element, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				s.logger.DebugContext(ctx, "skipping live element with bad id", "gw", gw, "element", key)
				continue
			}
			rows = append(rows, liveStatsRow(element, gw, payload, key))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].GW != rows[j].GW {
			return rows[i].GW < rows[j].GW
		}
		return rows[i].Element < rows[j].Element
	})

	if err := s.statsRepo.Upsert(ctx, rows); err != nil {
		return markStorage(err, "upsert gw_live")
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			itoa64(r.Element), itoa(r.GW), itoa(r.Minutes), itoa(r.GoalsScored), itoa(r.Assists),
			itoa(r.CleanSheets), itoa(r.GoalsConceded), itoa(r.OwnGoals), itoa(r.PenaltiesSaved),
			itoa(r.PenaltiesMissed), itoa(r.YellowCards), itoa(r.RedCards), itoa(r.Saves),
			itoa(r.Bonus), itoa(r.BPS), itoa(r.TotalPoints),
		})
	}
	if err := s.stagingCSV.WriteCSV(ctx, staging.FileLiveCSV, liveCSVHeader, records); err != nil {
		return fmt.Errorf("export gw_live: %w", err)
	}
	s.logger.InfoContext(ctx, "loaded live stats", "rows", len(rows))
	return nil
}

func (s *LoaderService) unionEvents(ctx context.Context, scope league.Scope) error {
	rows := make([]pick.Pick, 0)
	for _, entryID := range scope.EntryIDs {
		for _, gw := range scope.Gameweeks() {
			var payload eventPayload
			if !s.decodeOptional(ctx, staging.EntryEvent(entryID, gw), &payload) {
				continue
			}
			for _, p := range payload.Picks {
				if p.Multiplier != nil && *p.Multiplier != 1 {
					s.logger.WarnContext(ctx, "ignoring pick multiplier",
						"entry_id", entryID, "gw", gw, "element", p.Element, "multiplier", *p.Multiplier)
				}
				rows = append(rows, pick.Pick{EntryID: entryID, GW: gw, Element: p.Element, Slot: p.Position})
			}
		}
	}

	if err := s.pickRepo.ReplaceSquads(ctx, rows); err != nil {
		return markStorage(err, "replace gw_event")
	}

	records := make([][]string, 0, len(rows))
	for _, p := range rows {
		records = append(records, []string{itoa64(p.EntryID), itoa(p.GW), itoa64(p.Element), itoa(p.Slot)})
	}
	if err := s.stagingCSV.WriteCSV(ctx, staging.FileEventCSV, eventCSVHeader, records); err != nil {
		return fmt.Errorf("export gw_event: %w", err)
	}
	s.logger.InfoContext(ctx, "loaded picks", "rows", len(rows))
	return nil
}

// decodeOptional reports false for missing or malformed per-entity files.
func (s *LoaderService) decodeOptional(ctx context.Context, file string, out any) bool {
	if !s.store.Exists(file) {
		s.logger.DebugContext(ctx, "staged file missing, skipping", "file", file)
		return false
	}
	if err := s.store.Decode(file, out); err != nil {
		s.logger.DebugContext(ctx, "staged file malformed, skipping", "file", file, "error", err)
		return false
	}
	return true
}

func decodeValue(raw string, out any) error {
	if err := sonic.UnmarshalString(raw, out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalidInput, err)
	}
	return nil
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}
