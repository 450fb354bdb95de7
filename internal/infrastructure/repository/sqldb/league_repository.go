package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/league"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) UpsertEntries(ctx context.Context, entries []league.Entry) error {
	rows := make([]leagueEntryModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, leagueEntryModel{
			ID:              e.ID,
			EntryID:         e.EntryID,
			EntryName:       e.EntryName,
			PlayerFirstName: e.PlayerFirstName,
			PlayerLastName:  e.PlayerLastName,
			ShortName:       e.ShortName,
			WaiverPick:      e.WaiverPick,
		})
	}
	return upsertModels(ctx, r.db, TableLeagueEntries, rows)
}

func (r *LeagueRepository) UpsertLeague(ctx context.Context, item league.League) error {
	return upsertModels(ctx, r.db, TableLeague, []leagueModel{{
		ID:              item.ID,
		Name:            item.Name,
		AdminEntry:      item.AdminEntry,
		DraftStatus:     item.DraftStatus,
		Scoring:         item.Scoring,
		StartEvent:      item.StartEvent,
		StopEvent:       item.StopEvent,
		Trades:          item.Trades,
		TransactionMode: item.TransactionMode,
	}})
}

func (r *LeagueRepository) UpsertStandings(ctx context.Context, items []league.Standing) error {
	rows := make([]standingModel, 0, len(items))
	for _, s := range items {
		rows = append(rows, standingModel{
			LeagueEntry: s.LeagueEntry,
			Rank:        s.Rank,
			LastRank:    s.LastRank,
			RankSort:    s.RankSort,
			Total:       s.Total,
			EventTotal:  s.EventTotal,
		})
	}
	return upsertModels(ctx, r.db, TableStandings, rows)
}

func (r *LeagueRepository) UpsertStatuses(ctx context.Context, items []league.EventStatus) error {
	rows := make([]statusModel, 0, len(items))
	for _, s := range items {
		rows = append(rows, statusModel{
			Event:      s.Event,
			EventDate:  s.Date,
			Points:     s.Points,
			BonusAdded: s.BonusAdded,
		})
	}
	return upsertModels(ctx, r.db, TableStatus, rows)
}

func (r *LeagueRepository) UpsertProfiles(ctx context.Context, items []league.Profile) error {
	rows := make([]profileModel, 0, len(items))
	for _, p := range items {
		rows = append(rows, profileModel{
			EntryID:         p.EntryID,
			Name:            p.Name,
			PlayerFirstName: p.PlayerFirstName,
			PlayerLastName:  p.PlayerLastName,
			StartedEvent:    p.StartedEvent,
		})
	}
	return upsertModels(ctx, r.db, TableEntryProfiles, rows)
}

func (r *LeagueRepository) UpsertOwnership(ctx context.Context, items []league.Ownership) error {
	rows := make([]elementStatusModel, 0, len(items))
	for _, o := range items {
		row := elementStatusModel{
			Element:         o.Element,
			Status:          o.Status,
			InAcceptedTrade: o.InAcceptedTrade,
		}
		if o.Owner != nil {
			row.Owner = sql.NullInt64{Int64: *o.Owner, Valid: true}
		}
		rows = append(rows, row)
	}
	return upsertModels(ctx, r.db, TableElementStatus, rows)
}

func (r *LeagueRepository) UpsertDraftChoices(ctx context.Context, items []league.DraftChoice) error {
	rows := make([]draftChoiceModel, 0, len(items))
	for _, c := range items {
		rows = append(rows, draftChoiceModel{
			ID:         c.ID,
			Entry:      c.Entry,
			Element:    c.Element,
			DraftRound: c.Round,
			DraftPick:  c.Pick,
			WasAuto:    c.WasAuto,
			ChoiceTime: c.ChoiceTime,
		})
	}
	return upsertModels(ctx, r.db, TableDraftChoices, rows)
}

func (r *LeagueRepository) ListEntries(ctx context.Context) ([]league.Entry, error) {
	query, args, err := qb.Select(TableLeagueEntries.ColumnNames()...).
		From(TableLeagueEntries.Name).
		OrderBy("entry_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league entries query: %w", err)
	}

	var rows []leagueEntryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list league entries: %w", err)
	}

	out := make([]league.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Entry{
			ID:              row.ID,
			EntryID:         row.EntryID,
			EntryName:       row.EntryName,
			PlayerFirstName: row.PlayerFirstName,
			PlayerLastName:  row.PlayerLastName,
			ShortName:       row.ShortName,
			WaiverPick:      row.WaiverPick,
		})
	}
	return out, nil
}

// MaxEvent returns the highest gameweek in the status table. ok is false when
// the table is empty.
func (r *LeagueRepository) MaxEvent(ctx context.Context) (int, bool, error) {
	query, args, err := qb.Select("MAX(event)").From(TableStatus.Name).ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build max event query: %w", err)
	}

	var maxEvent sql.NullInt64
	if err := r.db.GetContext(ctx, &maxEvent, query, args...); err != nil {
		return 0, false, fmt.Errorf("get max event: %w", err)
	}
	if !maxEvent.Valid {
		return 0, false, nil
	}
	return int(maxEvent.Int64), true, nil
}
