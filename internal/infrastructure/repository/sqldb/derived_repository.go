package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/analytics"
	"github.com/riskibarqy/drafty/internal/domain/bracket"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

// DerivedRepository owns the analytics tables. Every Replace call swaps the
// table contents in one transaction.
type DerivedRepository struct {
	db *sqlx.DB
}

func NewDerivedRepository(db *sqlx.DB) *DerivedRepository {
	return &DerivedRepository{db: db}
}

func (r *DerivedRepository) ReplaceTeamPoints(ctx context.Context, rows []analytics.TeamPoints) error {
	models := make([]teamPointsModel, 0, len(rows))
	for _, p := range rows {
		models = append(models, teamPointsModel(p))
	}
	return replaceModels(ctx, r.db, replacing(TableTotalPoints, models))
}

func (r *DerivedRepository) ListTeamPoints(ctx context.Context) ([]analytics.TeamPoints, error) {
	query, args, err := qb.Select(TableTotalPoints.ColumnNames()...).
		From(TableTotalPoints.Name).
		OrderBy("entry_id", "gw").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list total points query: %w", err)
	}

	var rows []teamPointsModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list total points: %w", err)
	}

	out := make([]analytics.TeamPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.TeamPoints(row))
	}
	return out, nil
}

func (r *DerivedRepository) ReplaceBenchPoints(ctx context.Context, losses []analytics.BenchLoss, totals []analytics.BenchTotal) error {
	lossModels := make([]benchLossModel, 0, len(losses))
	for _, l := range losses {
		lossModels = append(lossModels, benchLossModel{
			EntryID:        l.EntryID,
			Team:           l.Team,
			GW:             l.GW,
			Position:       l.Position.String(),
			StartingMinPts: l.StartingMinPts,
			BenchMaxPts:    l.BenchMaxPts,
			PtsLost:        l.PtsLost,
		})
	}
	totalModels := make([]benchTotalModel, 0, len(totals))
	for _, t := range totals {
		totalModels = append(totalModels, benchTotalModel(t))
	}
	return replaceModels(ctx, r.db,
		replacing(TableBenchPoints, lossModels),
		replacing(TableTotalBenchPoints, totalModels),
	)
}

func (r *DerivedRepository) ReplaceBlunders(ctx context.Context, gw int, rows []analytics.Blunder) error {
	return replaceModels(ctx, r.db, replacing(TableBlunders, toBlunderModels(rows), qb.Eq("waiver_gw", gw)))
}

func (r *DerivedRepository) ListBlunders(ctx context.Context) ([]analytics.Blunder, error) {
	query, args, err := qb.Select(TableBlunders.ColumnNames()...).
		From(TableBlunders.Name).
		OrderBy("waiver_gw", "transaction_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list blunders query: %w", err)
	}

	var rows []blunderModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list blunders: %w", err)
	}

	out := make([]analytics.Blunder, 0, len(rows))
	for _, row := range rows {
		out = append(out, analytics.Blunder(row))
	}
	return out, nil
}

func (r *DerivedRepository) ReplaceBracketStandings(ctx context.Context, name string, rows []bracket.Standing) error {
	models := make([]bracketStandingModel, 0, len(rows))
	for _, s := range rows {
		models = append(models, bracketStandingModel(s))
	}
	return replaceModels(ctx, r.db, replacing(TableBracketStandings, models, qb.Eq("bracket", name)))
}

func (r *DerivedRepository) PruneStale(ctx context.Context, maxGW int, brackets []string) error {
	names := make([]any, 0, len(brackets))
	for _, b := range brackets {
		names = append(names, b)
	}
	return replaceModels(ctx, r.db,
		replacing[blunderModel](TableBlunders, nil, qb.Expr("(waiver_gw < ? OR waiver_gw > ?)", 1, maxGW)),
		replacing[bracketStandingModel](TableBracketStandings, nil, qb.NotIn("bracket", names...)),
	)
}

func (r *DerivedRepository) ReplaceTimeline(ctx context.Context, rows []analytics.TimelineRow) error {
	models := make([]timelineModel, 0, len(rows))
	for _, t := range rows {
		models = append(models, timelineModel(t))
	}
	return replaceModels(ctx, r.db, replacing(TableTimeline, models))
}

func (r *DerivedRepository) ReplaceCumulativePoints(ctx context.Context, rows []analytics.CumulativePoints) error {
	models := make([]cumulativeModel, 0, len(rows))
	for _, c := range rows {
		models = append(models, cumulativeModel(c))
	}
	return replaceModels(ctx, r.db, replacing(TableCumulativePoints, models))
}

func (r *DerivedRepository) ReplaceTransfers(ctx context.Context, top, bottom []analytics.Blunder) error {
	return replaceModels(ctx, r.db,
		replacing(TableTopTransfers, toBlunderModels(top)),
		replacing(TableBottomTransfers, toBlunderModels(bottom)),
	)
}

func toBlunderModels(rows []analytics.Blunder) []blunderModel {
	out := make([]blunderModel, 0, len(rows))
	for _, b := range rows {
		out = append(out, blunderModel(b))
	}
	return out
}
