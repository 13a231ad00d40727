package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

type BetSlipRepository struct {
	db *sqlx.DB
}

func NewBetSlipRepository(db *sqlx.DB) *BetSlipRepository {
	return &BetSlipRepository{db: db}
}

func (r *BetSlipRepository) Create(ctx context.Context, input betslip.NewBetSlip) (betslip.BetSlip, error) {
	insert, err := qb.InsertModel(betSlipsTable, betSlipInsertFromInput(input))
	if err != nil {
		return betslip.BetSlip{}, fmt.Errorf("build insert bet slip model: %w", err)
	}
	query, args, err := insert.Returning(betSlipColumns...).ToSQL()
	if err != nil {
		return betslip.BetSlip{}, fmt.Errorf("build insert bet slip query: %w", err)
	}

	var row betSlipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return betslip.BetSlip{}, wrapDBError(err, "insert bet slip")
	}

	return betSlipFromRow(row), nil
}

func (r *BetSlipRepository) GetByID(ctx context.Context, id string) (betslip.BetSlip, bool, error) {
	query, args, err := qb.Select(betSlipColumns...).
		From(betSlipsTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return betslip.BetSlip{}, false, fmt.Errorf("build get bet slip query: %w", err)
	}

	var row betSlipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return betslip.BetSlip{}, false, nil
		}
		return betslip.BetSlip{}, false, wrapDBError(err, "get bet slip")
	}

	return betSlipFromRow(row), true, nil
}

func (r *BetSlipRepository) ListByUser(ctx context.Context, userID string, filter betslip.ListFilter) ([]betslip.BetSlip, error) {
	builder := qb.Select(betSlipColumns...).
		From(betSlipsTable).
		Where(qb.Eq("user_id", userID))
	if filter.Status != nil {
		builder.Where(qb.Eq("status", string(*filter.Status)))
	}
	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bet slips query: %w", err)
	}

	var rows []betSlipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapDBError(err, "list bet slips")
	}

	out := make([]betslip.BetSlip, 0, len(rows))
	for _, row := range rows {
		out = append(out, betSlipFromRow(row))
	}
	return out, nil
}

func (r *BetSlipRepository) SummarizeByUser(ctx context.Context, userID string) (betslip.Summary, error) {
	query, args, err := qb.Select("status", "COUNT(*) AS total").
		From(betSlipsTable).
		Where(qb.Eq("user_id", userID)).
		GroupBy("status").
		ToSQL()
	if err != nil {
		return betslip.Summary{}, fmt.Errorf("build summarize bet slips query: %w", err)
	}

	var rows []betStatusCountRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return betslip.Summary{}, wrapDBError(err, "summarize bet slips")
	}

	var summary betslip.Summary
	for _, row := range rows {
		summary.Add(betslip.Status(row.Status), row.Total)
	}
	return summary, nil
}

func (r *BetSlipRepository) Update(ctx context.Context, id string, patch betslip.Patch) (betslip.BetSlip, bool, error) {
	update, _, err := qb.UpdateModel(betSlipsTable, betSlipPatchFromInput(patch))
	if err != nil {
		return betslip.BetSlip{}, false, fmt.Errorf("build update bet slip model: %w", err)
	}
	query, args, err := update.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Returning(betSlipColumns...).
		ToSQL()
	if err != nil {
		return betslip.BetSlip{}, false, fmt.Errorf("build update bet slip query: %w", err)
	}

	var row betSlipTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return betslip.BetSlip{}, false, nil
		}
		return betslip.BetSlip{}, false, wrapDBError(err, "update bet slip")
	}

	return betSlipFromRow(row), true, nil
}

func (r *BetSlipRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom(betSlipsTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete bet slip query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError(err, "delete bet slip")
	}

	return rowsAffected(res, "delete bet slip")
}
