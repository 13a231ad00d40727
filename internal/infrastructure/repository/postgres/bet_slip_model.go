package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/domain/betslip"
	"github.com/riskibarqy/betting-analytics/internal/platform/jsondoc"
	qb "github.com/riskibarqy/betting-analytics/internal/platform/querybuilder"
)

const betSlipsTable = "bet_slips"

type betSlipTableModel struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Status            string         `db:"status"`
	BetDetails        jsondoc.Object `db:"bet_details"`
	Odds              sql.NullString `db:"odds"`
	Stake             sql.NullString `db:"stake"`
	PotentialWinnings sql.NullString `db:"potential_winnings"`
	Result            sql.NullString `db:"result"`
	ScreenshotURL     sql.NullString `db:"screenshot_url"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type betSlipInsertModel struct {
	UserID            string         `db:"user_id"`
	Status            string         `db:"status"`
	BetDetails        jsondoc.Object `db:"bet_details"`
	Odds              *string        `db:"odds"`
	Stake             *string        `db:"stake"`
	PotentialWinnings *string        `db:"potential_winnings"`
	Result            *string        `db:"result"`
	ScreenshotURL     *string        `db:"screenshot_url"`
}

type betSlipPatchModel struct {
	Status            *string         `db:"status"`
	BetDetails        *jsondoc.Object `db:"bet_details"`
	Odds              *sql.NullString `db:"odds"`
	Stake             *sql.NullString `db:"stake"`
	PotentialWinnings *sql.NullString `db:"potential_winnings"`
	Result            *sql.NullString `db:"result"`
	ScreenshotURL     *sql.NullString `db:"screenshot_url"`
}

type betStatusCountRow struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

var betSlipColumns = qb.Columns(betSlipTableModel{})

func betSlipFromRow(row betSlipTableModel) betslip.BetSlip {
	return betslip.BetSlip{
		ID:                row.ID,
		UserID:            row.UserID,
		Status:            betslip.Status(row.Status),
		BetDetails:        row.BetDetails,
		Odds:              row.Odds.String,
		Stake:             row.Stake.String,
		PotentialWinnings: row.PotentialWinnings.String,
		Result:            row.Result.String,
		ScreenshotURL:     row.ScreenshotURL.String,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func betSlipInsertFromInput(input betslip.NewBetSlip) betSlipInsertModel {
	status := input.Status
	if status == "" {
		status = betslip.StatusOpen
	}
	return betSlipInsertModel{
		UserID:            input.UserID,
		Status:            string(status),
		BetDetails:        orEmpty(input.BetDetails),
		Odds:              optionalString(input.Odds),
		Stake:             optionalString(input.Stake),
		PotentialWinnings: optionalString(input.PotentialWinnings),
		Result:            optionalString(input.Result),
		ScreenshotURL:     optionalString(input.ScreenshotURL),
	}
}

func betSlipPatchFromInput(patch betslip.Patch) betSlipPatchModel {
	out := betSlipPatchModel{
		BetDetails:        patch.BetDetails,
		Odds:              nullablePatch(patch.Odds),
		Stake:             nullablePatch(patch.Stake),
		PotentialWinnings: nullablePatch(patch.PotentialWinnings),
		Result:            nullablePatch(patch.Result),
		ScreenshotURL:     nullablePatch(patch.ScreenshotURL),
	}
	if patch.Status != nil {
		s := string(*patch.Status)
		out.Status = &s
	}
	return out
}
