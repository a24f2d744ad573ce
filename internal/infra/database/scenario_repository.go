package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/loanpulse/internal/entity"
)

type ScenarioRepository struct {
	DB *sql.DB
}

func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{DB: db}
}

const scenarioColumns = `
	id, lead_id, actual_interest_rate, points, actual_cost,
	fico_score_group, loan_type_group, property_type_group,
	property_value_group, loan_value_group, loan_purpose_group,
	state, occupancy, rate_sheet_date, created_at, updated_at
`

func (r *ScenarioRepository) Create(ctx context.Context, s *entity.Scenario) error {
	query := `
		INSERT INTO scenarios (` + scenarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.LeadID, s.ActualInterestRate, s.Points, s.ActualCost,
		nullIfEmpty(s.FicoScoreGroup), nullIfEmpty(s.LoanTypeGroup), nullIfEmpty(s.PropertyTypeGroup),
		nullIfEmpty(s.PropertyValueGroup), nullIfEmpty(s.LoanValueGroup), nullIfEmpty(s.LoanPurposeGroup),
		nullIfEmpty(s.State), nullIfEmpty(s.Occupancy),
		s.RateSheetDate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}
	return nil
}

// FindOrCreate returns the lead's scenario with this exact rate/points pair,
// creating it on first sight. Repeated scans of the same sheet land on the
// same scenario instead of piling up duplicates.
func (r *ScenarioRepository) FindOrCreate(ctx context.Context, leadID string, rate, points float64, sheetDate time.Time) (*entity.Scenario, error) {
	query := `
		SELECT ` + scenarioColumns + `
		FROM scenarios
		WHERE lead_id = $1 AND actual_interest_rate = $2 AND points = $3
		LIMIT 1
	`

	scenario, err := scanScenario(r.DB.QueryRowContext(ctx, query, leadID, rate, points))
	if err == nil {
		return scenario, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up scenario: %w", err)
	}

	scenario = entity.NewScenario(leadID, rate, points, sheetDate)
	if err := r.Create(ctx, scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (r *ScenarioRepository) FindByID(ctx context.Context, id string) (*entity.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = $1`

	scenario, err := scanScenario(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrScenarioNotFound
	}
	return scenario, err
}

func (r *ScenarioRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE lead_id = $1 ORDER BY created_at`
	return r.list(ctx, query, leadID)
}

func (r *ScenarioRepository) ListByRateSheetDate(ctx context.Context, date time.Time) ([]*entity.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE rate_sheet_date = $1 ORDER BY created_at`
	return r.list(ctx, query, date.Format("2006-01-02"))
}

func (r *ScenarioRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrScenarioNotFound
	}
	return nil
}

// AddRatePoint appends the raw extracted pair under a scenario. The table is
// append-only; an identical pair from a later scan is recorded once.
func (r *ScenarioRepository) AddRatePoint(ctx context.Context, scenarioID string, rate, points float64) error {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM rate_points WHERE scenario_id = $1 AND rate = $2 AND points = $3)`,
		scenarioID, rate, points,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to look up rate point: %w", err)
	}
	if exists {
		return nil
	}

	rp := entity.NewRatePoint(scenarioID, rate, points)
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO rate_points (id, scenario_id, rate, points, created_at) VALUES ($1, $2, $3, $4, $5)`,
		rp.ID, rp.ScenarioID, rp.Rate, rp.Points, rp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate point: %w", err)
	}
	return nil
}

func (r *ScenarioRepository) ListRatePoints(ctx context.Context, scenarioID string) ([]*entity.RatePoint, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, scenario_id, rate, points, created_at FROM rate_points WHERE scenario_id = $1 ORDER BY created_at`,
		scenarioID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate points: %w", err)
	}
	defer rows.Close()

	var points []*entity.RatePoint
	for rows.Next() {
		var rp entity.RatePoint
		if err := rows.Scan(&rp.ID, &rp.ScenarioID, &rp.Rate, &rp.Points, &rp.CreatedAt); err != nil {
			return nil, err
		}
		points = append(points, &rp)
	}
	return points, rows.Err()
}

func (r *ScenarioRepository) list(ctx context.Context, query string, arg any) ([]*entity.Scenario, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*entity.Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

func scanScenario(row rowScanner) (*entity.Scenario, error) {
	var s entity.Scenario
	var ficoGroup, loanTypeGroup, propTypeGroup, propValueGroup, loanValueGroup, purposeGroup, state, occupancy sql.NullString

	err := row.Scan(
		&s.ID, &s.LeadID, &s.ActualInterestRate, &s.Points, &s.ActualCost,
		&ficoGroup, &loanTypeGroup, &propTypeGroup,
		&propValueGroup, &loanValueGroup, &purposeGroup,
		&state, &occupancy, &s.RateSheetDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.FicoScoreGroup = ficoGroup.String
	s.LoanTypeGroup = loanTypeGroup.String
	s.PropertyTypeGroup = propTypeGroup.String
	s.PropertyValueGroup = propValueGroup.String
	s.LoanValueGroup = loanValueGroup.String
	s.LoanPurposeGroup = purposeGroup.String
	s.State = state.String
	s.Occupancy = occupancy.String
	return &s, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
