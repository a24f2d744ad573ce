package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/loanpulse/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, first_name, last_name, phone_number, email,
	creation_date, last_contacted_date,
	fico_score, loan_type, property_type, property_value, loan_value,
	loan_purpose, state, occupancy, interest_level, notes,
	minimum_rate_needed, maximum_points_needed,
	user_id, created_at, updated_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.FirstName, lead.LastName, lead.PhoneNumber, lead.Email,
		lead.CreationDate, lead.LastContactedDate,
		lead.FicoScore, lead.LoanType, lead.PropertyType, lead.PropertyValue, lead.LoanValue,
		lead.LoanPurpose, lead.State, lead.Occupancy, lead.InterestLevel, lead.Notes,
		lead.MinimumRateNeeded, lead.MaximumPointsNeeded,
		lead.UserID, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			first_name = $2, last_name = $3, phone_number = $4, email = $5,
			creation_date = $6, last_contacted_date = $7,
			fico_score = $8, loan_type = $9, property_type = $10,
			property_value = $11, loan_value = $12, loan_purpose = $13,
			state = $14, occupancy = $15, interest_level = $16, notes = $17,
			minimum_rate_needed = $18, maximum_points_needed = $19,
			updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.FirstName, lead.LastName, lead.PhoneNumber, lead.Email,
		lead.CreationDate, lead.LastContactedDate,
		lead.FicoScore, lead.LoanType, lead.PropertyType,
		lead.PropertyValue, lead.LoanValue, lead.LoanPurpose,
		lead.State, lead.Occupancy, lead.InterestLevel, lead.Notes,
		lead.MinimumRateNeeded, lead.MaximumPointsNeeded,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	err := row.Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.PhoneNumber, &lead.Email,
		&lead.CreationDate, &lead.LastContactedDate,
		&lead.FicoScore, &lead.LoanType, &lead.PropertyType, &lead.PropertyValue, &lead.LoanValue,
		&lead.LoanPurpose, &lead.State, &lead.Occupancy, &lead.InterestLevel, &lead.Notes,
		&lead.MinimumRateNeeded, &lead.MaximumPointsNeeded,
		&lead.UserID, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
