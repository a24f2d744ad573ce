package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/loanpulse/internal/entity"
)

type CreateLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
	UserRepo UserRepositoryInterface
}

func NewCreateLeadUseCase(leadRepo LeadRepositoryInterface, userRepo UserRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{LeadRepo: leadRepo, UserRepo: userRepo}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input LeadInput) (*entity.Lead, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_LEAD", Message: errs[0].Error()}
	}

	if _, err := uc.UserRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("owner lookup failed: %w", err)
	}

	lead := entity.NewLead(input.FirstName, input.LastName, input.Email, input.UserID)
	applyLeadInput(lead, input)

	if err := lead.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_LEAD", Message: err.Error()}
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

type UpdateLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewUpdateLeadUseCase(leadRepo LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{LeadRepo: leadRepo}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input LeadInput) (*entity.Lead, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID == "" {
		input.UserID = lead.UserID
	}
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_LEAD", Message: errs[0].Error()}
	}

	lead.FirstName = input.FirstName
	lead.LastName = input.LastName
	lead.Email = input.Email
	applyLeadInput(lead, input)

	if err := lead.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_LEAD", Message: err.Error()}
	}

	lead.UpdatedAt = time.Now()
	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

func applyLeadInput(lead *entity.Lead, input LeadInput) {
	lead.PhoneNumber = input.PhoneNumber
	lead.FicoScore = input.FicoScore
	lead.LoanType = input.LoanType
	lead.PropertyType = input.PropertyType
	lead.PropertyValue = input.PropertyValue
	lead.LoanValue = input.LoanValue
	lead.LoanPurpose = input.LoanPurpose
	lead.State = input.State
	lead.Occupancy = input.Occupancy
	lead.InterestLevel = input.InterestLevel
	lead.Notes = input.Notes
	lead.MinimumRateNeeded = input.MinimumRateNeeded
	lead.MaximumPointsNeeded = input.MaximumPointsNeeded
}
