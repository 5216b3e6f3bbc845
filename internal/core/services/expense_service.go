package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/repositories"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/validate"
)

// Expense errors
var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrExpenseFinalized    = errors.New("expense already approved or rejected")
	ErrProposalNotApproved = errors.New("linked proposal is not approved")
)

// ExpenseService handles society expense recording and approval
type ExpenseService struct {
	expenseRepo    repositories.ExpenseRepository
	societyRepo    repositories.SocietyRepository
	governanceRepo repositories.GovernanceRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	societyRepo repositories.SocietyRepository,
	governanceRepo repositories.GovernanceRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:    expenseRepo,
		societyRepo:    societyRepo,
		governanceRepo: governanceRepo,
	}
}

// RecordExpenseInput represents expense submission input
type RecordExpenseInput struct {
	ProposalID  *uint   `json:"proposal_id"`
	Title       string  `json:"title" validate:"required,min=3,max=150"`
	Category    string  `json:"category" validate:"required,max=50"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ExpenseDate string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Remark      string  `json:"remark" validate:"max=2000"`
}

// RecordExpense records a pending expense. When linked to a proposal, the
// proposal must be approved or implemented.
func (s *ExpenseService) RecordExpense(ctx context.Context, societyID uint, input *RecordExpenseInput) (*models.SocietyExpense, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.societyRepo.GetByID(ctx, societyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}

	if input.ProposalID != nil {
		proposal, err := s.governanceRepo.GetProposalByID(ctx, *input.ProposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProposalNotFound
			}
			return nil, err
		}
		if proposal.Status != models.ProposalStatusApproved && proposal.Status != models.ProposalStatusImplemented {
			return nil, ErrProposalNotApproved
		}
	}

	expenseDate, err := time.Parse("2006-01-02", input.ExpenseDate)
	if err != nil {
		return nil, err
	}

	expense := &models.SocietyExpense{
		SocietyID:   societyID,
		ProposalID:  input.ProposalID,
		Title:       input.Title,
		Category:    input.Category,
		Amount:      input.Amount,
		ExpenseDate: expenseDate,
		Status:      models.ExpenseStatusPending,
		Remark:      input.Remark,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	log.Printf("✅ Expense recorded: %s %.2f (society %d)", expense.Title, expense.Amount, societyID)

	return expense, nil
}

// GetExpense gets an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uint) (*models.SocietyExpense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists expenses for a society with pagination
func (s *ExpenseService) ListExpenses(ctx context.Context, societyID uint, offset, limit int) ([]*models.SocietyExpense, int64, error) {
	return s.expenseRepo.ListBySociety(ctx, societyID, offset, limit)
}

// ApproveExpense approves a pending expense
func (s *ExpenseService) ApproveExpense(ctx context.Context, id uint, approverID uint) (*models.SocietyExpense, error) {
	return s.finalize(ctx, id, approverID, models.ExpenseStatusApproved)
}

// RejectExpense rejects a pending expense
func (s *ExpenseService) RejectExpense(ctx context.Context, id uint, approverID uint) (*models.SocietyExpense, error) {
	return s.finalize(ctx, id, approverID, models.ExpenseStatusRejected)
}

func (s *ExpenseService) finalize(ctx context.Context, id uint, approverID uint, status string) (*models.SocietyExpense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if expense.Status != models.ExpenseStatusPending {
		return nil, ErrExpenseFinalized
	}

	now := time.Now()
	expense.Status = status
	expense.ApprovedBy = &approverID
	expense.ApprovedAt = &now

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}
