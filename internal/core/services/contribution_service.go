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

// Contribution errors
var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrRejectionReasonEmpty = errors.New("rejection reason is required")
	ErrMemberNotInSociety   = errors.New("member does not belong to this society")
)

// ContributionService handles member contribution recording and verification
type ContributionService struct {
	contributionRepo repositories.ContributionRepository
	societyRepo      repositories.SocietyRepository
}

// NewContributionService creates a new contribution service
func NewContributionService(
	contributionRepo repositories.ContributionRepository,
	societyRepo repositories.SocietyRepository,
) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		societyRepo:      societyRepo,
	}
}

// RecordContributionInput represents contribution submission input
type RecordContributionInput struct {
	MemberID      uint    `json:"member_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash bank_transfer easypaisa jazzcash cheque"`
	ReceiptNumber string  `json:"receipt_number" validate:"max=50"`
	Description   string  `json:"description" validate:"max=2000"`
	MonthYear     string  `json:"month_year" validate:"required,datetime=2006-01"`
}

// RejectContributionInput represents rejection input
type RejectContributionInput struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// RecordContribution records a member payment. New contributions always start
// pending regardless of who submits them.
func (s *ContributionService) RecordContribution(ctx context.Context, societyID uint, input *RecordContributionInput) (*models.SocietyContribution, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	member, err := s.societyRepo.GetMemberByID(ctx, input.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if member.SocietyID != societyID {
		return nil, ErrMemberNotInSociety
	}

	paymentDate, err := time.Parse("2006-01-02", input.PaymentDate)
	if err != nil {
		return nil, err
	}

	contribution := &models.SocietyContribution{
		SocietyID:     societyID,
		MemberID:      input.MemberID,
		Amount:        input.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: input.PaymentMethod,
		ReceiptNumber: input.ReceiptNumber,
		Description:   input.Description,
		MonthYear:     input.MonthYear,
		Status:        models.ContributionStatusPending,
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}

	log.Printf("✅ Contribution recorded: member %d %s %.2f", input.MemberID, input.MonthYear, input.Amount)

	return contribution, nil
}

// GetContribution gets a contribution by ID
func (s *ContributionService) GetContribution(ctx context.Context, id uint) (*models.SocietyContribution, error) {
	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContributionNotFound
		}
		return nil, err
	}
	return contribution, nil
}

// ListContributions lists contributions for a society, optionally filtered by
// month (YYYY-MM).
func (s *ContributionService) ListContributions(ctx context.Context, societyID uint, monthYear string, offset, limit int) ([]*models.SocietyContribution, int64, error) {
	return s.contributionRepo.ListBySociety(ctx, societyID, monthYear, offset, limit)
}

// VerifyContribution marks a contribution verified. Re-verifying overwrites
// the status and verification metadata whatever the current status, so a
// rejected payment can be corrected to verified.
func (s *ContributionService) VerifyContribution(ctx context.Context, id uint, verifierID uint) (*models.SocietyContribution, error) {
	contribution, err := s.GetContribution(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contribution.Status = models.ContributionStatusVerified
	contribution.VerifiedBy = &verifierID
	contribution.VerifiedAt = &now
	contribution.RejectionReason = ""

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}

	log.Printf("✅ Contribution %d verified by admin %d", id, verifierID)

	return contribution, nil
}

// RejectContribution marks a contribution rejected with a reason. Like
// verification, re-rejecting overwrites the current status and metadata.
func (s *ContributionService) RejectContribution(ctx context.Context, id uint, verifierID uint, input *RejectContributionInput) (*models.SocietyContribution, error) {
	if err := validate.Struct(input); err != nil {
		return nil, ErrRejectionReasonEmpty
	}

	contribution, err := s.GetContribution(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contribution.Status = models.ContributionStatusRejected
	contribution.RejectionReason = input.Reason
	contribution.VerifiedBy = &verifierID
	contribution.VerifiedAt = &now

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}

	log.Printf("⚠️ Contribution %d rejected by admin %d: %s", id, verifierID, input.Reason)

	return contribution, nil
}

// AttachReceipt stores the uploaded receipt file path on a contribution.
func (s *ContributionService) AttachReceipt(ctx context.Context, id uint, filePath string) (*models.SocietyContribution, error) {
	contribution, err := s.GetContribution(ctx, id)
	if err != nil {
		return nil, err
	}

	contribution.ReceiptFile = filePath
	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}
