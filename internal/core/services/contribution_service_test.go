package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

func TestRejectContributionRequiresReason(t *testing.T) {
	svc := NewContributionService(nil, nil)

	_, err := svc.RejectContribution(context.Background(), 1, 2, &RejectContributionInput{Reason: ""})
	assert.ErrorIs(t, err, ErrRejectionReasonEmpty)

	_, err = svc.RejectContribution(context.Background(), 1, 2, &RejectContributionInput{Reason: "ab"})
	assert.ErrorIs(t, err, ErrRejectionReasonEmpty)
}

func TestRecordContributionInputValidation(t *testing.T) {
	svc := NewContributionService(nil, nil)

	tests := []struct {
		name  string
		input RecordContributionInput
	}{
		{"missing member", RecordContributionInput{Amount: 1500, PaymentDate: "2026-03-05", PaymentMethod: "cash", MonthYear: "2026-03"}},
		{"zero amount", RecordContributionInput{MemberID: 1, PaymentDate: "2026-03-05", PaymentMethod: "cash", MonthYear: "2026-03"}},
		{"bad month format", RecordContributionInput{MemberID: 1, Amount: 1500, PaymentDate: "2026-03-05", PaymentMethod: "cash", MonthYear: "March 2026"}},
		{"bad payment method", RecordContributionInput{MemberID: 1, Amount: 1500, PaymentDate: "2026-03-05", PaymentMethod: "gold", MonthYear: "2026-03"}},
		{"bad payment date", RecordContributionInput{MemberID: 1, Amount: 1500, PaymentDate: "05-03-2026", PaymentMethod: "cash", MonthYear: "2026-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := svc.RecordContribution(context.Background(), 1, &input)
			assert.Error(t, err)
		})
	}
}

func TestVerifyContributionOverwritesRejected(t *testing.T) {
	repo := new(ContributionRepoMock)
	repo.On("GetByID", mock.Anything, uint(1)).Return(&models.SocietyContribution{
		ID:              1,
		Status:          models.ContributionStatusRejected,
		RejectionReason: "receipt unreadable",
	}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.SocietyContribution) bool {
		return c.Status == models.ContributionStatusVerified &&
			c.RejectionReason == "" &&
			c.VerifiedBy != nil && *c.VerifiedBy == 9 &&
			c.VerifiedAt != nil
	})).Return(nil).Once()

	svc := NewContributionService(repo, nil)

	contribution, err := svc.VerifyContribution(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, models.ContributionStatusVerified, contribution.Status)
	assert.Empty(t, contribution.RejectionReason)

	repo.AssertExpectations(t)
}

func TestVerifyContributionRestampsVerified(t *testing.T) {
	earlier := uint(3)
	repo := new(ContributionRepoMock)
	repo.On("GetByID", mock.Anything, uint(2)).Return(&models.SocietyContribution{
		ID:         2,
		Status:     models.ContributionStatusVerified,
		VerifiedBy: &earlier,
	}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.SocietyContribution) bool {
		return c.Status == models.ContributionStatusVerified &&
			c.VerifiedBy != nil && *c.VerifiedBy == 9
	})).Return(nil).Once()

	svc := NewContributionService(repo, nil)

	contribution, err := svc.VerifyContribution(context.Background(), 2, 9)
	require.NoError(t, err)
	assert.Equal(t, uint(9), *contribution.VerifiedBy)

	repo.AssertExpectations(t)
}

func TestRejectContributionOverwritesVerified(t *testing.T) {
	repo := new(ContributionRepoMock)
	repo.On("GetByID", mock.Anything, uint(4)).Return(&models.SocietyContribution{
		ID:     4,
		Status: models.ContributionStatusVerified,
	}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.SocietyContribution) bool {
		return c.Status == models.ContributionStatusRejected &&
			c.RejectionReason == "duplicate of an earlier payment"
	})).Return(nil).Once()

	svc := NewContributionService(repo, nil)

	contribution, err := svc.RejectContribution(context.Background(), 4, 9, &RejectContributionInput{
		Reason: "duplicate of an earlier payment",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContributionStatusRejected, contribution.Status)

	repo.AssertExpectations(t)
}

func TestVerifyContributionNotFound(t *testing.T) {
	repo := new(ContributionRepoMock)
	repo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewContributionService(repo, nil)

	_, err := svc.VerifyContribution(context.Background(), 404, 9)
	assert.ErrorIs(t, err, ErrContributionNotFound)

	repo.AssertExpectations(t)
}
