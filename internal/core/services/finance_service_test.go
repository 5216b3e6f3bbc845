package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

func verified(memberID uint, amount float64) *models.SocietyContribution {
	return &models.SocietyContribution{
		MemberID: memberID,
		Amount:   amount,
		Status:   models.ContributionStatusVerified,
	}
}

func TestComputeCollectionStats(t *testing.T) {
	t.Run("typical month", func(t *testing.T) {
		// 176 flats at 1500/month, 100 flats paid in full
		contributions := make([]*models.SocietyContribution, 0, 100)
		for i := uint(1); i <= 100; i++ {
			contributions = append(contributions, verified(i, 1500))
		}

		stats := ComputeCollectionStats("2026-03", 1500, 176, contributions)

		assert.Equal(t, 264000.0, stats.ExpectedTotal)
		assert.Equal(t, 150000.0, stats.CollectedTotal)
		assert.Equal(t, 56.8, stats.CollectionRate)
		assert.Equal(t, 114000.0, stats.Outstanding)
		assert.Equal(t, 100, stats.PaidFlats)
		assert.Equal(t, 176, stats.TotalFlats)
	})

	t.Run("pending and rejected rows do not count", func(t *testing.T) {
		contributions := []*models.SocietyContribution{
			verified(1, 1500),
			{MemberID: 2, Amount: 1500, Status: models.ContributionStatusPending},
			{MemberID: 3, Amount: 1500, Status: models.ContributionStatusRejected},
		}

		stats := ComputeCollectionStats("2026-03", 1500, 10, contributions)

		assert.Equal(t, 1500.0, stats.CollectedTotal)
		assert.Equal(t, 1, stats.PaidFlats)
	})

	t.Run("multiple payments by one member count once for paid flats", func(t *testing.T) {
		contributions := []*models.SocietyContribution{
			verified(1, 750),
			verified(1, 750),
		}

		stats := ComputeCollectionStats("2026-03", 1500, 10, contributions)

		assert.Equal(t, 1500.0, stats.CollectedTotal)
		assert.Equal(t, 1, stats.PaidFlats)
	})

	t.Run("zero expected total yields zero rate", func(t *testing.T) {
		stats := ComputeCollectionStats("2026-03", 1500, 0, nil)

		assert.Equal(t, 0.0, stats.ExpectedTotal)
		assert.Equal(t, 0.0, stats.CollectionRate)
		assert.Equal(t, 0.0, stats.Outstanding)
	})

	t.Run("overcollection clamps outstanding to zero", func(t *testing.T) {
		contributions := []*models.SocietyContribution{verified(1, 5000)}

		stats := ComputeCollectionStats("2026-03", 1500, 2, contributions)

		assert.Equal(t, 3000.0, stats.ExpectedTotal)
		assert.Equal(t, 5000.0, stats.CollectedTotal)
		assert.Equal(t, 0.0, stats.Outstanding)
	})
}

func TestComputeMemberCollection(t *testing.T) {
	members := []*models.SocietyMember{
		{ID: 1, BlockID: 1, FlatNumber: "A-101"},
		{ID: 2, BlockID: 1, FlatNumber: "A-102"},
		{ID: 3, BlockID: 2, FlatNumber: "B-201"},
	}

	t.Run("full payment marks flat paid", func(t *testing.T) {
		result := ComputeMemberCollection(1500, members, []*models.SocietyContribution{
			verified(1, 1500),
		})

		assert.Len(t, result, 3)
		assert.Equal(t, ContributionStatusLabelPaid, result[0].Status)
		assert.Equal(t, 0.0, result[0].Pending)
		assert.Equal(t, ContributionStatusLabelPending, result[1].Status)
		assert.Equal(t, 1500.0, result[1].Pending)
	})

	t.Run("partial payment stays pending", func(t *testing.T) {
		result := ComputeMemberCollection(1500, members, []*models.SocietyContribution{
			verified(2, 1000),
		})

		assert.Equal(t, ContributionStatusLabelPending, result[1].Status)
		assert.Equal(t, 1000.0, result[1].Paid)
		assert.Equal(t, 500.0, result[1].Pending)
	})

	t.Run("split payments accumulate", func(t *testing.T) {
		result := ComputeMemberCollection(1500, members, []*models.SocietyContribution{
			verified(3, 750),
			verified(3, 750),
		})

		assert.Equal(t, ContributionStatusLabelPaid, result[2].Status)
		assert.Equal(t, 1500.0, result[2].Paid)
	})

	t.Run("unverified rows do not count toward paid", func(t *testing.T) {
		result := ComputeMemberCollection(1500, members, []*models.SocietyContribution{
			{MemberID: 1, Amount: 1500, Status: models.ContributionStatusPending},
		})

		assert.Equal(t, ContributionStatusLabelPending, result[0].Status)
		assert.Equal(t, 0.0, result[0].Paid)
	})

	t.Run("overpayment clamps pending to zero", func(t *testing.T) {
		result := ComputeMemberCollection(1500, members, []*models.SocietyContribution{
			verified(1, 2000),
		})

		assert.Equal(t, ContributionStatusLabelPaid, result[0].Status)
		assert.Equal(t, 0.0, result[0].Pending)
	})
}
