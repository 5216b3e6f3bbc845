package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// contributionRepository implements ContributionRepository interface
type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// Create creates a new contribution
func (r *contributionRepository) Create(ctx context.Context, contribution *models.SocietyContribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

// GetByID gets a contribution by ID
func (r *contributionRepository) GetByID(ctx context.Context, id uint) (*models.SocietyContribution, error) {
	var contribution models.SocietyContribution
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Member.User").
		Where("id = ?", id).
		First(&contribution).Error
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// Update updates a contribution
func (r *contributionRepository) Update(ctx context.Context, contribution *models.SocietyContribution) error {
	return r.db.WithContext(ctx).Save(contribution).Error
}

// ListBySociety lists contributions of a society with pagination, optionally
// filtered by month
func (r *contributionRepository) ListBySociety(ctx context.Context, societyID uint, monthYear string, offset, limit int) ([]*models.SocietyContribution, int64, error) {
	var contributions []*models.SocietyContribution
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SocietyContribution{}).Where("society_id = ?", societyID)
	if monthYear != "" {
		query = query.Where("month_year = ?", monthYear)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Member.User").
		Where("society_id = ?", societyID)
	if monthYear != "" {
		listQuery = listQuery.Where("month_year = ?", monthYear)
	}

	err := listQuery.Offset(offset).Limit(limit).Order("payment_date DESC").Find(&contributions).Error
	if err != nil {
		return nil, 0, err
	}

	return contributions, total, nil
}

// ListByMonth lists all contributions of a society for a month, unpaginated.
// Used by the collection-stats derivation.
func (r *contributionRepository) ListByMonth(ctx context.Context, societyID uint, monthYear string) ([]*models.SocietyContribution, error) {
	var contributions []*models.SocietyContribution
	err := r.db.WithContext(ctx).
		Where("society_id = ? AND month_year = ?", societyID, monthYear).
		Find(&contributions).Error
	return contributions, err
}
