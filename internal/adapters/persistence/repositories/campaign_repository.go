package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// campaignRepository implements CampaignRepository interface
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

// Create creates a new campaign
func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

// GetByID gets a campaign by ID
func (r *campaignRepository) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List lists campaigns
func (r *campaignRepository) List(ctx context.Context, activeOnly bool) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// ExistsByName checks if a campaign name exists
func (r *campaignRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Campaign{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// CreateDonation inserts the donation and bumps the campaign's raised total
// in the same transaction, so Raised never drifts from the donation sum.
func (r *campaignRepository) CreateDonation(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		return tx.Model(&models.Campaign{}).
			Where("id = ?", donation.CampaignID).
			Update("raised", gorm.Expr("raised + ?", donation.Amount)).Error
	})
}

// ListDonations lists donations of a campaign with pagination
func (r *campaignRepository) ListDonations(ctx context.Context, campaignID uint, offset, limit int) ([]*models.Donation, int64, error) {
	var donations []*models.Donation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Donation{}).Where("campaign_id = ?", campaignID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}
