package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// societyRepository implements SocietyRepository interface
type societyRepository struct {
	db *gorm.DB
}

// NewSocietyRepository creates a new society repository
func NewSocietyRepository(db *gorm.DB) SocietyRepository {
	return &societyRepository{db: db}
}

// Create creates a new society
func (r *societyRepository) Create(ctx context.Context, society *models.Society) error {
	return r.db.WithContext(ctx).Create(society).Error
}

// GetByID gets a society by ID with its blocks preloaded
func (r *societyRepository) GetByID(ctx context.Context, id uint) (*models.Society, error) {
	var society models.Society
	err := r.db.WithContext(ctx).Preload("Blocks").Where("id = ?", id).First(&society).Error
	if err != nil {
		return nil, err
	}
	return &society, nil
}

// List lists all societies
func (r *societyRepository) List(ctx context.Context) ([]*models.Society, error) {
	var societies []*models.Society
	err := r.db.WithContext(ctx).Order("name ASC").Find(&societies).Error
	return societies, err
}

// ExistsByName checks if a society name exists
func (r *societyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Society{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// CreateBlock creates a new society block
func (r *societyRepository) CreateBlock(ctx context.Context, block *models.SocietyBlock) error {
	return r.db.WithContext(ctx).Create(block).Error
}

// GetBlockByID gets a block by ID
func (r *societyRepository) GetBlockByID(ctx context.Context, id uint) (*models.SocietyBlock, error) {
	var block models.SocietyBlock
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// ListBlocks lists blocks of a society
func (r *societyRepository) ListBlocks(ctx context.Context, societyID uint) ([]*models.SocietyBlock, error) {
	var blocks []*models.SocietyBlock
	err := r.db.WithContext(ctx).Where("society_id = ?", societyID).Order("name ASC").Find(&blocks).Error
	return blocks, err
}

// CreateMember creates a new society member
func (r *societyRepository) CreateMember(ctx context.Context, member *models.SocietyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetMemberByID gets a member by ID
func (r *societyRepository) GetMemberByID(ctx context.Context, id uint) (*models.SocietyMember, error) {
	var member models.SocietyMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Block").
		Where("id = ?", id).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists members of a society with pagination
func (r *societyRepository) ListMembers(ctx context.Context, societyID uint, offset, limit int) ([]*models.SocietyMember, int64, error) {
	var members []*models.SocietyMember
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SocietyMember{}).Where("society_id = ?", societyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Block").
		Where("society_id = ?", societyID).
		Offset(offset).Limit(limit).
		Order("block_id ASC, flat_number ASC").
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ListAllMembers lists every active member of a society, unpaginated. Used
// by the collection-stats derivation.
func (r *societyRepository) ListAllMembers(ctx context.Context, societyID uint) ([]*models.SocietyMember, error) {
	var members []*models.SocietyMember
	err := r.db.WithContext(ctx).
		Where("society_id = ? AND status = ?", societyID, models.MemberStatusActive).
		Order("block_id ASC, flat_number ASC").
		Find(&members).Error
	return members, err
}
