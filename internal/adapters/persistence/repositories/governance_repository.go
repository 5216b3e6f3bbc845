package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// governanceRepository implements GovernanceRepository interface
type governanceRepository struct {
	db *gorm.DB
}

// NewGovernanceRepository creates a new governance repository
func NewGovernanceRepository(db *gorm.DB) GovernanceRepository {
	return &governanceRepository{db: db}
}

// CreateDiscussion creates a new discussion
func (r *governanceRepository) CreateDiscussion(ctx context.Context, discussion *models.Discussion) error {
	return r.db.WithContext(ctx).Create(discussion).Error
}

// GetDiscussionByID gets a discussion by ID
func (r *governanceRepository) GetDiscussionByID(ctx context.Context, id uint) (*models.Discussion, error) {
	var discussion models.Discussion
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&discussion).Error
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

// UpdateDiscussion updates a discussion
func (r *governanceRepository) UpdateDiscussion(ctx context.Context, discussion *models.Discussion) error {
	return r.db.WithContext(ctx).Save(discussion).Error
}

// ListDiscussions lists discussions of a society with pagination
func (r *governanceRepository) ListDiscussions(ctx context.Context, societyID uint, offset, limit int) ([]*models.Discussion, int64, error) {
	var discussions []*models.Discussion
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Discussion{}).Where("society_id = ?", societyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("society_id = ?", societyID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&discussions).Error
	if err != nil {
		return nil, 0, err
	}

	return discussions, total, nil
}

// CreateProposal creates a new proposal
func (r *governanceRepository) CreateProposal(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

// GetProposalByID gets a proposal by ID
func (r *governanceRepository) GetProposalByID(ctx context.Context, id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Discussion").
		Where("id = ?", id).
		First(&proposal).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// UpdateProposal updates a proposal
func (r *governanceRepository) UpdateProposal(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Save(proposal).Error
}

// ListProposals lists proposals of a society with pagination
func (r *governanceRepository) ListProposals(ctx context.Context, societyID uint, offset, limit int) ([]*models.Proposal, int64, error) {
	var proposals []*models.Proposal
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Proposal{}).Where("society_id = ?", societyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("society_id = ?", societyID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// UpsertVote inserts a vote, replacing the user's earlier vote on the same
// proposal if one exists. Backed by the (proposal_id, user_id) unique index.
func (r *governanceRepository) UpsertVote(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote_type", "comment", "updated_at"}),
		}).
		Create(vote).Error
}

// ListVotes lists all votes of a proposal
func (r *governanceRepository) ListVotes(ctx context.Context, proposalID uint) ([]*models.Vote, error) {
	var votes []*models.Vote
	err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("created_at ASC").
		Find(&votes).Error
	return votes, err
}
