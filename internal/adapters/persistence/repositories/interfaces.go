package repositories

import (
	"context"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ListByMaxRank(ctx context.Context, roles []string, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// SocietyRepository defines society/block/member repository interface
type SocietyRepository interface {
	Create(ctx context.Context, society *models.Society) error
	GetByID(ctx context.Context, id uint) (*models.Society, error)
	List(ctx context.Context) ([]*models.Society, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	CreateBlock(ctx context.Context, block *models.SocietyBlock) error
	GetBlockByID(ctx context.Context, id uint) (*models.SocietyBlock, error)
	ListBlocks(ctx context.Context, societyID uint) ([]*models.SocietyBlock, error)

	CreateMember(ctx context.Context, member *models.SocietyMember) error
	GetMemberByID(ctx context.Context, id uint) (*models.SocietyMember, error)
	ListMembers(ctx context.Context, societyID uint, offset, limit int) ([]*models.SocietyMember, int64, error)
	ListAllMembers(ctx context.Context, societyID uint) ([]*models.SocietyMember, error)
}

// ContributionRepository defines contribution repository interface
type ContributionRepository interface {
	Create(ctx context.Context, contribution *models.SocietyContribution) error
	GetByID(ctx context.Context, id uint) (*models.SocietyContribution, error)
	Update(ctx context.Context, contribution *models.SocietyContribution) error
	ListBySociety(ctx context.Context, societyID uint, monthYear string, offset, limit int) ([]*models.SocietyContribution, int64, error)
	ListByMonth(ctx context.Context, societyID uint, monthYear string) ([]*models.SocietyContribution, error)
}

// ExpenseRepository defines expense repository interface
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.SocietyExpense) error
	GetByID(ctx context.Context, id uint) (*models.SocietyExpense, error)
	Update(ctx context.Context, expense *models.SocietyExpense) error
	ListBySociety(ctx context.Context, societyID uint, offset, limit int) ([]*models.SocietyExpense, int64, error)
}

// GovernanceRepository defines discussion/proposal/vote repository interface
type GovernanceRepository interface {
	CreateDiscussion(ctx context.Context, discussion *models.Discussion) error
	GetDiscussionByID(ctx context.Context, id uint) (*models.Discussion, error)
	UpdateDiscussion(ctx context.Context, discussion *models.Discussion) error
	ListDiscussions(ctx context.Context, societyID uint, offset, limit int) ([]*models.Discussion, int64, error)

	CreateProposal(ctx context.Context, proposal *models.Proposal) error
	GetProposalByID(ctx context.Context, id uint) (*models.Proposal, error)
	UpdateProposal(ctx context.Context, proposal *models.Proposal) error
	ListProposals(ctx context.Context, societyID uint, offset, limit int) ([]*models.Proposal, int64, error)

	UpsertVote(ctx context.Context, vote *models.Vote) error
	ListVotes(ctx context.Context, proposalID uint) ([]*models.Vote, error)
}

// CampaignRepository defines campaign/donation repository interface
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uint) (*models.Campaign, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Campaign, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// CreateDonation inserts the donation and bumps the campaign's raised
	// total in a single transaction.
	CreateDonation(ctx context.Context, donation *models.Donation) error
	ListDonations(ctx context.Context, campaignID uint, offset, limit int) ([]*models.Donation, int64, error)
}

// OutreachRepository defines enrollment/message/subscriber repository interface
type OutreachRepository interface {
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	GetEnrollmentByID(ctx context.Context, id uint) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	ListEnrollments(ctx context.Context, offset, limit int) ([]*models.Enrollment, int64, error)

	CreateMessage(ctx context.Context, message *models.Message) error
	ListMessages(ctx context.Context, offset, limit int) ([]*models.Message, int64, error)
	MarkMessageRead(ctx context.Context, id uint) error

	CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error
	ExistsSubscriber(ctx context.Context, email string) (bool, error)
}
