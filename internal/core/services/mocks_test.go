package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// Hand-written repository mocks shared by the service tests.

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepoMock) ListByMaxRank(ctx context.Context, roles []string, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, roles, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepoMock) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type ContributionRepoMock struct {
	mock.Mock
}

func (m *ContributionRepoMock) Create(ctx context.Context, contribution *models.SocietyContribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *ContributionRepoMock) GetByID(ctx context.Context, id uint) (*models.SocietyContribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocietyContribution), args.Error(1)
}

func (m *ContributionRepoMock) Update(ctx context.Context, contribution *models.SocietyContribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *ContributionRepoMock) ListBySociety(ctx context.Context, societyID uint, monthYear string, offset, limit int) ([]*models.SocietyContribution, int64, error) {
	args := m.Called(ctx, societyID, monthYear, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.SocietyContribution), args.Get(1).(int64), args.Error(2)
}

func (m *ContributionRepoMock) ListByMonth(ctx context.Context, societyID uint, monthYear string) ([]*models.SocietyContribution, error) {
	args := m.Called(ctx, societyID, monthYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocietyContribution), args.Error(1)
}

type GovernanceRepoMock struct {
	mock.Mock
}

func (m *GovernanceRepoMock) CreateDiscussion(ctx context.Context, discussion *models.Discussion) error {
	args := m.Called(ctx, discussion)
	return args.Error(0)
}

func (m *GovernanceRepoMock) GetDiscussionByID(ctx context.Context, id uint) (*models.Discussion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discussion), args.Error(1)
}

func (m *GovernanceRepoMock) UpdateDiscussion(ctx context.Context, discussion *models.Discussion) error {
	args := m.Called(ctx, discussion)
	return args.Error(0)
}

func (m *GovernanceRepoMock) ListDiscussions(ctx context.Context, societyID uint, offset, limit int) ([]*models.Discussion, int64, error) {
	args := m.Called(ctx, societyID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Discussion), args.Get(1).(int64), args.Error(2)
}

func (m *GovernanceRepoMock) CreateProposal(ctx context.Context, proposal *models.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *GovernanceRepoMock) GetProposalByID(ctx context.Context, id uint) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *GovernanceRepoMock) UpdateProposal(ctx context.Context, proposal *models.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *GovernanceRepoMock) ListProposals(ctx context.Context, societyID uint, offset, limit int) ([]*models.Proposal, int64, error) {
	args := m.Called(ctx, societyID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Proposal), args.Get(1).(int64), args.Error(2)
}

func (m *GovernanceRepoMock) UpsertVote(ctx context.Context, vote *models.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *GovernanceRepoMock) ListVotes(ctx context.Context, proposalID uint) ([]*models.Vote, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vote), args.Error(1)
}
