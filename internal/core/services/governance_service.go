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

// Governance errors
var (
	ErrDiscussionNotFound = errors.New("discussion not found")
	ErrDiscussionClosed   = errors.New("discussion is closed")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrInvalidTransition  = errors.New("invalid proposal status transition")
	ErrVotingClosed       = errors.New("proposal is not open for voting")
)

// proposalTransitions lists the allowed next statuses per current status.
// Transitions only move forward; there is no way back to draft or voting.
var proposalTransitions = map[string][]string{
	models.ProposalStatusDraft:    {models.ProposalStatusVoting},
	models.ProposalStatusVoting:   {models.ProposalStatusApproved, models.ProposalStatusRejected},
	models.ProposalStatusApproved: {models.ProposalStatusImplemented},
}

// CanTransitionProposal reports whether a proposal may move from one status
// to another.
func CanTransitionProposal(from, to string) bool {
	for _, next := range proposalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TallyVotes counts votes per type, one vote per user. The repository upsert
// already keeps a single row per user; should duplicates appear anyway the
// later row in creation order wins.
func TallyVotes(proposalID uint, votes []*models.Vote) *models.VoteTally {
	latest := make(map[uint]string, len(votes))
	order := make([]uint, 0, len(votes))
	for _, v := range votes {
		if _, seen := latest[v.UserID]; !seen {
			order = append(order, v.UserID)
		}
		latest[v.UserID] = v.VoteType
	}

	tally := &models.VoteTally{ProposalID: proposalID}
	for _, userID := range order {
		switch latest[userID] {
		case models.VoteYes:
			tally.Yes++
		case models.VoteNo:
			tally.No++
		case models.VoteAbstain:
			tally.Abstain++
		default:
			continue
		}
		tally.Total++
	}
	return tally
}

// GovernanceService handles discussions, proposals and voting
type GovernanceService struct {
	governanceRepo repositories.GovernanceRepository
	societyRepo    repositories.SocietyRepository
}

// NewGovernanceService creates a new governance service
func NewGovernanceService(
	governanceRepo repositories.GovernanceRepository,
	societyRepo repositories.SocietyRepository,
) *GovernanceService {
	return &GovernanceService{
		governanceRepo: governanceRepo,
		societyRepo:    societyRepo,
	}
}

// CreateDiscussionInput represents discussion creation input
type CreateDiscussionInput struct {
	Title       string `json:"title" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"max=5000"`
}

// CreateProposalInput represents proposal creation input
type CreateProposalInput struct {
	DiscussionID  *uint   `json:"discussion_id"`
	Title         string  `json:"title" validate:"required,min=3,max=150"`
	Description   string  `json:"description" validate:"max=5000"`
	EstimatedCost float64 `json:"estimated_cost" validate:"gte=0"`
}

// TransitionProposalInput represents a status change request
type TransitionProposalInput struct {
	Status        string `json:"status" validate:"required,oneof=voting approved rejected implemented"`
	VotingEndDate string `json:"voting_end_date" validate:"omitempty,datetime=2006-01-02"`
}

// CastVoteInput represents vote input
type CastVoteInput struct {
	VoteType string `json:"vote_type" validate:"required,oneof=yes no abstain"`
	Comment  string `json:"comment" validate:"max=2000"`
}

// CreateDiscussion opens a discussion thread in a society
func (s *GovernanceService) CreateDiscussion(ctx context.Context, societyID, creatorID uint, input *CreateDiscussionInput) (*models.Discussion, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.societyRepo.GetByID(ctx, societyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}

	discussion := &models.Discussion{
		SocietyID:   societyID,
		CreatorID:   creatorID,
		Title:       input.Title,
		Description: input.Description,
		Status:      models.DiscussionStatusOpen,
	}

	if err := s.governanceRepo.CreateDiscussion(ctx, discussion); err != nil {
		return nil, err
	}

	return discussion, nil
}

// GetDiscussion gets a discussion by ID
func (s *GovernanceService) GetDiscussion(ctx context.Context, id uint) (*models.Discussion, error) {
	discussion, err := s.governanceRepo.GetDiscussionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscussionNotFound
		}
		return nil, err
	}
	return discussion, nil
}

// ListDiscussions lists discussions for a society with pagination
func (s *GovernanceService) ListDiscussions(ctx context.Context, societyID uint, offset, limit int) ([]*models.Discussion, int64, error) {
	return s.governanceRepo.ListDiscussions(ctx, societyID, offset, limit)
}

// CloseDiscussion sets a discussion's status to closed or resolved
func (s *GovernanceService) CloseDiscussion(ctx context.Context, id uint, status string) (*models.Discussion, error) {
	if status != models.DiscussionStatusClosed && status != models.DiscussionStatusResolved {
		return nil, ErrInvalidTransition
	}

	discussion, err := s.GetDiscussion(ctx, id)
	if err != nil {
		return nil, err
	}

	discussion.Status = status
	if err := s.governanceRepo.UpdateDiscussion(ctx, discussion); err != nil {
		return nil, err
	}
	return discussion, nil
}

// CreateProposal creates a draft proposal, optionally linked to a discussion
func (s *GovernanceService) CreateProposal(ctx context.Context, societyID, creatorID uint, input *CreateProposalInput) (*models.Proposal, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.societyRepo.GetByID(ctx, societyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}

	if input.DiscussionID != nil {
		discussion, err := s.GetDiscussion(ctx, *input.DiscussionID)
		if err != nil {
			return nil, err
		}
		if discussion.SocietyID != societyID {
			return nil, ErrDiscussionNotFound
		}
		if discussion.Status != models.DiscussionStatusOpen {
			return nil, ErrDiscussionClosed
		}
	}

	proposal := &models.Proposal{
		SocietyID:     societyID,
		DiscussionID:  input.DiscussionID,
		CreatorID:     creatorID,
		Title:         input.Title,
		Description:   input.Description,
		EstimatedCost: input.EstimatedCost,
		Status:        models.ProposalStatusDraft,
	}

	if err := s.governanceRepo.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}

	log.Printf("✅ Proposal created: %s (society %d)", proposal.Title, societyID)

	return proposal, nil
}

// GetProposal gets a proposal by ID
func (s *GovernanceService) GetProposal(ctx context.Context, id uint) (*models.Proposal, error) {
	proposal, err := s.governanceRepo.GetProposalByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return proposal, nil
}

// ListProposals lists proposals for a society with pagination
func (s *GovernanceService) ListProposals(ctx context.Context, societyID uint, offset, limit int) ([]*models.Proposal, int64, error) {
	return s.governanceRepo.ListProposals(ctx, societyID, offset, limit)
}

// TransitionProposal moves a proposal along its lifecycle. Moving to voting
// opens the voting window; any other transition out of voting closes it.
func (s *GovernanceService) TransitionProposal(ctx context.Context, id uint, input *TransitionProposalInput) (*models.Proposal, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	proposal, err := s.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransitionProposal(proposal.Status, input.Status) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	if input.Status == models.ProposalStatusVoting {
		proposal.VotingStartDate = &now
		if input.VotingEndDate != "" {
			end, err := time.Parse("2006-01-02", input.VotingEndDate)
			if err != nil {
				return nil, err
			}
			proposal.VotingEndDate = &end
		}
	}

	proposal.Status = input.Status
	if err := s.governanceRepo.UpdateProposal(ctx, proposal); err != nil {
		return nil, err
	}

	log.Printf("✅ Proposal %d moved to %s", id, input.Status)

	return proposal, nil
}

// CastVote records or replaces a user's vote on a proposal. Only the latest
// vote per user counts.
func (s *GovernanceService) CastVote(ctx context.Context, proposalID, userID uint, input *CastVoteInput) (*models.Vote, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	proposal, err := s.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status != models.ProposalStatusVoting {
		return nil, ErrVotingClosed
	}
	if proposal.VotingEndDate != nil && time.Now().After(*proposal.VotingEndDate) {
		return nil, ErrVotingClosed
	}

	vote := &models.Vote{
		ProposalID: proposalID,
		UserID:     userID,
		VoteType:   input.VoteType,
		Comment:    input.Comment,
	}

	if err := s.governanceRepo.UpsertVote(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

// GetTally returns the current vote tally for a proposal
func (s *GovernanceService) GetTally(ctx context.Context, proposalID uint) (*models.VoteTally, error) {
	if _, err := s.GetProposal(ctx, proposalID); err != nil {
		return nil, err
	}

	votes, err := s.governanceRepo.ListVotes(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	return TallyVotes(proposalID, votes), nil
}
