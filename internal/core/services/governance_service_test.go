package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

func TestCanTransitionProposal(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"draft to voting", models.ProposalStatusDraft, models.ProposalStatusVoting, true},
		{"voting to approved", models.ProposalStatusVoting, models.ProposalStatusApproved, true},
		{"voting to rejected", models.ProposalStatusVoting, models.ProposalStatusRejected, true},
		{"approved to implemented", models.ProposalStatusApproved, models.ProposalStatusImplemented, true},
		{"draft to approved skips voting", models.ProposalStatusDraft, models.ProposalStatusApproved, false},
		{"voting back to draft", models.ProposalStatusVoting, models.ProposalStatusDraft, false},
		{"approved back to voting", models.ProposalStatusApproved, models.ProposalStatusVoting, false},
		{"rejected to implemented", models.ProposalStatusRejected, models.ProposalStatusImplemented, false},
		{"implemented is terminal", models.ProposalStatusImplemented, models.ProposalStatusApproved, false},
		{"unknown status", "archived", models.ProposalStatusVoting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransitionProposal(tt.from, tt.to))
		})
	}
}

func TestTallyVotes(t *testing.T) {
	votes := []*models.Vote{
		{UserID: 1, VoteType: models.VoteYes},
		{UserID: 2, VoteType: models.VoteYes},
		{UserID: 3, VoteType: models.VoteNo},
		{UserID: 4, VoteType: models.VoteAbstain},
		{UserID: 5, VoteType: "maybe"},
	}

	tally := TallyVotes(42, votes)

	assert.Equal(t, uint(42), tally.ProposalID)
	assert.Equal(t, 2, tally.Yes)
	assert.Equal(t, 1, tally.No)
	assert.Equal(t, 1, tally.Abstain)
	assert.Equal(t, 4, tally.Total)
}

func TestTallyVotesEmpty(t *testing.T) {
	tally := TallyVotes(7, nil)

	assert.Equal(t, 0, tally.Total)
	assert.Equal(t, 0, tally.Yes)
}

func TestTallyVotesLatestWins(t *testing.T) {
	// Votes arrive in creation order; a user's later vote replaces the earlier
	// one in the count.
	votes := []*models.Vote{
		{UserID: 1, VoteType: models.VoteYes},
		{UserID: 2, VoteType: models.VoteYes},
		{UserID: 1, VoteType: models.VoteNo},
	}

	tally := TallyVotes(42, votes)

	assert.Equal(t, 1, tally.Yes)
	assert.Equal(t, 1, tally.No)
	assert.Equal(t, 2, tally.Total)
}

func TestCastVoteUpsertsByProposalAndUser(t *testing.T) {
	repo := new(GovernanceRepoMock)
	repo.On("GetProposalByID", mock.Anything, uint(10)).Return(&models.Proposal{
		ID:     10,
		Status: models.ProposalStatusVoting,
	}, nil).Once()
	repo.On("UpsertVote", mock.Anything, mock.MatchedBy(func(v *models.Vote) bool {
		return v.ProposalID == 10 && v.UserID == 5 && v.VoteType == models.VoteNo
	})).Return(nil).Once()

	svc := NewGovernanceService(repo, nil)

	vote, err := svc.CastVote(context.Background(), 10, 5, &CastVoteInput{VoteType: models.VoteNo})
	require.NoError(t, err)
	assert.Equal(t, models.VoteNo, vote.VoteType)

	repo.AssertExpectations(t)
}

func TestCastVoteRejectedOutsideVoting(t *testing.T) {
	repo := new(GovernanceRepoMock)
	repo.On("GetProposalByID", mock.Anything, uint(11)).Return(&models.Proposal{
		ID:     11,
		Status: models.ProposalStatusApproved,
	}, nil).Once()

	svc := NewGovernanceService(repo, nil)

	_, err := svc.CastVote(context.Background(), 11, 5, &CastVoteInput{VoteType: models.VoteYes})
	assert.ErrorIs(t, err, ErrVotingClosed)

	repo.AssertExpectations(t)
}
