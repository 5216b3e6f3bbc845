package models

import (
	"time"

	"gorm.io/gorm"
)

// Discussion statuses
const (
	DiscussionStatusOpen     = "open"
	DiscussionStatusClosed   = "closed"
	DiscussionStatusResolved = "resolved"
)

// Discussion is a community thread that may spawn proposals.
type Discussion struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SocietyID   uint           `gorm:"not null;index" json:"society_id"`
	CreatorID   uint           `gorm:"not null" json:"creator_id"`
	Title       string         `gorm:"size:150;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Society *Society `gorm:"foreignKey:SocietyID" json:"society,omitempty"`
	Creator *User    `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

func (Discussion) TableName() string {
	return "discussions"
}

// Proposal statuses. Transitions only move forward:
// draft -> voting -> approved|rejected -> implemented.
const (
	ProposalStatusDraft       = "draft"
	ProposalStatusVoting      = "voting"
	ProposalStatusApproved    = "approved"
	ProposalStatusRejected    = "rejected"
	ProposalStatusImplemented = "implemented"
)

// Proposal is a community-initiated item for voting, optionally derived from
// a discussion. Votes are accepted only while Status is voting.
type Proposal struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	SocietyID       uint           `gorm:"not null;index" json:"society_id"`
	DiscussionID    *uint          `gorm:"index" json:"discussion_id"`
	CreatorID       uint           `gorm:"not null" json:"creator_id"`
	Title           string         `gorm:"size:150;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	EstimatedCost   float64        `gorm:"type:decimal(10,2)" json:"estimated_cost"`
	Status          string         `gorm:"size:20;not null;default:'draft';index" json:"status"`
	VotingStartDate *time.Time     `json:"voting_start_date"`
	VotingEndDate   *time.Time     `json:"voting_end_date"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Society    *Society    `gorm:"foreignKey:SocietyID" json:"society,omitempty"`
	Discussion *Discussion `gorm:"foreignKey:DiscussionID" json:"discussion,omitempty"`
	Creator    *User       `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// Vote types
const (
	VoteYes     = "yes"
	VoteNo      = "no"
	VoteAbstain = "abstain"
)

// Vote is one user's choice on a proposal. The composite unique index makes
// re-voting a replace, never a second row.
type Vote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProposalID uint      `gorm:"not null;uniqueIndex:idx_vote_proposal_user,priority:1" json:"proposal_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_vote_proposal_user,priority:2" json:"user_id"`
	VoteType   string    `gorm:"size:10;not null" json:"vote_type"`
	Comment    string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Proposal *Proposal `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Vote) TableName() string {
	return "votes"
}

// VoteTally is the per-type count of deduplicated votes for a proposal.
type VoteTally struct {
	ProposalID uint `json:"proposal_id"`
	Yes        int  `json:"yes"`
	No         int  `json:"no"`
	Abstain    int  `json:"abstain"`
	Total      int  `json:"total"`
}
