package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
)

// ============================================================
// Auth & Admin Tables
// ============================================================

// User statuses
const (
	UserStatusActive    = "active"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

// User represents users table. Admins are never hard-deleted; approval and
// suspension only move Status.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;not null;default:'society'" json:"role"`
	Status    string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// HierarchyRole returns the user's role as a domain hierarchy level.
func (u *User) HierarchyRole() domain.Role {
	return domain.Role(u.Role)
}

// IsActive reports whether the user may authenticate.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Society Tables
// ============================================================

// Society is the base administrative unit (one mosque/residential community).
type Society struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Name                string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description         string         `gorm:"type:text" json:"description"`
	MonthlyContribution float64        `gorm:"type:decimal(10,2);not null" json:"monthly_contribution"`
	TotalBlocks         int            `gorm:"not null" json:"total_blocks"`
	TotalFlats          int            `gorm:"not null" json:"total_flats"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	Blocks []SocietyBlock `gorm:"foreignKey:SocietyID" json:"blocks,omitempty"`
}

func (Society) TableName() string {
	return "societies"
}

// SocietyBlock is a named unit within a society holding a fixed number of flats.
type SocietyBlock struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SocietyID  uint           `gorm:"not null;index" json:"society_id"`
	Name       string         `gorm:"size:50;not null" json:"name"`
	FlatsCount int            `gorm:"not null" json:"flats_count"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Society *Society `gorm:"foreignKey:SocietyID" json:"society,omitempty"`
}

func (SocietyBlock) TableName() string {
	return "society_blocks"
}

// Member statuses
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

// SocietyMember links a user to a flat in a block. It is the unit against
// which monthly contributions are expected.
type SocietyMember struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	SocietyID  uint           `gorm:"not null;index" json:"society_id"`
	BlockID    uint           `gorm:"not null;index" json:"block_id"`
	FlatNumber string         `gorm:"size:20;not null" json:"flat_number"`
	IsOwner    bool           `gorm:"default:true" json:"is_owner"`
	Status     string         `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User    *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Society *Society      `gorm:"foreignKey:SocietyID" json:"society,omitempty"`
	Block   *SocietyBlock `gorm:"foreignKey:BlockID" json:"block,omitempty"`
}

func (SocietyMember) TableName() string {
	return "society_members"
}

// Contribution statuses
const (
	ContributionStatusPending  = "pending"
	ContributionStatusVerified = "verified"
	ContributionStatusRejected = "rejected"
)

// SocietyContribution records a member payment. Created as pending at every
// call site; only the verification action mutates it afterward. A member's
// "paid" state for a month is always derived by summing rows matching that
// MonthYear, never stored.
type SocietyContribution struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	SocietyID       uint           `gorm:"not null;index" json:"society_id"`
	MemberID        uint           `gorm:"not null;index" json:"member_id"`
	Amount          float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate     time.Time      `gorm:"type:date;not null" json:"payment_date"`
	PaymentMethod   string         `gorm:"size:30;not null" json:"payment_method"`
	ReceiptNumber   string         `gorm:"size:50" json:"receipt_number"`
	ReceiptFile     string         `gorm:"size:255" json:"receipt_file"`
	Description     string         `gorm:"type:text" json:"description"`
	MonthYear       string         `gorm:"size:7;not null;index" json:"month_year"`
	Status          string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	VerifiedBy      *uint          `json:"verified_by"`
	VerifiedAt      *time.Time     `json:"verified_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Society  *Society       `gorm:"foreignKey:SocietyID" json:"society,omitempty"`
	Member   *SocietyMember `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Verifier *User          `gorm:"foreignKey:VerifiedBy" json:"verifier,omitempty"`
}

func (SocietyContribution) TableName() string {
	return "society_contributions"
}

// Expense statuses
const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusRejected = "rejected"
)

// SocietyExpense records money spent by a society, optionally tied to an
// approved proposal. Approval is a one-way status transition.
type SocietyExpense struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SocietyID   uint           `gorm:"not null;index" json:"society_id"`
	ProposalID  *uint          `gorm:"index" json:"proposal_id"`
	Title       string         `gorm:"size:150;not null" json:"title"`
	Category    string         `gorm:"size:50;not null;index" json:"category"`
	Amount      float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	ExpenseDate time.Time      `gorm:"type:date;not null" json:"expense_date"`
	Status      string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	ApprovedBy  *uint          `json:"approved_by"`
	ApprovedAt  *time.Time     `json:"approved_at"`
	Remark      string         `gorm:"type:text" json:"remark"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Society  *Society  `gorm:"foreignKey:SocietyID" json:"society,omitempty"`
	Proposal *Proposal `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
	Approver *User     `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
}

func (SocietyExpense) TableName() string {
	return "society_expenses"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth
		&User{},
		&RefreshToken{},
		// Society
		&Society{},
		&SocietyBlock{},
		&SocietyMember{},
		&SocietyContribution{},
		&SocietyExpense{},
		// Governance
		&Discussion{},
		&Proposal{},
		&Vote{},
		// Public site
		&Campaign{},
		&Donation{},
		&Enrollment{},
		&Message{},
		&Subscriber{},
	)
}
