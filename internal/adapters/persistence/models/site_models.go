package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Public Site Tables
// ============================================================

// Campaign tracks a fundraising goal. Raised is maintained inside the
// donation creation transaction, the single code path that writes it.
type Campaign struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Goal        float64        `gorm:"type:decimal(12,2);not null" json:"goal"`
	Raised      float64        `gorm:"type:decimal(12,2);not null;default:0" json:"raised"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// Donation is a one-off contribution against a campaign, independent of the
// society hierarchy.
type Donation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CampaignID    uint      `gorm:"not null;index" json:"campaign_id"`
	Reference     string    `gorm:"size:40;uniqueIndex;not null" json:"reference"`
	DonorName     string    `gorm:"size:100;not null" json:"donor_name"`
	DonorEmail    string    `gorm:"size:100" json:"donor_email"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:30;not null" json:"payment_method"`
	Message       string    `gorm:"type:text" json:"message"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

// Enrollment statuses
const (
	EnrollmentStatusPending  = "pending"
	EnrollmentStatusAccepted = "accepted"
	EnrollmentStatusDeclined = "declined"
)

// Enrollment is a madrasa admission form submission.
type Enrollment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	StudentName  string         `gorm:"size:100;not null" json:"student_name"`
	GuardianName string         `gorm:"size:100;not null" json:"guardian_name"`
	Phone        string         `gorm:"size:20;not null" json:"phone"`
	Email        string         `gorm:"size:100" json:"email"`
	Program      string         `gorm:"size:50;not null" json:"program"`
	Age          int            `gorm:"not null" json:"age"`
	Status       string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// Message is a contact-form submission.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Subject   string    `gorm:"size:150" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}
