package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/repositories"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/validate"
)

// Outreach errors
var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCampaignAlreadyExists = errors.New("campaign already exists")
	ErrCampaignInactive      = errors.New("campaign is not active")
	ErrEnrollmentNotFound    = errors.New("enrollment not found")
	ErrAlreadySubscribed     = errors.New("email already subscribed")
)

// OutreachService handles the public site: campaigns, donations, enrollments,
// contact messages and newsletter subscriptions
type OutreachService struct {
	campaignRepo repositories.CampaignRepository
	outreachRepo repositories.OutreachRepository
}

// NewOutreachService creates a new outreach service
func NewOutreachService(
	campaignRepo repositories.CampaignRepository,
	outreachRepo repositories.OutreachRepository,
) *OutreachService {
	return &OutreachService{
		campaignRepo: campaignRepo,
		outreachRepo: outreachRepo,
	}
}

// CreateCampaignInput represents campaign creation input
type CreateCampaignInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"max=5000"`
	Goal        float64 `json:"goal" validate:"required,gt=0"`
}

// DonateInput represents donation input
type DonateInput struct {
	DonorName     string  `json:"donor_name" validate:"required,min=2,max=100"`
	DonorEmail    string  `json:"donor_email" validate:"omitempty,email"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash bank_transfer easypaisa jazzcash card"`
	Message       string  `json:"message" validate:"max=2000"`
}

// EnrollInput represents madrasa enrollment input
type EnrollInput struct {
	StudentName  string `json:"student_name" validate:"required,min=2,max=100"`
	GuardianName string `json:"guardian_name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Program      string `json:"program" validate:"required,max=50"`
	Age          int    `json:"age" validate:"required,gt=0"`
}

// ContactInput represents a contact-form submission
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=150"`
	Body    string `json:"body" validate:"required,max=5000"`
}

// SubscribeInput represents a newsletter signup
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateCampaign creates a fundraising campaign
func (s *OutreachService) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*models.Campaign, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	exists, err := s.campaignRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCampaignAlreadyExists
	}

	campaign := &models.Campaign{
		Name:        input.Name,
		Description: input.Description,
		Goal:        input.Goal,
		IsActive:    true,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	log.Printf("✅ Campaign created: %s (goal %.2f)", campaign.Name, campaign.Goal)

	return campaign, nil
}

// GetCampaign gets a campaign by ID
func (s *OutreachService) GetCampaign(ctx context.Context, id uint) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns lists campaigns, optionally active only
func (s *OutreachService) ListCampaigns(ctx context.Context, activeOnly bool) ([]*models.Campaign, error) {
	return s.campaignRepo.List(ctx, activeOnly)
}

// Donate records a donation against an active campaign and bumps the raised
// total atomically
func (s *OutreachService) Donate(ctx context.Context, campaignID uint, input *DonateInput) (*models.Donation, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	campaign, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsActive {
		return nil, ErrCampaignInactive
	}

	donation := &models.Donation{
		CampaignID:    campaignID,
		Reference:     newDonationReference(),
		DonorName:     input.DonorName,
		DonorEmail:    input.DonorEmail,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Message:       input.Message,
	}

	if err := s.campaignRepo.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	log.Printf("✅ Donation %s: %.2f to campaign %d", donation.Reference, donation.Amount, campaignID)

	return donation, nil
}

// ListDonations lists donations for a campaign with pagination
func (s *OutreachService) ListDonations(ctx context.Context, campaignID uint, offset, limit int) ([]*models.Donation, int64, error) {
	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, 0, err
	}
	return s.campaignRepo.ListDonations(ctx, campaignID, offset, limit)
}

// Enroll submits a madrasa admission form
func (s *OutreachService) Enroll(ctx context.Context, input *EnrollInput) (*models.Enrollment, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentName:  input.StudentName,
		GuardianName: input.GuardianName,
		Phone:        input.Phone,
		Email:        input.Email,
		Program:      input.Program,
		Age:          input.Age,
		Status:       models.EnrollmentStatusPending,
	}

	if err := s.outreachRepo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListEnrollments lists enrollment submissions with pagination
func (s *OutreachService) ListEnrollments(ctx context.Context, offset, limit int) ([]*models.Enrollment, int64, error) {
	return s.outreachRepo.ListEnrollments(ctx, offset, limit)
}

// DecideEnrollment accepts or declines a pending enrollment
func (s *OutreachService) DecideEnrollment(ctx context.Context, id uint, status string) (*models.Enrollment, error) {
	if status != models.EnrollmentStatusAccepted && status != models.EnrollmentStatusDeclined {
		return nil, fmt.Errorf("%w: status must be accepted or declined", domain.ErrInvalidInput)
	}

	enrollment, err := s.outreachRepo.GetEnrollmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	enrollment.Status = status
	if err := s.outreachRepo.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Contact stores a contact-form message
func (s *OutreachService) Contact(ctx context.Context, input *ContactInput) (*models.Message, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	message := &models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}

	if err := s.outreachRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages lists contact messages with pagination
func (s *OutreachService) ListMessages(ctx context.Context, offset, limit int) ([]*models.Message, int64, error) {
	return s.outreachRepo.ListMessages(ctx, offset, limit)
}

// MarkMessageRead marks a contact message as read
func (s *OutreachService) MarkMessageRead(ctx context.Context, id uint) error {
	return s.outreachRepo.MarkMessageRead(ctx, id)
}

// Subscribe adds a newsletter subscriber. Duplicate signups are rejected.
func (s *OutreachService) Subscribe(ctx context.Context, input *SubscribeInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.outreachRepo.ExistsSubscriber(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySubscribed
	}

	return s.outreachRepo.CreateSubscriber(ctx, &models.Subscriber{Email: email})
}

// newDonationReference builds a short unique receipt reference
func newDonationReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("DN-%s", id[:12])
}
