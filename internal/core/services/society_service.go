package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/repositories"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/validate"
)

// Society errors
var (
	ErrSocietyNotFound      = errors.New("society not found")
	ErrSocietyAlreadyExists = errors.New("society already exists")
	ErrBlockNotFound        = errors.New("block not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrBlockNotInSociety    = errors.New("block does not belong to this society")
)

// SocietyService handles society, block and member management
type SocietyService struct {
	societyRepo repositories.SocietyRepository
	userRepo    repositories.UserRepository
}

// NewSocietyService creates a new society service
func NewSocietyService(societyRepo repositories.SocietyRepository, userRepo repositories.UserRepository) *SocietyService {
	return &SocietyService{societyRepo: societyRepo, userRepo: userRepo}
}

// CreateSocietyInput represents society creation input
type CreateSocietyInput struct {
	Name                string  `json:"name" validate:"required,min=2,max=100"`
	Description         string  `json:"description" validate:"max=2000"`
	MonthlyContribution float64 `json:"monthly_contribution" validate:"required,gt=0"`
	TotalBlocks         int     `json:"total_blocks" validate:"required,gt=0"`
	TotalFlats          int     `json:"total_flats" validate:"required,gt=0"`
}

// CreateBlockInput represents block creation input
type CreateBlockInput struct {
	Name       string `json:"name" validate:"required,min=1,max=50"`
	FlatsCount int    `json:"flats_count" validate:"required,gt=0"`
}

// AddMemberInput represents member registration input
type AddMemberInput struct {
	UserID     uint   `json:"user_id" validate:"required"`
	BlockID    uint   `json:"block_id" validate:"required"`
	FlatNumber string `json:"flat_number" validate:"required,max=20"`
	IsOwner    *bool  `json:"is_owner"`
}

// CreateSociety creates a new society
func (s *SocietyService) CreateSociety(ctx context.Context, input *CreateSocietyInput) (*models.Society, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	exists, err := s.societyRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSocietyAlreadyExists
	}

	society := &models.Society{
		Name:                input.Name,
		Description:         input.Description,
		MonthlyContribution: input.MonthlyContribution,
		TotalBlocks:         input.TotalBlocks,
		TotalFlats:          input.TotalFlats,
	}

	if err := s.societyRepo.Create(ctx, society); err != nil {
		return nil, err
	}

	log.Printf("✅ Society created: %s", society.Name)

	return society, nil
}

// GetSociety gets a society by ID
func (s *SocietyService) GetSociety(ctx context.Context, id uint) (*models.Society, error) {
	society, err := s.societyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}
	return society, nil
}

// ListSocieties lists all societies
func (s *SocietyService) ListSocieties(ctx context.Context) ([]*models.Society, error) {
	return s.societyRepo.List(ctx)
}

// CreateBlock adds a block to a society
func (s *SocietyService) CreateBlock(ctx context.Context, societyID uint, input *CreateBlockInput) (*models.SocietyBlock, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.GetSociety(ctx, societyID); err != nil {
		return nil, err
	}

	block := &models.SocietyBlock{
		SocietyID:  societyID,
		Name:       input.Name,
		FlatsCount: input.FlatsCount,
	}

	if err := s.societyRepo.CreateBlock(ctx, block); err != nil {
		return nil, err
	}

	return block, nil
}

// ListBlocks lists the blocks of a society
func (s *SocietyService) ListBlocks(ctx context.Context, societyID uint) ([]*models.SocietyBlock, error) {
	if _, err := s.GetSociety(ctx, societyID); err != nil {
		return nil, err
	}
	return s.societyRepo.ListBlocks(ctx, societyID)
}

// AddMember registers a user as a member of a society flat
func (s *SocietyService) AddMember(ctx context.Context, societyID uint, input *AddMemberInput) (*models.SocietyMember, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.GetSociety(ctx, societyID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	block, err := s.societyRepo.GetBlockByID(ctx, input.BlockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}
	if block.SocietyID != societyID {
		return nil, ErrBlockNotInSociety
	}

	isOwner := true
	if input.IsOwner != nil {
		isOwner = *input.IsOwner
	}

	member := &models.SocietyMember{
		UserID:     input.UserID,
		SocietyID:  societyID,
		BlockID:    input.BlockID,
		FlatNumber: input.FlatNumber,
		IsOwner:    isOwner,
		Status:     models.MemberStatusActive,
	}

	if err := s.societyRepo.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Member added to society %d: user %d flat %s", societyID, input.UserID, input.FlatNumber)

	return member, nil
}

// GetMember gets a society member by ID
func (s *SocietyService) GetMember(ctx context.Context, id uint) (*models.SocietyMember, error) {
	member, err := s.societyRepo.GetMemberByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// ListMembers lists members of a society with pagination
func (s *SocietyService) ListMembers(ctx context.Context, societyID uint, offset, limit int) ([]*models.SocietyMember, int64, error) {
	if _, err := s.GetSociety(ctx, societyID); err != nil {
		return nil, 0, err
	}
	return s.societyRepo.ListMembers(ctx, societyID, offset, limit)
}
