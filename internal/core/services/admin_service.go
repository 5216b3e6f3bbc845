package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/repositories"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
)

// Admin errors
var (
	ErrCannotManageAdmin = errors.New("insufficient role to manage this admin")
	ErrSelfAction        = errors.New("cannot perform this action on own account")
)

// AdminService handles admin hierarchy management
type AdminService struct {
	userRepo repositories.UserRepository
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repositories.UserRepository) *AdminService {
	return &AdminService{userRepo: userRepo}
}

// ListAdmins lists admins the actor is allowed to see: those at or below the
// actor's own rank.
func (s *AdminService) ListAdmins(ctx context.Context, actorRole string, offset, limit int) ([]*models.UserResponse, int64, error) {
	actor := domain.Role(actorRole)
	if !actor.Valid() {
		return nil, 0, domain.ErrInvalidRole
	}

	visible := make([]string, 0, len(domain.Roles()))
	for _, r := range domain.Roles() {
		if actor.CanManage(r) {
			visible = append(visible, string(r))
		}
	}

	users, total, err := s.userRepo.ListByMaxRank(ctx, visible, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, total, nil
}

// GetAdmin gets an admin by ID, subject to the actor's rank.
func (s *AdminService) GetAdmin(ctx context.Context, actorRole string, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !domain.Role(actorRole).CanManage(user.HierarchyRole()) {
		return nil, ErrCannotManageAdmin
	}

	return user.ToResponse(), nil
}

// ApproveAdmin activates a pending admin account. The actor must outrank or
// equal the target's role.
func (s *AdminService) ApproveAdmin(ctx context.Context, actorID uint, actorRole string, targetID uint) (*models.UserResponse, error) {
	return s.setStatus(ctx, actorID, actorRole, targetID, models.UserStatusActive)
}

// SuspendAdmin suspends an admin account. The actor must outrank or equal the
// target's role and cannot suspend themselves.
func (s *AdminService) SuspendAdmin(ctx context.Context, actorID uint, actorRole string, targetID uint) (*models.UserResponse, error) {
	if actorID == targetID {
		return nil, ErrSelfAction
	}
	return s.setStatus(ctx, actorID, actorRole, targetID, models.UserStatusSuspended)
}

func (s *AdminService) setStatus(ctx context.Context, actorID uint, actorRole string, targetID uint, status string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !domain.Role(actorRole).CanManage(user.HierarchyRole()) {
		return nil, ErrCannotManageAdmin
	}

	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Admin %d set to %s by admin %d", user.ID, status, actorID)

	return user.ToResponse(), nil
}
