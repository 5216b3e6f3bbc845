package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// outreachRepository implements OutreachRepository interface
type outreachRepository struct {
	db *gorm.DB
}

// NewOutreachRepository creates a new outreach repository
func NewOutreachRepository(db *gorm.DB) OutreachRepository {
	return &outreachRepository{db: db}
}

// CreateEnrollment creates a new enrollment
func (r *outreachRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// GetEnrollmentByID gets an enrollment by ID
func (r *outreachRepository) GetEnrollmentByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// UpdateEnrollment updates an enrollment
func (r *outreachRepository) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

// ListEnrollments lists enrollments with pagination
func (r *outreachRepository) ListEnrollments(ctx context.Context, offset, limit int) ([]*models.Enrollment, int64, error) {
	var enrollments []*models.Enrollment
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Enrollment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

// CreateMessage creates a new contact message
func (r *outreachRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListMessages lists contact messages with pagination
func (r *outreachRepository) ListMessages(ctx context.Context, offset, limit int) ([]*models.Message, int64, error) {
	var messages []*models.Message
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Message{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// MarkMessageRead marks a message as read
func (r *outreachRepository) MarkMessageRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

// CreateSubscriber creates a new subscriber
func (r *outreachRepository) CreateSubscriber(ctx context.Context, subscriber *models.Subscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}

// ExistsSubscriber checks if an email is already subscribed
func (r *outreachRepository) ExistsSubscriber(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscriber{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
