package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
)

// expenseRepository implements ExpenseRepository interface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create creates a new expense
func (r *expenseRepository) Create(ctx context.Context, expense *models.SocietyExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// GetByID gets an expense by ID
func (r *expenseRepository) GetByID(ctx context.Context, id uint) (*models.SocietyExpense, error) {
	var expense models.SocietyExpense
	err := r.db.WithContext(ctx).
		Preload("Proposal").
		Where("id = ?", id).
		First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Update updates an expense
func (r *expenseRepository) Update(ctx context.Context, expense *models.SocietyExpense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// ListBySociety lists expenses of a society with pagination
func (r *expenseRepository) ListBySociety(ctx context.Context, societyID uint, offset, limit int) ([]*models.SocietyExpense, int64, error) {
	var expenses []*models.SocietyExpense
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SocietyExpense{}).Where("society_id = ?", societyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("society_id = ?", societyID).
		Offset(offset).Limit(limit).
		Order("expense_date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}
