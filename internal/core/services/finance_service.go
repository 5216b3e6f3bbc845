package services

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/repositories"
)

// CollectionStats summarizes one month of contribution collection for a
// society. All figures are derived at read time, never stored.
type CollectionStats struct {
	MonthYear      string  `json:"month_year"`
	TotalFlats     int     `json:"total_flats"`
	PaidFlats      int     `json:"paid_flats"`
	ExpectedTotal  float64 `json:"expected_total"`
	CollectedTotal float64 `json:"collected_total"`
	CollectionRate float64 `json:"collection_rate"`
	Outstanding    float64 `json:"outstanding"`
}

// MemberCollection is one flat's standing for a month. Status is paid when
// the member's verified payments cover the society's monthly rate.
type MemberCollection struct {
	MemberID   uint    `json:"member_id"`
	FlatNumber string  `json:"flat_number"`
	BlockID    uint    `json:"block_id"`
	Expected   float64 `json:"expected"`
	Paid       float64 `json:"paid"`
	Pending    float64 `json:"pending"`
	Status     string  `json:"status"`
}

// CollectionReport pairs the month's aggregate stats with the per-flat
// breakdown.
type CollectionReport struct {
	Stats   *CollectionStats    `json:"stats"`
	Members []*MemberCollection `json:"members"`
}

// FinancialSummary aggregates a society's money flows.
type FinancialSummary struct {
	SocietyID            uint               `json:"society_id"`
	TotalCollected       float64            `json:"total_collected"`
	PendingContributions int64              `json:"pending_contributions"`
	TotalExpenses        float64            `json:"total_expenses"`
	ExpensesByCategory   map[string]float64 `json:"expenses_by_category"`
	ContributionsByMonth map[string]float64 `json:"contributions_by_month"`
	Balance              float64            `json:"balance"`
	CurrentMonth         *CollectionStats   `json:"current_month"`
	GeneratedAt          time.Time          `json:"generated_at"`
}

// ComputeCollectionStats derives one month's stats from the society's
// expected rate and the month's verified contributions. Only verified rows
// count toward collection; a flat is paid when any verified row exists for it.
func ComputeCollectionStats(monthYear string, monthlyContribution float64, totalFlats int, contributions []*models.SocietyContribution) *CollectionStats {
	stats := &CollectionStats{
		MonthYear:     monthYear,
		TotalFlats:    totalFlats,
		ExpectedTotal: monthlyContribution * float64(totalFlats),
	}

	paidMembers := make(map[uint]struct{})
	for _, c := range contributions {
		if c.Status != models.ContributionStatusVerified {
			continue
		}
		stats.CollectedTotal += c.Amount
		paidMembers[c.MemberID] = struct{}{}
	}
	stats.PaidFlats = len(paidMembers)

	if stats.ExpectedTotal > 0 {
		rate := stats.CollectedTotal / stats.ExpectedTotal * 100
		stats.CollectionRate = math.Round(rate*10) / 10
	}

	stats.Outstanding = stats.ExpectedTotal - stats.CollectedTotal
	if stats.Outstanding < 0 {
		stats.Outstanding = 0
	}

	return stats
}

// Per-flat standing labels used by the collection report.
const (
	ContributionStatusLabelPaid    = "paid"
	ContributionStatusLabelPending = "pending"
)

// ComputeMemberCollection derives each flat's standing for a month from the
// member roster and the month's contributions. A flat whose verified payments
// reach the monthly rate is paid; anything short stays pending.
func ComputeMemberCollection(monthlyContribution float64, members []*models.SocietyMember, contributions []*models.SocietyContribution) []*MemberCollection {
	paidByMember := make(map[uint]float64)
	for _, c := range contributions {
		if c.Status != models.ContributionStatusVerified {
			continue
		}
		paidByMember[c.MemberID] += c.Amount
	}

	result := make([]*MemberCollection, 0, len(members))
	for _, m := range members {
		paid := paidByMember[m.ID]
		mc := &MemberCollection{
			MemberID:   m.ID,
			FlatNumber: m.FlatNumber,
			BlockID:    m.BlockID,
			Expected:   monthlyContribution,
			Paid:       paid,
			Pending:    monthlyContribution - paid,
			Status:     ContributionStatusLabelPending,
		}
		if mc.Pending < 0 {
			mc.Pending = 0
		}
		if paid >= monthlyContribution {
			mc.Status = ContributionStatusLabelPaid
		}
		result = append(result, mc)
	}

	return result
}

// FinanceService aggregates contribution and expense data for dashboards
type FinanceService struct {
	db               *gorm.DB
	societyRepo      repositories.SocietyRepository
	contributionRepo repositories.ContributionRepository
}

// NewFinanceService creates a new finance service
func NewFinanceService(
	db *gorm.DB,
	societyRepo repositories.SocietyRepository,
	contributionRepo repositories.ContributionRepository,
) *FinanceService {
	return &FinanceService{
		db:               db,
		societyRepo:      societyRepo,
		contributionRepo: contributionRepo,
	}
}

// GetCollectionReport derives the collection stats and per-flat breakdown
// for a society and month
func (s *FinanceService) GetCollectionReport(ctx context.Context, societyID uint, monthYear string) (*CollectionReport, error) {
	society, err := s.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}

	contributions, err := s.contributionRepo.ListByMonth(ctx, societyID, monthYear)
	if err != nil {
		return nil, err
	}

	members, err := s.societyRepo.ListAllMembers(ctx, societyID)
	if err != nil {
		return nil, err
	}

	return &CollectionReport{
		Stats:   ComputeCollectionStats(monthYear, society.MonthlyContribution, society.TotalFlats, contributions),
		Members: ComputeMemberCollection(society.MonthlyContribution, members, contributions),
	}, nil
}

// GetFinancialSummary aggregates all-time collected funds and approved
// expenses for a society
func (s *FinanceService) GetFinancialSummary(ctx context.Context, societyID uint) (*FinancialSummary, error) {
	society, err := s.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}

	summary := &FinancialSummary{
		SocietyID:            societyID,
		ExpensesByCategory:   make(map[string]float64),
		ContributionsByMonth: make(map[string]float64),
		GeneratedAt:          time.Now(),
	}

	err = s.db.WithContext(ctx).
		Model(&models.SocietyContribution{}).
		Where("society_id = ? AND status = ?", societyID, models.ContributionStatusVerified).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.TotalCollected).Error
	if err != nil {
		return nil, err
	}

	var monthRows []struct {
		MonthYear string
		Total     float64
	}
	err = s.db.WithContext(ctx).
		Model(&models.SocietyContribution{}).
		Where("society_id = ? AND status = ?", societyID, models.ContributionStatusVerified).
		Select("month_year, COALESCE(SUM(amount), 0) AS total").
		Group("month_year").
		Scan(&monthRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range monthRows {
		summary.ContributionsByMonth[row.MonthYear] = row.Total
	}

	err = s.db.WithContext(ctx).
		Model(&models.SocietyContribution{}).
		Where("society_id = ? AND status = ?", societyID, models.ContributionStatusPending).
		Count(&summary.PendingContributions).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Category string
		Total    float64
	}
	err = s.db.WithContext(ctx).
		Model(&models.SocietyExpense{}).
		Where("society_id = ? AND status = ?", societyID, models.ExpenseStatusApproved).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		summary.ExpensesByCategory[row.Category] = row.Total
		summary.TotalExpenses += row.Total
	}

	summary.Balance = summary.TotalCollected - summary.TotalExpenses

	currentMonth := time.Now().Format("2006-01")
	contributions, err := s.contributionRepo.ListByMonth(ctx, societyID, currentMonth)
	if err != nil {
		return nil, err
	}
	summary.CurrentMonth = ComputeCollectionStats(currentMonth, society.MonthlyContribution, society.TotalFlats, contributions)

	return summary, nil
}
