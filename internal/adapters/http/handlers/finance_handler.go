package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/pagination"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// FinanceHandler handles financial summary and expense endpoints
type FinanceHandler struct {
	financeService *services.FinanceService
	expenseService *services.ExpenseService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *services.FinanceService, expenseService *services.ExpenseService) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
		expenseService: expenseService,
	}
}

// CollectionStats returns the monthly collection report
// @Summary Collection report
// @Description Derive expected vs collected totals and per-flat standing for a month
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param month query string false "Month (YYYY-MM), defaults to current month"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/finance/collection [get]
func (h *FinanceHandler) CollectionStats(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	monthYear := c.Query("month")
	if monthYear == "" {
		monthYear = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", monthYear); err != nil {
		return response.BadRequest(c, "Month must be in YYYY-MM format")
	}

	report, err := h.financeService.GetCollectionReport(c.Context(), societyID, monthYear)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.InternalServerError(c, "Failed to compute collection stats")
	}

	return response.Success(c, "Collection report retrieved successfully", fiber.Map{"report": report})
}

// Summary returns the financial summary
// @Summary Financial summary
// @Description Aggregate collected funds, pending contributions and approved expenses
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	summary, err := h.financeService.GetFinancialSummary(c.Context(), societyID)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.InternalServerError(c, "Failed to build financial summary")
	}

	return response.Success(c, "Financial summary retrieved successfully", fiber.Map{"summary": summary})
}

// RecordExpense records an expense
// @Summary Record expense
// @Description Record a pending society expense, optionally linked to an approved proposal
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param body body services.RecordExpenseInput true "Expense data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/expenses [post]
func (h *FinanceHandler) RecordExpense(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	var input services.RecordExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	expense, err := h.expenseService.RecordExpense(c.Context(), societyID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSocietyNotFound):
			return response.NotFound(c, "Society not found")
		case errors.Is(err, services.ErrProposalNotFound):
			return response.NotFound(c, "Proposal not found")
		case errors.Is(err, services.ErrProposalNotApproved):
			return response.BadRequest(c, "Linked proposal is not approved")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "Expense recorded successfully", fiber.Map{"expense": expense})
}

// ListExpenses lists expenses for a society
// @Summary List expenses
// @Description List society expenses with pagination
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /societies/{id}/expenses [get]
func (h *FinanceHandler) ListExpenses(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	params := pagination.GetParams(c)

	expenses, total, err := h.expenseService.ListExpenses(c.Context(), societyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list expenses")
	}

	return response.Success(c, "Expenses retrieved successfully", pagination.NewResponse(expenses, params, total))
}

// ApproveExpense approves a pending expense
// @Summary Approve expense
// @Description Approve a pending society expense
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /expenses/{id}/approve [patch]
func (h *FinanceHandler) ApproveExpense(c *fiber.Ctx) error {
	return h.finalizeExpense(c, h.expenseService.ApproveExpense)
}

// RejectExpense rejects a pending expense
// @Summary Reject expense
// @Description Reject a pending society expense
// @Tags Finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /expenses/{id}/reject [patch]
func (h *FinanceHandler) RejectExpense(c *fiber.Ctx) error {
	return h.finalizeExpense(c, h.expenseService.RejectExpense)
}

func (h *FinanceHandler) finalizeExpense(
	c *fiber.Ctx,
	action func(ctx context.Context, id uint, approverID uint) (*models.SocietyExpense, error),
) error {
	approverID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid expense ID")
	}

	expense, err := action(c.Context(), id, approverID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExpenseNotFound):
			return response.NotFound(c, "Expense not found")
		case errors.Is(err, services.ErrExpenseFinalized):
			return response.Conflict(c, "Expense already approved or rejected")
		default:
			return response.InternalServerError(c, "Failed to update expense")
		}
	}

	return response.Success(c, "Expense updated successfully", fiber.Map{"expense": expense})
}
