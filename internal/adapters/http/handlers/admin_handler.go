package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/pagination"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// AdminHandler handles admin hierarchy endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List lists admins visible to the caller
// @Summary List admins
// @Description List admin accounts at or below the caller's rank
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	admins, total, err := h.adminService.ListAdmins(c.Context(), role, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return response.Forbidden(c, "Unknown admin role")
		}
		return response.InternalServerError(c, "Failed to list admins")
	}

	return response.Success(c, "Admins retrieved successfully", pagination.NewResponse(admins, params, total))
}

// Get retrieves one admin
// @Summary Get admin
// @Description Get an admin account at or below the caller's rank
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	admin, err := h.adminService.GetAdmin(c.Context(), role, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "Admin not found")
		case errors.Is(err, services.ErrCannotManageAdmin):
			return response.Forbidden(c, "Insufficient rank to view this admin")
		default:
			return response.InternalServerError(c, "Failed to get admin")
		}
	}

	return response.Success(c, "Admin retrieved successfully", fiber.Map{"admin": admin})
}

// Approve activates a pending admin account
// @Summary Approve admin
// @Description Activate a pending admin account of equal or lower rank
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{id}/approve [patch]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	return h.moderate(c, h.adminService.ApproveAdmin)
}

// Suspend suspends an admin account
// @Summary Suspend admin
// @Description Suspend an admin account of equal or lower rank
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{id}/suspend [patch]
func (h *AdminHandler) Suspend(c *fiber.Ctx) error {
	return h.moderate(c, h.adminService.SuspendAdmin)
}

func (h *AdminHandler) moderate(
	c *fiber.Ctx,
	action func(ctx context.Context, actorID uint, actorRole string, targetID uint) (*models.UserResponse, error),
) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	admin, err := action(c.Context(), actorID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "Admin not found")
		case errors.Is(err, services.ErrCannotManageAdmin):
			return response.Forbidden(c, "Insufficient rank to manage this admin")
		case errors.Is(err, services.ErrSelfAction):
			return response.BadRequest(c, "Cannot perform this action on your own account")
		default:
			return response.InternalServerError(c, "Failed to update admin")
		}
	}

	return response.Success(c, "Admin updated successfully", fiber.Map{"admin": admin})
}

// parseIDParam parses a positive integer route parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
