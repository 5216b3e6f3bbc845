package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/pagination"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// SocietyHandler handles society, block and member endpoints
type SocietyHandler struct {
	societyService *services.SocietyService
}

// NewSocietyHandler creates a new society handler
func NewSocietyHandler(societyService *services.SocietyService) *SocietyHandler {
	return &SocietyHandler{societyService: societyService}
}

// Create creates a society
// @Summary Create society
// @Description Create a new residential society
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateSocietyInput true "Society data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /societies [post]
func (h *SocietyHandler) Create(c *fiber.Ctx) error {
	var input services.CreateSocietyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	society, err := h.societyService.CreateSociety(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrSocietyAlreadyExists) {
			return response.Conflict(c, "Society name already exists")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Society created successfully", fiber.Map{"society": society})
}

// List lists all societies
// @Summary List societies
// @Description List all societies
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /societies [get]
func (h *SocietyHandler) List(c *fiber.Ctx) error {
	societies, err := h.societyService.ListSocieties(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list societies")
	}

	return response.Success(c, "Societies retrieved successfully", fiber.Map{"societies": societies})
}

// Get retrieves a society with its blocks
// @Summary Get society
// @Description Get a society by ID
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id} [get]
func (h *SocietyHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	society, err := h.societyService.GetSociety(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.InternalServerError(c, "Failed to get society")
	}

	return response.Success(c, "Society retrieved successfully", fiber.Map{"society": society})
}

// CreateBlock adds a block to a society
// @Summary Create block
// @Description Add a block to a society
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param body body services.CreateBlockInput true "Block data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/blocks [post]
func (h *SocietyHandler) CreateBlock(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	var input services.CreateBlockInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	block, err := h.societyService.CreateBlock(c.Context(), societyID, &input)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Block created successfully", fiber.Map{"block": block})
}

// ListBlocks lists the blocks of a society
// @Summary List blocks
// @Description List the blocks of a society
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/blocks [get]
func (h *SocietyHandler) ListBlocks(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	blocks, err := h.societyService.ListBlocks(c.Context(), societyID)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.InternalServerError(c, "Failed to list blocks")
	}

	return response.Success(c, "Blocks retrieved successfully", fiber.Map{"blocks": blocks})
}

// AddMember registers a member in a society flat
// @Summary Add member
// @Description Register a user as a member of a society flat
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param body body services.AddMemberInput true "Member data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/members [post]
func (h *SocietyHandler) AddMember(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	var input services.AddMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.societyService.AddMember(c.Context(), societyID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSocietyNotFound):
			return response.NotFound(c, "Society not found")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrBlockNotFound):
			return response.NotFound(c, "Block not found")
		case errors.Is(err, services.ErrBlockNotInSociety):
			return response.BadRequest(c, "Block does not belong to this society")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "Member added successfully", fiber.Map{"member": member})
}

// ListMembers lists the members of a society
// @Summary List members
// @Description List the members of a society with pagination
// @Tags Societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/members [get]
func (h *SocietyHandler) ListMembers(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	params := pagination.GetParams(c)

	members, total, err := h.societyService.ListMembers(c.Context(), societyID, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully", pagination.NewResponse(members, params, total))
}
