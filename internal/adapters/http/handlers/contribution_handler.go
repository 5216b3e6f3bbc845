package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/config"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/pagination"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// allowed receipt file extensions
var receiptExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ContributionHandler handles contribution endpoints
type ContributionHandler struct {
	contributionService *services.ContributionService
	cfg                 *config.Config
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(contributionService *services.ContributionService, cfg *config.Config) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
		cfg:                 cfg,
	}
}

// Record records a member contribution
// @Summary Record contribution
// @Description Record a member payment. The contribution starts pending until verified.
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param body body services.RecordContributionInput true "Contribution data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/contributions [post]
func (h *ContributionHandler) Record(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	var input services.RecordContributionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.RecordContribution(c.Context(), societyID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrMemberNotInSociety):
			return response.BadRequest(c, "Member does not belong to this society")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "Contribution recorded successfully", fiber.Map{"contribution": contribution})
}

// List lists the contributions of a society
// @Summary List contributions
// @Description List contributions for a society, optionally filtered by month (YYYY-MM)
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /societies/{id}/contributions [get]
func (h *ContributionHandler) List(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	monthYear := c.Query("month")
	params := pagination.GetParams(c)

	contributions, total, err := h.contributionService.ListContributions(c.Context(), societyID, monthYear, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contributions")
	}

	return response.Success(c, "Contributions retrieved successfully", pagination.NewResponse(contributions, params, total))
}

// Get retrieves a contribution
// @Summary Get contribution
// @Description Get a contribution by ID
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [get]
func (h *ContributionHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	contribution, err := h.contributionService.GetContribution(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrContributionNotFound) {
			return response.NotFound(c, "Contribution not found")
		}
		return response.InternalServerError(c, "Failed to get contribution")
	}

	return response.Success(c, "Contribution retrieved successfully", fiber.Map{"contribution": contribution})
}

// Verify marks a contribution verified
// @Summary Verify contribution
// @Description Mark a contribution as verified. Re-verifying overwrites the earlier decision.
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id}/verify [patch]
func (h *ContributionHandler) Verify(c *fiber.Ctx) error {
	verifierID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	contribution, err := h.contributionService.VerifyContribution(c.Context(), id, verifierID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContributionNotFound):
			return response.NotFound(c, "Contribution not found")
		default:
			return response.InternalServerError(c, "Failed to verify contribution")
		}
	}

	return response.Success(c, "Contribution verified successfully", fiber.Map{"contribution": contribution})
}

// Reject marks a contribution rejected
// @Summary Reject contribution
// @Description Mark a contribution as rejected with a reason. Re-rejecting overwrites the earlier decision.
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Param body body services.RejectContributionInput true "Rejection reason"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id}/reject [patch]
func (h *ContributionHandler) Reject(c *fiber.Ctx) error {
	verifierID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	var input services.RejectContributionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contribution, err := h.contributionService.RejectContribution(c.Context(), id, verifierID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRejectionReasonEmpty):
			return response.BadRequest(c, "Rejection reason is required")
		case errors.Is(err, services.ErrContributionNotFound):
			return response.NotFound(c, "Contribution not found")
		default:
			return response.InternalServerError(c, "Failed to reject contribution")
		}
	}

	return response.Success(c, "Contribution rejected", fiber.Map{"contribution": contribution})
}

// UploadReceipt attaches a receipt file to a contribution
// @Summary Upload receipt
// @Description Upload a receipt image or PDF for a contribution
// @Tags Contributions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Param receipt formData file true "Receipt file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id}/receipt [post]
func (h *ContributionHandler) UploadReceipt(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	// The contribution must exist before the file hits the disk.
	if _, err := h.contributionService.GetContribution(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrContributionNotFound) {
			return response.NotFound(c, "Contribution not found")
		}
		return response.InternalServerError(c, "Failed to get contribution")
	}

	file, err := c.FormFile("receipt")
	if err != nil {
		return response.BadRequest(c, "Receipt file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !receiptExtensions[ext] {
		return response.BadRequest(c, "Receipt must be a JPG, PNG or PDF file")
	}

	maxBytes := int64(h.cfg.Uploads.MaxSizeMB) * 1024 * 1024
	if file.Size > maxBytes {
		return response.BadRequest(c, fmt.Sprintf("Receipt must be under %dMB", h.cfg.Uploads.MaxSizeMB))
	}

	fileName := uuid.New().String() + ext
	destination := filepath.Join(h.cfg.Uploads.Dir, fileName)
	if err := c.SaveFile(file, destination); err != nil {
		return response.InternalServerError(c, "Failed to store receipt file")
	}

	contribution, err := h.contributionService.AttachReceipt(c.Context(), id, destination)
	if err != nil {
		if errors.Is(err, services.ErrContributionNotFound) {
			return response.NotFound(c, "Contribution not found")
		}
		return response.InternalServerError(c, "Failed to attach receipt")
	}

	return response.Success(c, "Receipt uploaded successfully", fiber.Map{"contribution": contribution})
}
