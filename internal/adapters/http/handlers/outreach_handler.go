package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/pagination"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// OutreachHandler handles the public site endpoints
type OutreachHandler struct {
	outreachService *services.OutreachService
}

// NewOutreachHandler creates a new outreach handler
func NewOutreachHandler(outreachService *services.OutreachService) *OutreachHandler {
	return &OutreachHandler{outreachService: outreachService}
}

// CreateCampaign creates a fundraising campaign
// @Summary Create campaign
// @Description Create a fundraising campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateCampaignInput true "Campaign data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /campaigns [post]
func (h *OutreachHandler) CreateCampaign(c *fiber.Ctx) error {
	var input services.CreateCampaignInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	campaign, err := h.outreachService.CreateCampaign(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrCampaignAlreadyExists) {
			return response.Conflict(c, "Campaign name already exists")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Campaign created successfully", fiber.Map{"campaign": campaign})
}

// ListCampaigns lists campaigns
// @Summary List campaigns
// @Description List fundraising campaigns. Public endpoint.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param active query bool false "Only active campaigns"
// @Success 200 {object} response.Response
// @Router /campaigns [get]
func (h *OutreachHandler) ListCampaigns(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)

	campaigns, err := h.outreachService.ListCampaigns(c.Context(), activeOnly)
	if err != nil {
		return response.InternalServerError(c, "Failed to list campaigns")
	}

	return response.Success(c, "Campaigns retrieved successfully", fiber.Map{"campaigns": campaigns})
}

// GetCampaign retrieves a campaign
// @Summary Get campaign
// @Description Get a campaign with its raised total. Public endpoint.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /campaigns/{id} [get]
func (h *OutreachHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID")
	}

	campaign, err := h.outreachService.GetCampaign(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return response.NotFound(c, "Campaign not found")
		}
		return response.InternalServerError(c, "Failed to get campaign")
	}

	return response.Success(c, "Campaign retrieved successfully", fiber.Map{"campaign": campaign})
}

// Donate records a donation
// @Summary Donate
// @Description Record a donation against an active campaign. Public endpoint.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Param body body services.DonateInput true "Donation data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /campaigns/{id}/donations [post]
func (h *OutreachHandler) Donate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID")
	}

	var input services.DonateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	donation, err := h.outreachService.Donate(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			return response.NotFound(c, "Campaign not found")
		case errors.Is(err, services.ErrCampaignInactive):
			return response.Conflict(c, "Campaign is not active")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "Donation recorded successfully", fiber.Map{"donation": donation})
}

// ListDonations lists donations for a campaign
// @Summary List donations
// @Description List donations for a campaign with pagination
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /campaigns/{id}/donations [get]
func (h *OutreachHandler) ListDonations(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid campaign ID")
	}

	params := pagination.GetParams(c)

	donations, total, err := h.outreachService.ListDonations(c.Context(), id, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return response.NotFound(c, "Campaign not found")
		}
		return response.InternalServerError(c, "Failed to list donations")
	}

	return response.Success(c, "Donations retrieved successfully", pagination.NewResponse(donations, params, total))
}

// Enroll submits a madrasa admission form
// @Summary Submit enrollment
// @Description Submit a madrasa admission form. Public endpoint.
// @Tags Outreach
// @Accept json
// @Produce json
// @Param body body services.EnrollInput true "Enrollment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /enrollments [post]
func (h *OutreachHandler) Enroll(c *fiber.Ctx) error {
	var input services.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	enrollment, err := h.outreachService.Enroll(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Enrollment submitted successfully", fiber.Map{"enrollment": enrollment})
}

// ListEnrollments lists enrollment submissions
// @Summary List enrollments
// @Description List madrasa enrollment submissions with pagination
// @Tags Outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /enrollments [get]
func (h *OutreachHandler) ListEnrollments(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	enrollments, total, err := h.outreachService.ListEnrollments(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list enrollments")
	}

	return response.Success(c, "Enrollments retrieved successfully", pagination.NewResponse(enrollments, params, total))
}

// DecideEnrollment accepts or declines an enrollment
// @Summary Decide enrollment
// @Description Accept or decline a pending enrollment
// @Tags Outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param status query string true "Decision (accepted or declined)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /enrollments/{id}/decide [patch]
func (h *OutreachHandler) DecideEnrollment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid enrollment ID")
	}

	status := c.Query("status")

	enrollment, err := h.outreachService.DecideEnrollment(c.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEnrollmentNotFound):
			return response.NotFound(c, "Enrollment not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Status must be accepted or declined")
		default:
			return response.InternalServerError(c, "Failed to update enrollment")
		}
	}

	return response.Success(c, "Enrollment updated successfully", fiber.Map{"enrollment": enrollment})
}

// Contact stores a contact-form message
// @Summary Contact
// @Description Submit a contact-form message. Public endpoint.
// @Tags Outreach
// @Accept json
// @Produce json
// @Param body body services.ContactInput true "Message data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contact [post]
func (h *OutreachHandler) Contact(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	message, err := h.outreachService.Contact(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Message received successfully", fiber.Map{"message": message})
}

// ListMessages lists contact messages
// @Summary List messages
// @Description List contact-form messages with pagination
// @Tags Outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /messages [get]
func (h *OutreachHandler) ListMessages(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	messages, total, err := h.outreachService.ListMessages(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list messages")
	}

	return response.Success(c, "Messages retrieved successfully", pagination.NewResponse(messages, params, total))
}

// MarkMessageRead marks a contact message as read
// @Summary Mark message read
// @Description Mark a contact-form message as read
// @Tags Outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} response.Response
// @Router /messages/{id}/read [patch]
func (h *OutreachHandler) MarkMessageRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid message ID")
	}

	if err := h.outreachService.MarkMessageRead(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to mark message read")
	}

	return response.Success(c, "Message marked as read", nil)
}

// Subscribe adds a newsletter subscriber
// @Summary Subscribe
// @Description Subscribe an email to the newsletter. Public endpoint.
// @Tags Outreach
// @Accept json
// @Produce json
// @Param body body services.SubscribeInput true "Subscriber email"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /subscribe [post]
func (h *OutreachHandler) Subscribe(c *fiber.Ctx) error {
	var input services.SubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.outreachService.Subscribe(c.Context(), &input); err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			return response.Conflict(c, "Email already subscribed")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Subscribed successfully", nil)
}
