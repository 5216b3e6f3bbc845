package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/pagination"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/response"
)

// GovernanceHandler handles discussion, proposal and vote endpoints
type GovernanceHandler struct {
	governanceService *services.GovernanceService
}

// NewGovernanceHandler creates a new governance handler
func NewGovernanceHandler(governanceService *services.GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governanceService: governanceService}
}

// CreateDiscussion opens a discussion
// @Summary Create discussion
// @Description Open a community discussion thread in a society
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param body body services.CreateDiscussionInput true "Discussion data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/discussions [post]
func (h *GovernanceHandler) CreateDiscussion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	var input services.CreateDiscussionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	discussion, err := h.governanceService.CreateDiscussion(c.Context(), societyID, userID, &input)
	if err != nil {
		if errors.Is(err, services.ErrSocietyNotFound) {
			return response.NotFound(c, "Society not found")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Discussion created successfully", fiber.Map{"discussion": discussion})
}

// ListDiscussions lists discussions in a society
// @Summary List discussions
// @Description List discussion threads for a society with pagination
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /societies/{id}/discussions [get]
func (h *GovernanceHandler) ListDiscussions(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	params := pagination.GetParams(c)

	discussions, total, err := h.governanceService.ListDiscussions(c.Context(), societyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list discussions")
	}

	return response.Success(c, "Discussions retrieved successfully", pagination.NewResponse(discussions, params, total))
}

// CloseDiscussion closes or resolves a discussion
// @Summary Close discussion
// @Description Set a discussion's status to closed or resolved
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Discussion ID"
// @Param status query string true "New status (closed or resolved)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /discussions/{id}/close [patch]
func (h *GovernanceHandler) CloseDiscussion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid discussion ID")
	}

	status := c.Query("status", "closed")

	discussion, err := h.governanceService.CloseDiscussion(c.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDiscussionNotFound):
			return response.NotFound(c, "Discussion not found")
		case errors.Is(err, services.ErrInvalidTransition):
			return response.BadRequest(c, "Status must be closed or resolved")
		default:
			return response.InternalServerError(c, "Failed to close discussion")
		}
	}

	return response.Success(c, "Discussion updated successfully", fiber.Map{"discussion": discussion})
}

// CreateProposal creates a draft proposal
// @Summary Create proposal
// @Description Create a draft proposal, optionally linked to a discussion
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param body body services.CreateProposalInput true "Proposal data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /societies/{id}/proposals [post]
func (h *GovernanceHandler) CreateProposal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	var input services.CreateProposalInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	proposal, err := h.governanceService.CreateProposal(c.Context(), societyID, userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSocietyNotFound):
			return response.NotFound(c, "Society not found")
		case errors.Is(err, services.ErrDiscussionNotFound):
			return response.NotFound(c, "Discussion not found")
		case errors.Is(err, services.ErrDiscussionClosed):
			return response.Conflict(c, "Discussion is no longer open")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Created(c, "Proposal created successfully", fiber.Map{"proposal": proposal})
}

// ListProposals lists proposals in a society
// @Summary List proposals
// @Description List proposals for a society with pagination
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Society ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /societies/{id}/proposals [get]
func (h *GovernanceHandler) ListProposals(c *fiber.Ctx) error {
	societyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid society ID")
	}

	params := pagination.GetParams(c)

	proposals, total, err := h.governanceService.ListProposals(c.Context(), societyID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list proposals")
	}

	return response.Success(c, "Proposals retrieved successfully", pagination.NewResponse(proposals, params, total))
}

// GetProposal retrieves a proposal
// @Summary Get proposal
// @Description Get a proposal by ID
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /proposals/{id} [get]
func (h *GovernanceHandler) GetProposal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid proposal ID")
	}

	proposal, err := h.governanceService.GetProposal(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProposalNotFound) {
			return response.NotFound(c, "Proposal not found")
		}
		return response.InternalServerError(c, "Failed to get proposal")
	}

	return response.Success(c, "Proposal retrieved successfully", fiber.Map{"proposal": proposal})
}

// TransitionProposal moves a proposal along its lifecycle
// @Summary Transition proposal
// @Description Move a proposal forward: draft to voting, voting to approved/rejected, approved to implemented
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param body body services.TransitionProposalInput true "Target status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /proposals/{id}/status [patch]
func (h *GovernanceHandler) TransitionProposal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid proposal ID")
	}

	var input services.TransitionProposalInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	proposal, err := h.governanceService.TransitionProposal(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProposalNotFound):
			return response.NotFound(c, "Proposal not found")
		case errors.Is(err, services.ErrInvalidTransition):
			return response.Conflict(c, "Proposal cannot move to that status")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Success(c, "Proposal updated successfully", fiber.Map{"proposal": proposal})
}

// CastVote records or replaces a vote
// @Summary Cast vote
// @Description Record the caller's vote on a proposal. Re-voting replaces the earlier vote.
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Param body body services.CastVoteInput true "Vote"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /proposals/{id}/votes [post]
func (h *GovernanceHandler) CastVote(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid proposal ID")
	}

	var input services.CastVoteInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	vote, err := h.governanceService.CastVote(c.Context(), id, userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProposalNotFound):
			return response.NotFound(c, "Proposal not found")
		case errors.Is(err, services.ErrVotingClosed):
			return response.Conflict(c, "Proposal is not open for voting")
		default:
			return response.BadRequest(c, err.Error())
		}
	}

	return response.Success(c, "Vote recorded successfully", fiber.Map{"vote": vote})
}

// GetTally returns the vote tally for a proposal
// @Summary Get vote tally
// @Description Get the per-type vote counts for a proposal
// @Tags Governance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /proposals/{id}/votes [get]
func (h *GovernanceHandler) GetTally(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid proposal ID")
	}

	tally, err := h.governanceService.GetTally(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProposalNotFound) {
			return response.NotFound(c, "Proposal not found")
		}
		return response.InternalServerError(c, "Failed to tally votes")
	}

	return response.Success(c, "Tally retrieved successfully", fiber.Map{"tally": tally})
}
