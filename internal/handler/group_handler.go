package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tribehub/internal/domain"
	"tribehub/internal/middleware"
	"tribehub/internal/service"
)

type GroupHandler struct {
	groupService      service.GroupService
	invitationService service.InvitationService
}

func NewGroupHandler(groupService service.GroupService, invitationService service.InvitationService) *GroupHandler {
	return &GroupHandler{
		groupService:      groupService,
		invitationService: invitationService,
	}
}

func (h *GroupHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateGroupInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	group, err := h.groupService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"group": group,
	})
}

func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groupService.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"groups": groups,
	})
}

func (h *GroupHandler) Get(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	group, err := h.groupService.Get(c.Context(), groupID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"group": group,
	})
}

func (h *GroupHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	var input domain.UpdateGroupInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	group, err := h.groupService.Update(c.Context(), groupID, userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"group": group,
	})
}

func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	if err := h.groupService.Delete(c.Context(), groupID, userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *GroupHandler) Join(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	group, err := h.groupService.Join(c.Context(), groupID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "You have joined " + group.Name + " group",
		"group":   group,
	})
}

func (h *GroupHandler) SendInvite(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	var input domain.SendInviteInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	invitation, err := h.invitationService.Send(c.Context(), groupID, userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"invitation": invitation,
	})
}

func (h *GroupHandler) ListInvitations(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	invitations, err := h.invitationService.ListMine(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"invitations": invitations,
	})
}

func (h *GroupHandler) ResolveInvite(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	var body struct {
		Status domain.InvitationStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	invitation, err := h.invitationService.Resolve(c.Context(), userID, domain.ResolveInviteInput{
		GroupID: groupID,
		Status:  body.Status,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"invitation": invitation,
	})
}
