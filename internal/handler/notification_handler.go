package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tribehub/internal/middleware"
	"tribehub/internal/service"
)

type NotificationHandler struct {
	notifService service.NotificationService
}

func NewNotificationHandler(notifService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	params := getPaginationParams(c)

	result, err := h.notifService.ListForUser(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) ListForGroup(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	notifications, err := h.notifService.ListForGroup(c.Context(), userID, groupID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifications,
	})
}

func (h *NotificationHandler) ListInvites(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	invites, err := h.notifService.ListInvites(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"invites": invites,
	})
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	count, err := h.notifService.UnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) MarkDiscussionRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	discussionID, err := uuid.Parse(c.Params("discussionId"))
	if err != nil {
		return middleware.BadRequest("Invalid discussion ID")
	}

	notifications, discussion, err := h.notifService.MarkDiscussionRead(c.Context(), userID, groupID, discussionID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifications,
		"discussion":    discussion,
	})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.notifService.MarkAllRead(c.Context(), userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.Delete(c.Context(), userID, notifID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
