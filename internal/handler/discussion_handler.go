package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tribehub/internal/domain"
	"tribehub/internal/middleware"
	"tribehub/internal/service"
)

type DiscussionHandler struct {
	discussionService service.DiscussionService
	reactionService   service.ReactionService
}

func NewDiscussionHandler(discussionService service.DiscussionService, reactionService service.ReactionService) *DiscussionHandler {
	return &DiscussionHandler{
		discussionService: discussionService,
		reactionService:   reactionService,
	}
}

func (h *DiscussionHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	var input domain.CreateDiscussionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	input.GroupID = groupID

	discussion, err := h.discussionService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"discussion": discussion,
	})
}

func (h *DiscussionHandler) ListByGroup(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}

	discussions, err := h.discussionService.ListByGroup(c.Context(), groupID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"discussions": discussions,
	})
}

func (h *DiscussionHandler) Get(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	discussionID, err := uuid.Parse(c.Params("discussionId"))
	if err != nil {
		return middleware.BadRequest("Invalid discussion ID")
	}

	detail, err := h.discussionService.Get(c.Context(), discussionID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"discussion": detail,
	})
}

func (h *DiscussionHandler) AddComment(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	discussionID, err := uuid.Parse(c.Params("discussionId"))
	if err != nil {
		return middleware.BadRequest("Invalid discussion ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	input.DiscussionID = discussionID

	comment, err := h.discussionService.AddComment(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": comment,
	})
}

func (h *DiscussionHandler) AddReply(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.CreateReplyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	input.CommentID = commentID

	reply, err := h.discussionService.AddReply(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reply": reply,
	})
}

func (h *DiscussionHandler) React(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var body struct {
		TargetType domain.ReactionTarget `json:"target_type"`
		TargetID   uuid.UUID             `json:"target_id"`
		Kind       domain.ReactionKind   `json:"kind"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.reactionService.React(c.Context(), userID, body.TargetType, body.TargetID, body.Kind)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DiscussionHandler) GetReactionTotals(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	discussionID, err := uuid.Parse(c.Params("discussionId"))
	if err != nil {
		return middleware.BadRequest("Invalid discussion ID")
	}

	counts, err := h.reactionService.Totals(c.Context(), userID, discussionID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(counts)
}
