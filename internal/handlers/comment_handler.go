package handlers

import (
	"errors"
	"log"

	"gamecritic/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CommentHandler handles HTTP requests for review comments.
type CommentHandler struct {
	service *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

// RegisterRoutes registers the comment routes with the Fiber app.
func (h *CommentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/videogames/:id/comments", h.HandleListForVideogame)
	router.Get("/videogames/:id/comments/mine", h.HandleFindMine)
	router.Post("/videogames/:id/comments", h.HandleAdd)
	router.Get("/users/:id/comments", h.HandleListForUser)
	router.Put("/comments/:id", h.HandleUpdate)
	router.Delete("/comments/:id", h.HandleDelete)
}

// HandleListForVideogame returns a game's comments, oldest first, enriched.
func (h *CommentHandler) HandleListForVideogame(c *fiber.Ctx) error {
	comments, err := h.service.ListForVideogame(c.Params("id"))
	if err != nil {
		log.Printf("Error listing comments for videogame %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comments",
			"error":   err.Error(),
		})
	}
	return c.JSON(comments)
}

// HandleListForUser returns a user's comments, newest first, enriched.
func (h *CommentHandler) HandleListForUser(c *fiber.Ctx) error {
	comments, err := h.service.ListForUser(c.Params("id"))
	if err != nil {
		log.Printf("Error listing comments for user %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comments",
			"error":   err.Error(),
		})
	}
	return c.JSON(comments)
}

// HandleFindMine returns the signed-in user's comment on a game, or 404 when
// they have not reviewed it yet. The client uses this to pick the add or edit
// flow.
func (h *CommentHandler) HandleFindMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	comment, err := h.service.FindUserCommentForVideogame(userID, c.Params("id"))
	if err != nil {
		log.Printf("Error finding comment for user %s on videogame %s: %v", userID, c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comment",
			"error":   err.Error(),
		})
	}
	if comment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No comment for this videogame yet",
		})
	}
	return c.JSON(comment)
}

// CommentRequest represents the request body for adding or editing a comment.
type CommentRequest struct {
	Rating  float64 `json:"rating"`
	Content string  `json:"content"`
}

// HandleAdd creates the signed-in user's review of a game, or updates the
// existing one in place.
func (h *CommentHandler) HandleAdd(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	userID, _ := c.Locals("user_id").(string)
	comment, err := h.service.Add(userID, c.Params("id"), req.Rating, req.Content)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error adding comment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save comment",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleUpdate edits the rating and content of an existing comment.
func (h *CommentHandler) HandleUpdate(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.Update(c.Params("id"), req.Rating, req.Content); err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error updating comment %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update comment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Comment updated successfully",
	})
}

// HandleDelete removes a comment.
func (h *CommentHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Error deleting comment %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete comment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrRatingOutOfRange) || errors.Is(err, services.ErrContentTooShort)
}
