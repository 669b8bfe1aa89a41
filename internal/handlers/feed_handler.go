package handlers

import (
	"log"

	"gamecritic/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FeedHandler handles HTTP requests for the following activity feed.
type FeedHandler struct {
	service *services.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(service *services.FeedService) *FeedHandler {
	return &FeedHandler{
		service: service,
	}
}

// RegisterRoutes registers the feed routes with the Fiber app.
func (h *FeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/feed", h.HandleFeed)
}

// HandleFeed returns followed users' recent reviews grouped per author.
// An empty array is the "no recent activity" state, not an error.
func (h *FeedHandler) HandleFeed(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	groups, err := h.service.LoadFollowingFeed(userID)
	if err != nil {
		log.Printf("Error loading feed for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load feed",
			"error":   err.Error(),
		})
	}
	return c.JSON(groups)
}
