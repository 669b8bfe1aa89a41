package handlers

import (
	"log"

	"gamecritic/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VideogameHandler handles HTTP requests for the read-only catalog.
type VideogameHandler struct {
	service *services.VideogameService
}

// NewVideogameHandler creates a new VideogameHandler.
func NewVideogameHandler(service *services.VideogameService) *VideogameHandler {
	return &VideogameHandler{
		service: service,
	}
}

// RegisterRoutes registers the videogame routes with the Fiber app.
func (h *VideogameHandler) RegisterRoutes(router fiber.Router) {
	gameRoutes := router.Group("/videogames")
	gameRoutes.Get("/", h.HandleListByCategory)
	gameRoutes.Get("/:id", h.HandleGetByID)
}

// HandleListByCategory returns the games tagged with ?category=.
func (h *VideogameHandler) HandleListByCategory(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "category query parameter is required",
		})
	}
	games, err := h.service.ListByCategory(category)
	if err != nil {
		log.Printf("Error listing videogames for category %s: %v", category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve videogames",
			"error":   err.Error(),
		})
	}
	return c.JSON(games)
}

// HandleGetByID returns a single catalog entry.
func (h *VideogameHandler) HandleGetByID(c *fiber.Ctx) error {
	game, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting videogame %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve videogame",
			"error":   err.Error(),
		})
	}
	if game == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Videogame not found",
		})
	}
	return c.JSON(game)
}
