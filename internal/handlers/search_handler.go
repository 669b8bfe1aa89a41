package handlers

import (
	"log"
	"strconv"

	"gamecritic/internal/models"
	"gamecritic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SearchHandler handles HTTP requests for search and recent-search memory.
// The HTTP surface is the explicit "search now" path; the debounced pipeline
// lives client-side of this API in the Searcher state machine.
type SearchHandler struct {
	searcher *services.Searcher
	validate *validator.Validate
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searcher *services.Searcher) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the search routes with the Fiber app.
func (h *SearchHandler) RegisterRoutes(router fiber.Router) {
	searchRoutes := router.Group("/search")
	searchRoutes.Get("/", h.HandleSearch)
	searchRoutes.Get("/recent", h.HandleListRecent)
	searchRoutes.Post("/recent", h.HandleRecordSelection)
	searchRoutes.Delete("/recent/:id", h.HandleDeleteRecent)
	searchRoutes.Delete("/recent", h.HandleClearRecent)
}

// HandleSearch runs both collection searches for ?q= and returns the two
// result lists together, so tab switching on the client needs no new request.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	games, users, err := h.searcher.Search(query)
	if err != nil {
		log.Printf("Error searching for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"videogames": games,
		"users":      users,
	})
}

// HandleListRecent returns remembered selections, newest first.
func (h *SearchHandler) HandleListRecent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	searches, err := h.searcher.RecentSearches(limit)
	if err != nil {
		log.Printf("Error listing recent searches: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve recent searches",
			"error":   err.Error(),
		})
	}
	return c.JSON(searches)
}

// SelectionRequest represents a tapped search result to remember.
type SelectionRequest struct {
	Tab         string `json:"tab" validate:"required,oneof=VIDEOGAMES USERS"`
	ItemID      string `json:"item_id" validate:"required"`
	DisplayText string `json:"display_text"`
	ImageURL    string `json:"image_url"`
}

// HandleRecordSelection upserts one selection into the recent-search store.
// Blank display text is silently dropped, matching the store contract.
func (h *SearchHandler) HandleRecordSelection(c *fiber.Ctx) error {
	var req SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing selection request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	var err error
	if req.Tab == models.SearchTabUsers {
		err = h.searcher.RecordUserSelection(models.User{
			ID:          req.ItemID,
			Username:    req.DisplayText,
			ProfileIcon: req.ImageURL,
		})
	} else {
		err = h.searcher.RecordVideogameSelection(models.Videogame{
			ID:           req.ItemID,
			Title:        req.DisplayText,
			ImageProfile: req.ImageURL,
		})
	}
	if err != nil {
		log.Printf("Error recording selection for item %s: %v", req.ItemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not record selection",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Selection recorded",
	})
}

// HandleDeleteRecent removes one remembered selection. A numeric path id is
// treated as the local row id; anything else falls back to item-id deletion.
func (h *SearchHandler) HandleDeleteRecent(c *fiber.Ctx) error {
	param := c.Params("id")
	entry := models.RecentSearch{ItemID: param}
	if id, err := strconv.ParseInt(param, 10, 64); err == nil {
		entry = models.RecentSearch{ID: id}
	}
	if err := h.searcher.DeleteRecent(entry); err != nil {
		log.Printf("Error deleting recent search %s: %v", param, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete recent search",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Recent search deleted",
	})
}

// HandleClearRecent removes every remembered selection.
func (h *SearchHandler) HandleClearRecent(c *fiber.Ctx) error {
	if err := h.searcher.ClearRecent(); err != nil {
		log.Printf("Error clearing recent searches: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear recent searches",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Recent searches cleared",
	})
}
