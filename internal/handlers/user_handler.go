package handlers

import (
	"log"

	"gamecritic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for profiles and the follow graph.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/:id", h.HandleGetProfile)
	userRoutes.Put("/me", h.HandleUpdateProfile)
	userRoutes.Post("/:id/follow", h.HandleFollow)
	userRoutes.Delete("/:id/follow", h.HandleUnfollow)
	userRoutes.Get("/:id/follow", h.HandleIsFollowing)
}

// HandleGetProfile returns a user's profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(c.Params("id"))
	if err != nil {
		log.Printf("Error getting profile %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
			"error":   err.Error(),
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return c.JSON(user)
}

// UpdateProfileRequest represents the request body for profile edits.
// ProfileIcon is optional; leaving it out keeps the stored icon.
type UpdateProfileRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Username    string  `json:"username" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ProfileIcon *string `json:"profile_icon"`
}

// HandleUpdateProfile edits the signed-in user's profile.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile request body: %v", err)
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

	userID, _ := c.Locals("user_id").(string)
	if err := h.service.UpdateProfile(userID, req.Name, req.Username, req.Description, req.ProfileIcon); err != nil {
		log.Printf("Error updating profile %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// HandleFollow makes the signed-in user follow the target user.
func (h *UserHandler) HandleFollow(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if err := h.service.Follow(userID, c.Params("id")); err != nil {
		log.Printf("Error following user %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not follow user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Now following user",
	})
}

// HandleUnfollow removes the signed-in user's follow of the target user.
func (h *UserHandler) HandleUnfollow(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if err := h.service.Unfollow(userID, c.Params("id")); err != nil {
		log.Printf("Error unfollowing user %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not unfollow user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Unfollowed user",
	})
}

// HandleIsFollowing reports whether the signed-in user follows the target.
func (h *UserHandler) HandleIsFollowing(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	following, err := h.service.IsFollowing(userID, c.Params("id"))
	if err != nil {
		log.Printf("Error checking follow state for %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check follow state",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"following": following,
	})
}
