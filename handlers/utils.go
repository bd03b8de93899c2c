package handlers

import (
	"errors"
	"log/slog"
	"recipe-box/middleware"
	"recipe-box/services"
	"recipe-box/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// handleServiceError maps service sentinel errors to HTTP responses.
// Anything unrecognised is logged and reported as fallback with a 500.
func handleServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrRecipeNotFound):
		return notFound(c, "Recipe not found")
	case errors.Is(err, services.ErrForbidden):
		return forbidden(c, "Only the owner can modify this recipe")
	case errors.Is(err, services.ErrTagNotFound):
		return badRequest(c, "One or more tags do not exist")
	case errors.Is(err, services.ErrTagAlreadyExists):
		return conflict(c, "Tag with this name already exists")
	case errors.Is(err, services.ErrInvalidCategory):
		return badRequest(c, "Invalid category")
	case errors.Is(err, services.ErrTitleRequired):
		return badRequest(c, "Title is required")
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrSessionNotFound):
		return unauthorized(c, "Unauthorized")
	default:
		return serverErrorWithDetails(c, fallback, err)
	}
}

// recipeID returns the :id path parameter in canonical form, or "" when it is not a UUID
func recipeID(c *fiber.Ctx) string {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return ""
	}
	return id.String()
}
