package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-app/internal/session"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
// Fetch failures are part of the rendered view, not HTTP errors.
func RegisterRoutes(app *fiber.App, sess *session.Session) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		return c.JSON(sess.View())
	})

	v1.Post("/weather", func(c *fiber.Ctx) error {
		var req submitRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(sess.Submit(c.UserContext(), req.City))
	})

	v1.Post("/weather/unit", func(c *fiber.Ctx) error {
		return c.JSON(sess.ToggleUnit())
	})
}

// submitRequest is the body of POST /api/v1/weather.
type submitRequest struct {
	City string `json:"city" form:"city" validate:"required"`
}

// ErrorHandler renders every handler error as {"error":true,"message":...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
