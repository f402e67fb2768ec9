package handlers

import "github.com/gofiber/fiber/v2"

func respondJSON(c *fiber.Ctx, status int, body any) error {
	return c.Status(status).JSON(body, fiber.MIMEApplicationJSONCharsetUTF8)
}
