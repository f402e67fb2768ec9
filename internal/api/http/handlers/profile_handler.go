package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-chart-service/internal/config"
	"github.com/spec-kit/org-chart-service/internal/domain"
)

// ProfileHandler serves GET /me.
type ProfileHandler struct {
	cfg config.ProfileConfig
}

// NewProfileHandler constructs handler.
func NewProfileHandler(cfg config.ProfileConfig) *ProfileHandler {
	return &ProfileHandler{cfg: cfg}
}

// Me returns a fresh profile value on every call.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	skills := append([]string{}, h.cfg.Skills...)
	return respondJSON(c, http.StatusOK, domain.Profile{
		Name:            h.cfg.Name,
		Homepage:        h.cfg.Homepage,
		GitHubURL:       h.cfg.GitHubURL,
		InterestingFact: h.cfg.InterestingFact,
		Skills:          skills,
	})
}
