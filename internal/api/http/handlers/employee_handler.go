package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-chart-service/internal/api/dto"
	"github.com/spec-kit/org-chart-service/internal/domain"
	"github.com/spec-kit/org-chart-service/internal/service"
)

// EmployeeHandler exposes employee search.
type EmployeeHandler struct {
	org *service.OrganizationService
}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler(org *service.OrganizationService) *EmployeeHandler {
	return &EmployeeHandler{org: org}
}

// Search handles POST /employee with a JSON query body.
func (h *EmployeeHandler) Search(c *fiber.Ctx) error {
	q, err := dto.ParseQuery(c.Body())
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return h.search(c, q)
}

// SearchByParams handles GET /employee with the query in URL parameters.
func (h *EmployeeHandler) SearchByParams(c *fiber.Ctx) error {
	return h.search(c, dto.QueryFromParams(func(key string) string { return c.Query(key) }))
}

func (h *EmployeeHandler) search(c *fiber.Ctx, q domain.Query) error {
	employees, err := h.org.Search(c.UserContext(), q)
	if err != nil {
		return err
	}
	return respondJSON(c, http.StatusOK, dto.EmployeesResponse{Employees: employees})
}
