package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/org-chart-service/internal/api/dto"
	"github.com/spec-kit/org-chart-service/internal/service"
)

// OrganizationHandler exposes the organization chart endpoints.
type OrganizationHandler struct {
	org *service.OrganizationService
}

// NewOrganizationHandler constructs handler.
func NewOrganizationHandler(org *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{org: org}
}

// GetChart handles GET /organization-chart.
func (h *OrganizationHandler) GetChart(c *fiber.Ctx) error {
	chart, err := h.org.Chart(c.UserContext())
	if err != nil {
		return err
	}
	return respondJSON(c, http.StatusOK, dto.OrganizationChartResponse{Organization: chart})
}

// PostChart handles POST /organization-chart with CSV text in organizationData.
func (h *OrganizationHandler) PostChart(c *fiber.Ctx) error {
	req, err := dto.ParseChartFromCSVRequest(c.Body())
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	chart, err := h.org.ChartFromCSV(req.OrganizationData)
	if err != nil {
		return err
	}
	return respondJSON(c, http.StatusOK, dto.OrganizationChartResponse{Organization: chart})
}

// GetTree handles GET /organization-chart/tree.
func (h *OrganizationHandler) GetTree(c *fiber.Ctx) error {
	tree, err := h.org.Tree(c.UserContext())
	if err != nil {
		return err
	}
	return respondJSON(c, http.StatusOK, tree)
}

// ExportCSV handles GET /organization-chart/export.csv.
func (h *OrganizationHandler) ExportCSV(c *fiber.Ctx) error {
	text, err := h.org.ExportCSV(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="organization.csv"`)
	return c.Status(http.StatusOK).SendString(text)
}
