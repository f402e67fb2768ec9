package dto

import (
	"encoding/json"
	"errors"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

// ErrInvalidChartRequest is returned when a chart request body is not a JSON object.
var ErrInvalidChartRequest = errors.New("invalid payload")

// ChartFromCSVRequest is the POST /organization-chart payload.
type ChartFromCSVRequest struct {
	OrganizationData string `json:"organizationData"`
}

// ParseChartFromCSVRequest decodes the body as JSON whatever its Content-Type.
func ParseChartFromCSVRequest(body []byte) (ChartFromCSVRequest, error) {
	var req ChartFromCSVRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ChartFromCSVRequest{}, ErrInvalidChartRequest
	}
	return req, nil
}

// OrganizationChartResponse wraps a chart.
type OrganizationChartResponse struct {
	Organization domain.OrganizationChart `json:"organization"`
}

// EmployeesResponse wraps a filter result.
type EmployeesResponse struct {
	Employees []domain.Employee `json:"employees"`
}
