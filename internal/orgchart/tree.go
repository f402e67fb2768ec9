package orgchart

import (
	"strconv"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

const (
	rootID    = "root"
	rootName  = "Organization"
	rootTitle = "Organization"
)

// BuildTree renders a chart as root -> department -> manager -> reports.
//
// The manager node is the last employee flagged as manager, matching the
// department's managerName; every other employee becomes a report. Departments
// without a manager list their employees directly. A new tree is built on every
// call and the chart is left untouched.
func BuildTree(chart domain.OrganizationChart) domain.TreeNode {
	nextID := 0
	newID := func() string {
		nextID++
		return "emp-" + strconv.Itoa(nextID)
	}

	total := 0
	departments := make([]domain.TreeNode, 0, len(chart.Departments))
	for _, dept := range chart.Departments {
		total += len(dept.Employees)
		departments = append(departments, departmentNode(dept, newID))
	}

	return domain.TreeNode{
		ID: rootID,
		Person: domain.TreePerson{
			ID:           rootID,
			Name:         rootName,
			Title:        rootTitle,
			TotalReports: total,
		},
		HasChild:  len(departments) > 0,
		HasParent: false,
		Children:  departments,
	}
}

func departmentNode(dept domain.Department, newID func() string) domain.TreeNode {
	managerIdx := -1
	for i, e := range dept.Employees {
		if e.IsManager {
			managerIdx = i
		}
	}

	title := "No manager"
	if dept.ManagerName != nil {
		title = "Manager: " + *dept.ManagerName
	}

	var children []domain.TreeNode
	if managerIdx < 0 {
		children = make([]domain.TreeNode, 0, len(dept.Employees))
		for _, e := range dept.Employees {
			children = append(children, employeeNode(e, newID(), "Employee", nil))
		}
	} else {
		manager := dept.Employees[managerIdx]
		managerID := newID()
		reports := make([]domain.TreeNode, 0, len(dept.Employees)-1)
		for i, e := range dept.Employees {
			if i == managerIdx {
				continue
			}
			reports = append(reports, employeeNode(e, newID(), "Employee", nil))
		}
		children = []domain.TreeNode{employeeNode(manager, managerID, "Manager", reports)}
	}

	return domain.TreeNode{
		ID: dept.Name,
		Person: domain.TreePerson{
			ID:           dept.Name,
			Department:   dept.Name,
			Name:         dept.Name,
			Title:        title,
			TotalReports: len(dept.Employees),
		},
		HasChild:  len(children) > 0,
		HasParent: true,
		Children:  children,
	}
}

func employeeNode(e domain.ChartEmployee, id, title string, reports []domain.TreeNode) domain.TreeNode {
	if reports == nil {
		reports = []domain.TreeNode{}
	}
	return domain.TreeNode{
		ID: id,
		Person: domain.TreePerson{
			ID:           id,
			Department:   e.Department,
			Name:         e.Name,
			Title:        title,
			TotalReports: len(reports),
		},
		HasChild:  len(reports) > 0,
		HasParent: true,
		Children:  reports,
	}
}
