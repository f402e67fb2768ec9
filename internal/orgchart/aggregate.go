package orgchart

import "github.com/spec-kit/org-chart-service/internal/domain"

// Aggregate groups employees by department.
//
// Departments appear in first-seen order and employees keep their input order
// within a department. Department names are case-sensitive. When several
// employees of one department are flagged as manager, the last one wins the
// department's managerName. The input slice is not modified.
func Aggregate(employees []domain.Employee) domain.OrganizationChart {
	departments := make([]domain.Department, 0)
	index := make(map[string]int)

	for _, e := range employees {
		i, ok := index[e.Department]
		if !ok {
			i = len(departments)
			index[e.Department] = i
			departments = append(departments, domain.Department{
				Name:      e.Department,
				Employees: []domain.ChartEmployee{},
			})
		}

		dept := &departments[i]
		dept.Employees = append(dept.Employees, toChartEmployee(e))
		if e.IsManager {
			name := e.Name
			dept.ManagerName = &name
		}
	}

	return domain.OrganizationChart{Departments: departments}
}

func toChartEmployee(e domain.Employee) domain.ChartEmployee {
	return domain.ChartEmployee{
		Name:       e.Name,
		Department: e.Department,
		Salary:     e.Salary,
		Office:     e.Office,
		IsManager:  e.IsManager,
		Skills:     []string{e.Skills[0], e.Skills[1], e.Skills[2]},
	}
}
