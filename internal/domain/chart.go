package domain

// ChartEmployee is an employee as rendered inside a department, skills as a list.
type ChartEmployee struct {
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Salary     int      `json:"salary"`
	Office     string   `json:"office"`
	IsManager  bool     `json:"isManager"`
	Skills     []string `json:"skills"`
}

// Department groups the employees sharing a department name.
type Department struct {
	Name        string          `json:"name"`
	ManagerName *string         `json:"managerName,omitempty"`
	Employees   []ChartEmployee `json:"employees"`
}

// OrganizationChart is the read-only department view of a snapshot.
type OrganizationChart struct {
	Departments []Department `json:"departments"`
}

// TreePerson is the display payload of a TreeNode.
type TreePerson struct {
	ID           string `json:"id"`
	Department   string `json:"department"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	TotalReports int    `json:"totalReports"`
}

// TreeNode is one node of the root -> department -> manager -> reports hierarchy.
type TreeNode struct {
	ID        string     `json:"id"`
	Person    TreePerson `json:"person"`
	HasChild  bool       `json:"hasChild"`
	HasParent bool       `json:"hasParent"`
	Children  []TreeNode `json:"children"`
}
