package orgchart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

func TestAggregate_SampleScenario(t *testing.T) {
	employees, err := ParseCSV(sampleCSV)
	require.NoError(t, err)

	chart := Aggregate(employees)
	require.Len(t, chart.Departments, 1)

	dept := chart.Departments[0]
	require.Equal(t, "Developer Platform", dept.Name)
	require.NotNil(t, dept.ManagerName)
	require.Equal(t, "Belen Norman", *dept.ManagerName)
	require.Equal(t, []domain.ChartEmployee{
		{Name: "Jill", Department: "Developer Platform", Salary: 100, Office: "Austin", Skills: []string{"Typescript", "C++", "GoLang"}},
		{Name: "Belen Norman", Department: "Developer Platform", Salary: 252, Office: "London", IsManager: true, Skills: []string{"HTML", "Rust", "GoLang"}},
	}, dept.Employees)
}

func TestAggregate_FirstSeenOrderAndCaseSensitivity(t *testing.T) {
	chart := Aggregate(staff())

	var got []string
	for _, d := range chart.Departments {
		got = append(got, d.Name)
	}
	require.Equal(t, []string{"Developer Platform", "Engineering", "engineering"}, got)
}

func TestAggregate_InterleavedDepartments(t *testing.T) {
	employees := []domain.Employee{
		{Name: "a", Department: "Z"},
		{Name: "b", Department: "A"},
		{Name: "c", Department: "Z"},
		{Name: "d", Department: "M"},
		{Name: "e", Department: "A"},
	}
	chart := Aggregate(employees)

	require.Len(t, chart.Departments, 3)
	require.Equal(t, "Z", chart.Departments[0].Name)
	require.Equal(t, "A", chart.Departments[1].Name)
	require.Equal(t, "M", chart.Departments[2].Name)
	require.Equal(t, "a", chart.Departments[0].Employees[0].Name)
	require.Equal(t, "c", chart.Departments[0].Employees[1].Name)
	require.Equal(t, "b", chart.Departments[1].Employees[0].Name)
	require.Equal(t, "e", chart.Departments[1].Employees[1].Name)

	require.Equal(t, chart, Aggregate(employees))
}

func TestAggregate_Partition(t *testing.T) {
	employees := staff()
	chart := Aggregate(employees)

	total := 0
	for _, d := range chart.Departments {
		for _, e := range d.Employees {
			require.Equal(t, d.Name, e.Department)
		}
		total += len(d.Employees)
	}
	require.Equal(t, len(employees), total)
}

func TestAggregate_ManagerRules(t *testing.T) {
	employees := []domain.Employee{
		{Name: "first", Department: "Ops", IsManager: true},
		{Name: "worker", Department: "Ops"},
		{Name: "second", Department: "Ops", IsManager: true},
		{Name: "solo", Department: "Sales"},
	}
	chart := Aggregate(employees)

	require.Equal(t, "second", *chart.Departments[0].ManagerName)
	require.Nil(t, chart.Departments[1].ManagerName)
	require.Len(t, chart.Departments[0].Employees, 3)
}

func TestAggregate_Empty(t *testing.T) {
	chart := Aggregate(nil)
	require.NotNil(t, chart.Departments)
	require.Empty(t, chart.Departments)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	employees := staff()
	chart := Aggregate(employees)
	chart.Departments[0].Employees[0].Skills[0] = "changed"

	require.Equal(t, staff(), employees)
}
