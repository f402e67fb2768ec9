package orgchart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

// Columns is the fixed CSV column order. Position is authoritative; header names are not checked.
var Columns = [...]string{"name", "department", "salary", "office", "isManager", "skill1", "skill2", "skill3"}

const (
	colName = iota
	colDepartment
	colSalary
	colOffice
	colIsManager
	colSkill1
	colSkill2
	colSkill3
)

// ParseCSV converts header-prefixed CSV text into employees.
//
// Rows are split on "\n" and columns on ","; quoting is not supported, so text
// fields cannot contain either separator. A trailing "\r" on a row is dropped.
// Trailing blank lines are ignored, any other row with fewer than eight columns
// fails the whole input.
func ParseCSV(text string) ([]domain.Employee, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &MalformedInputError{Reason: "empty input"}
	}

	employees := make([]domain.Employee, 0, len(lines)-1)
	for i, line := range lines[1:] {
		emp, err := parseRow(line, i+2)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func parseRow(line string, lineNo int) (domain.Employee, error) {
	cols := strings.Split(line, ",")
	if len(cols) < len(Columns) {
		return domain.Employee{}, &MalformedInputError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected %d columns, got %d", len(Columns), len(cols)),
		}
	}

	salary, err := strconv.Atoi(strings.TrimSpace(cols[colSalary]))
	if err != nil {
		return domain.Employee{}, &MalformedInputError{
			Line:   lineNo,
			Reason: fmt.Sprintf("salary %q is not an integer", cols[colSalary]),
		}
	}
	isManager, ok := domain.ParseBoolToken(cols[colIsManager])
	if !ok {
		return domain.Employee{}, &MalformedInputError{
			Line:   lineNo,
			Reason: fmt.Sprintf("isManager %q is not a boolean", cols[colIsManager]),
		}
	}

	return domain.Employee{
		Name:       cols[colName],
		Department: cols[colDepartment],
		Salary:     salary,
		Office:     cols[colOffice],
		IsManager:  isManager,
		Skills:     [domain.SkillSlots]string{cols[colSkill1], cols[colSkill2], cols[colSkill3]},
	}, nil
}

// FormatCSV is the inverse of ParseCSV: a header row followed by one row per employee.
func FormatCSV(employees []domain.Employee) string {
	var b strings.Builder
	b.WriteString(strings.Join(Columns[:], ","))
	b.WriteByte('\n')
	for _, e := range employees {
		row := []string{
			e.Name,
			e.Department,
			strconv.Itoa(e.Salary),
			e.Office,
			strconv.FormatBool(e.IsManager),
			e.Skills[0],
			e.Skills[1],
			e.Skills[2],
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
