package orgchart

import (
	"regexp"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

type predicate func(domain.Employee) bool

// Filter returns the employees satisfying every field set on q, in input order.
//
// Text fields are regular expressions searched anywhere in the value; skill is
// searched in each of the three skill slots. Salary bounds are inclusive. A
// pattern that does not compile matches nothing.
func Filter(employees []domain.Employee, q domain.Query) []domain.Employee {
	preds := compileQuery(q)
	out := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if matchesAll(preds, e) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(preds []predicate, e domain.Employee) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

func compileQuery(q domain.Query) []predicate {
	var preds []predicate
	if q.Name != nil {
		re := compilePattern(*q.Name)
		preds = append(preds, func(e domain.Employee) bool { return search(re, e.Name) })
	}
	if q.Department != nil {
		re := compilePattern(*q.Department)
		preds = append(preds, func(e domain.Employee) bool { return search(re, e.Department) })
	}
	if q.Office != nil {
		re := compilePattern(*q.Office)
		preds = append(preds, func(e domain.Employee) bool { return search(re, e.Office) })
	}
	if q.Skill != nil {
		re := compilePattern(*q.Skill)
		preds = append(preds, func(e domain.Employee) bool {
			for _, s := range e.Skills {
				if search(re, s) {
					return true
				}
			}
			return false
		})
	}
	if q.MinSalary != nil {
		lo := *q.MinSalary
		preds = append(preds, func(e domain.Employee) bool { return e.Salary >= lo })
	}
	if q.MaxSalary != nil {
		hi := *q.MaxSalary
		preds = append(preds, func(e domain.Employee) bool { return e.Salary <= hi })
	}
	return preds
}

// compilePattern returns nil for an invalid pattern.
func compilePattern(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return re
}

func search(re *regexp.Regexp, value string) bool {
	return re != nil && re.MatchString(value)
}
