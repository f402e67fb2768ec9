package domain

// Query is a partial predicate over employees. Nil fields impose no constraint.
type Query struct {
	Name       *string
	Department *string
	Office     *string
	Skill      *string
	MinSalary  *int
	MaxSalary  *int
}

// IsEmpty reports whether no field is set.
func (q Query) IsEmpty() bool {
	return q.Name == nil && q.Department == nil && q.Office == nil &&
		q.Skill == nil && q.MinSalary == nil && q.MaxSalary == nil
}
