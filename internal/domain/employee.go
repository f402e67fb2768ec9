package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SkillSlots is the fixed number of skills carried by every employee.
const SkillSlots = 3

// Employee is a single record of the organization snapshot.
type Employee struct {
	Name       string
	Department string
	Salary     int
	Office     string
	IsManager  bool
	Skills     [SkillSlots]string
}

// employeeRecord is the flat wire shape stored in the snapshot blob.
type employeeRecord struct {
	Name       string       `json:"name"`
	Department string       `json:"department"`
	Salary     flexibleInt  `json:"salary"`
	Office     string       `json:"office"`
	IsManager  flexibleBool `json:"isManager"`
	Skill1     string       `json:"skill1"`
	Skill2     string       `json:"skill2"`
	Skill3     string       `json:"skill3"`
}

// MarshalJSON writes the flat skill1..skill3 shape.
func (e Employee) MarshalJSON() ([]byte, error) {
	return json.Marshal(employeeRecord{
		Name:       e.Name,
		Department: e.Department,
		Salary:     flexibleInt(e.Salary),
		Office:     e.Office,
		IsManager:  flexibleBool(e.IsManager),
		Skill1:     e.Skills[0],
		Skill2:     e.Skills[1],
		Skill3:     e.Skills[2],
	})
}

// UnmarshalJSON accepts the flat shape. Salary and isManager may arrive as strings
// when the snapshot was produced by a CSV tool without type inference.
func (e *Employee) UnmarshalJSON(data []byte) error {
	var rec employeeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*e = Employee{
		Name:       rec.Name,
		Department: rec.Department,
		Salary:     int(rec.Salary),
		Office:     rec.Office,
		IsManager:  bool(rec.IsManager),
		Skills:     [SkillSlots]string{rec.Skill1, rec.Skill2, rec.Skill3},
	}
	return nil
}

type flexibleInt int

func (v flexibleInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(v))
}

func (v *flexibleInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = flexibleInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("salary: expected integer, got %s", string(data))
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("salary: %q is not an integer", s)
	}
	*v = flexibleInt(n)
	return nil
}

type flexibleBool bool

func (v flexibleBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(v))
}

func (v *flexibleBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = flexibleBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("isManager: expected boolean, got %s", string(data))
	}
	parsed, ok := ParseBoolToken(s)
	if !ok {
		return fmt.Errorf("isManager: %q is not a boolean", s)
	}
	*v = flexibleBool(parsed)
	return nil
}

// ParseBoolToken reads "true" or "false" in any letter case.
func ParseBoolToken(token string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
