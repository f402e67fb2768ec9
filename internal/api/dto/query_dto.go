package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

// Query field names shared by the JSON body and URL parameters.
const (
	QueryName       = "name"
	QueryDepartment = "department"
	QueryOffice     = "office"
	QuerySkill      = "skill"
	QueryMinSalary  = "minSalary"
	QueryMaxSalary  = "maxSalary"
)

// ErrQueryNotObject is returned when a query body is not a JSON object.
var ErrQueryNotObject = errors.New("query must be a JSON object")

// ParseQuery decodes a query body. An empty body is the empty query. Fields of
// the wrong type are dropped rather than rejected.
func ParseQuery(body []byte) (domain.Query, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.Query{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return domain.Query{}, ErrQueryNotObject
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.Query{}, ErrQueryNotObject
	}

	return domain.Query{
		Name:       textField(fields[QueryName]),
		Department: textField(fields[QueryDepartment]),
		Office:     textField(fields[QueryOffice]),
		Skill:      textField(fields[QuerySkill]),
		MinSalary:  salaryField(fields[QueryMinSalary]),
		MaxSalary:  salaryField(fields[QueryMaxSalary]),
	}, nil
}

// QueryFromParams builds a query from URL parameters; empty parameters are absent.
func QueryFromParams(param func(key string) string) domain.Query {
	text := func(key string) *string {
		if v := param(key); v != "" {
			return &v
		}
		return nil
	}
	salary := func(key string) *int {
		if v := param(key); v != "" {
			return salaryField(v)
		}
		return nil
	}
	return domain.Query{
		Name:       text(QueryName),
		Department: text(QueryDepartment),
		Office:     text(QueryOffice),
		Skill:      text(QuerySkill),
		MinSalary:  salary(QueryMinSalary),
		MaxSalary:  salary(QueryMaxSalary),
	}
}

func textField(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// salaryField accepts integral JSON numbers and integer strings.
func salaryField(v any) *int {
	var raw string
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
	case string:
		raw = strings.TrimSpace(t)
	default:
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return nil
	}
	n := int(f)
	return &n
}
