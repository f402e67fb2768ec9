package orgchart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

const sampleCSV = "name,department,salary,office,isManager,skill1,skill2,skill3\n" +
	"Jill,Developer Platform,100,Austin,FALSE,Typescript,C++,GoLang\n" +
	"Belen Norman,Developer Platform,252,London,TRUE,HTML,Rust,GoLang\n"

func sampleEmployees() []domain.Employee {
	return []domain.Employee{
		{Name: "Jill", Department: "Developer Platform", Salary: 100, Office: "Austin", Skills: [3]string{"Typescript", "C++", "GoLang"}},
		{Name: "Belen Norman", Department: "Developer Platform", Salary: 252, Office: "London", IsManager: true, Skills: [3]string{"HTML", "Rust", "GoLang"}},
	}
}

func TestParseCSV_Sample(t *testing.T) {
	employees, err := ParseCSV(sampleCSV)
	require.NoError(t, err)
	require.Equal(t, sampleEmployees(), employees)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	employees, err := ParseCSV("name,department,salary,office,isManager,skill1,skill2,skill3\n")
	require.NoError(t, err)
	require.Empty(t, employees)
}

func TestParseCSV_HeaderNamesIgnored(t *testing.T) {
	employees, err := ParseCSV("a,b,c\nAda,Eng,5,Paris,true,Go,C,Lisp")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, "Ada", employees[0].Name)
	require.True(t, employees[0].IsManager)
}

func TestParseCSV_TrailingBlankLinesAndCRLF(t *testing.T) {
	text := "h\r\nAda,Eng,5,Paris,True,Go,C,Lisp\r\n\r\n\n  \n"
	employees, err := ParseCSV(text)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, [3]string{"Go", "C", "Lisp"}, employees[0].Skills)
}

func TestParseCSV_BooleanCaseInsensitive(t *testing.T) {
	for _, token := range []string{"TRUE", "true", "True", "tRuE"} {
		employees, err := ParseCSV("h\nAda,Eng,5,Paris," + token + ",Go,C,Lisp")
		require.NoError(t, err, token)
		require.True(t, employees[0].IsManager, token)
	}
	for _, token := range []string{"FALSE", "false", "False"} {
		employees, err := ParseCSV("h\nAda,Eng,5,Paris," + token + ",Go,C,Lisp")
		require.NoError(t, err, token)
		require.False(t, employees[0].IsManager, token)
	}
}

func TestParseCSV_ExtraColumnsIgnored(t *testing.T) {
	employees, err := ParseCSV("h\nAda,Eng,5,Paris,false,Go,C,Lisp,extra")
	require.NoError(t, err)
	require.Equal(t, "Lisp", employees[0].Skills[2])
}

func TestParseCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		line int
	}{
		{name: "empty", text: "", line: 0},
		{name: "blank only", text: "\n\n", line: 0},
		{name: "too few columns", text: "h\nAda,Eng,5", line: 2},
		{name: "blank interior line", text: "h\n\nAda,Eng,5,Paris,false,Go,C,Lisp", line: 2},
		{name: "non numeric salary", text: "h\nAda,Eng,5,Paris,false,Go,C,Lisp\nBob,Eng,lots,Oslo,false,Go,C,Lisp", line: 3},
		{name: "bad boolean", text: "h\nAda,Eng,5,Paris,yes,Go,C,Lisp", line: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			employees, err := ParseCSV(tc.text)
			require.Nil(t, employees)
			var malformed *MalformedInputError
			require.True(t, errors.As(err, &malformed))
			require.Equal(t, tc.line, malformed.Line)
		})
	}
}

func TestFormatCSV_RoundTrip(t *testing.T) {
	original := sampleEmployees()
	text := FormatCSV(original)

	parsed, err := ParseCSV(text)
	require.NoError(t, err)
	require.Equal(t, original, parsed)
	require.Equal(t, Aggregate(original), Aggregate(parsed))
}

func TestFormatCSV_Empty(t *testing.T) {
	require.Equal(t, "name,department,salary,office,isManager,skill1,skill2,skill3\n", FormatCSV(nil))
}
