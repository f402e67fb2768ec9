package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/org-chart-service/internal/domain"
	"github.com/spec-kit/org-chart-service/internal/repository"
	apperrors "github.com/spec-kit/org-chart-service/pkg/util"
)

const snapshotBlob = `{"organizationData":[
	{"name":"Jill","department":"Developer Platform","salary":100,"office":"Austin","isManager":false,"skill1":"Typescript","skill2":"C++","skill3":"GoLang"},
	{"name":"Belen Norman","department":"Developer Platform","salary":252,"office":"London","isManager":true,"skill1":"HTML","skill2":"Rust","skill3":"GoLang"}
]}`

type failingRepo struct {
	repository.SnapshotRepository
	err error
}

func (f failingRepo) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, f.err
}

func seededService(t *testing.T, blob string) *OrganizationService {
	t.Helper()
	repo := repository.NewMemorySnapshotRepository()
	require.NoError(t, repo.Put(context.Background(), "organizationData", []byte(blob)))
	return NewOrganizationService(OrganizationDependencies{SnapshotRepo: repo})
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestOrganizationService_Chart(t *testing.T) {
	svc := seededService(t, snapshotBlob)

	chart, err := svc.Chart(context.Background())
	require.NoError(t, err)
	require.Len(t, chart.Departments, 1)
	require.Equal(t, "Belen Norman", *chart.Departments[0].ManagerName)
}

func TestOrganizationService_Search(t *testing.T) {
	svc := seededService(t, snapshotBlob)
	minSalary := 200

	employees, err := svc.Search(context.Background(), domain.Query{MinSalary: &minSalary})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.Equal(t, "Belen Norman", employees[0].Name)
}

func TestOrganizationService_Tree(t *testing.T) {
	svc := seededService(t, snapshotBlob)

	tree, err := svc.Tree(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, tree.Person.TotalReports)
}

func TestOrganizationService_ExportCSV(t *testing.T) {
	svc := seededService(t, snapshotBlob)

	text, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t, "name,department,salary,office,isManager,skill1,skill2,skill3\n"+
		"Jill,Developer Platform,100,Austin,false,Typescript,C++,GoLang\n"+
		"Belen Norman,Developer Platform,252,London,true,HTML,Rust,GoLang\n", text)

	fromCSV, err := svc.ChartFromCSV(text)
	require.NoError(t, err)
	stored, err := svc.Chart(context.Background())
	require.NoError(t, err)
	require.Equal(t, stored, fromCSV)
}

func TestOrganizationService_Errors(t *testing.T) {
	ctx := context.Background()

	empty := NewOrganizationService(OrganizationDependencies{SnapshotRepo: repository.NewMemorySnapshotRepository()})
	_, err := empty.Chart(ctx)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))

	broken := seededService(t, `{"organizationData":`)
	_, err = broken.Search(ctx, domain.Query{})
	require.Equal(t, "DECODE_ERROR", errorCode(t, err))

	failing := NewOrganizationService(OrganizationDependencies{SnapshotRepo: failingRepo{err: errors.New("connection refused")}})
	_, err = failing.Tree(ctx)
	require.Equal(t, "INTERNAL_ERROR", errorCode(t, err))

	_, err = empty.ChartFromCSV("h\nAda,Eng")
	require.Equal(t, "MALFORMED_INPUT", errorCode(t, err))
	require.Equal(t, 2, apperrors.ToDomainError(err).Details["line"])
}

func TestOrganizationService_EmptySnapshot(t *testing.T) {
	svc := seededService(t, `{"organizationData":[]}`)

	chart, err := svc.Chart(context.Background())
	require.NoError(t, err)
	require.Empty(t, chart.Departments)

	employees, err := svc.Search(context.Background(), domain.Query{})
	require.NoError(t, err)
	require.Empty(t, employees)
}

func TestOrganizationService_Seed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemorySnapshotRepository()
	svc := NewOrganizationService(OrganizationDependencies{SnapshotRepo: repo, SnapshotKey: "org"})

	count, err := svc.Seed(ctx, []byte(snapshotBlob))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, found, err := repo.Get(ctx, "org")
	require.NoError(t, err)
	require.True(t, found)

	_, err = svc.Seed(ctx, []byte(`{"employees":[]}`))
	require.Equal(t, "DECODE_ERROR", errorCode(t, err))
}
