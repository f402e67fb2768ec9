package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/org-chart-service/internal/domain"
	"github.com/spec-kit/org-chart-service/internal/orgchart"
	"github.com/spec-kit/org-chart-service/internal/repository"
	apperrors "github.com/spec-kit/org-chart-service/pkg/util"
)

// OrganizationService serves charts and searches over the stored organization snapshot.
// Every call decodes its own copy of the snapshot.
type OrganizationService struct {
	snapshots repository.SnapshotRepository
	key       string
	logger    *zap.Logger
}

// OrganizationDependencies bundles collaborators for the organization service.
type OrganizationDependencies struct {
	SnapshotRepo repository.SnapshotRepository
	SnapshotKey  string
	Logger       *zap.Logger
}

// NewOrganizationService constructs the service.
func NewOrganizationService(deps OrganizationDependencies) *OrganizationService {
	key := deps.SnapshotKey
	if key == "" {
		key = orgchart.SnapshotKey
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrganizationService{snapshots: deps.SnapshotRepo, key: key, logger: logger}
}

// Employees loads and decodes the stored snapshot.
func (s *OrganizationService) Employees(ctx context.Context) ([]domain.Employee, error) {
	blob, found, err := s.snapshots.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("load organization snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}
	if !found {
		return nil, apperrors.NewNotFound("organization data", map[string]any{"key": s.key})
	}

	employees, err := orgchart.DecodeSnapshot(blob)
	if err != nil {
		s.logger.Error("decode organization snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, apperrors.NewDecodeError(err)
	}
	s.logger.Debug("organization snapshot loaded", zap.String("key", s.key), zap.Int("employees", len(employees)))
	return employees, nil
}

// Chart aggregates the stored snapshot.
func (s *OrganizationService) Chart(ctx context.Context) (domain.OrganizationChart, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return domain.OrganizationChart{}, err
	}
	return orgchart.Aggregate(employees), nil
}

// ChartFromCSV ingests CSV text and aggregates it without touching the store.
func (s *OrganizationService) ChartFromCSV(text string) (domain.OrganizationChart, error) {
	employees, err := parseCSV(text)
	if err != nil {
		return domain.OrganizationChart{}, err
	}
	return orgchart.Aggregate(employees), nil
}

// Tree renders the stored snapshot as a root -> department -> manager -> reports hierarchy.
func (s *OrganizationService) Tree(ctx context.Context) (domain.TreeNode, error) {
	chart, err := s.Chart(ctx)
	if err != nil {
		return domain.TreeNode{}, err
	}
	return orgchart.BuildTree(chart), nil
}

// Search filters the stored snapshot.
func (s *OrganizationService) Search(ctx context.Context, q domain.Query) ([]domain.Employee, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return nil, err
	}
	return orgchart.Filter(employees, q), nil
}

// ExportCSV writes the stored snapshot as CSV.
func (s *OrganizationService) ExportCSV(ctx context.Context) (string, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return "", err
	}
	return orgchart.FormatCSV(employees), nil
}

// Seed validates a snapshot blob and stores it under the configured key.
func (s *OrganizationService) Seed(ctx context.Context, blob []byte) (int, error) {
	employees, err := orgchart.DecodeSnapshot(blob)
	if err != nil {
		return 0, apperrors.NewDecodeError(err)
	}
	if err := s.snapshots.Put(ctx, s.key, blob); err != nil {
		return 0, fmt.Errorf("store snapshot: %w", err)
	}
	s.logger.Info("organization snapshot seeded", zap.String("key", s.key), zap.Int("employees", len(employees)))
	return len(employees), nil
}

// Ping checks the snapshot store.
func (s *OrganizationService) Ping(ctx context.Context) error {
	return s.snapshots.Ping(ctx)
}

func parseCSV(text string) ([]domain.Employee, error) {
	employees, err := orgchart.ParseCSV(text)
	if err == nil {
		return employees, nil
	}
	var malformed *orgchart.MalformedInputError
	if errors.As(err, &malformed) {
		details := map[string]any{"reason": malformed.Reason}
		if malformed.Line > 0 {
			details["line"] = malformed.Line
		}
		return nil, apperrors.NewMalformedInput(err, details)
	}
	return nil, apperrors.NewInternalError(err)
}
