package orgchart

import (
	"encoding/json"

	"github.com/spec-kit/org-chart-service/internal/domain"
)

// SnapshotKey is the store key holding the organization blob.
const SnapshotKey = "organizationData"

type snapshot struct {
	OrganizationData *[]domain.Employee `json:"organizationData"`
}

// DecodeSnapshot reads a `{ "organizationData": [...] }` blob.
// An empty list is valid; a missing or null list is not.
func DecodeSnapshot(data []byte) ([]domain.Employee, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &DecodeError{Reason: "invalid json", Err: err}
	}
	if snap.OrganizationData == nil {
		return nil, &DecodeError{Reason: "missing organizationData"}
	}
	return *snap.OrganizationData, nil
}

// EncodeSnapshot is the inverse of DecodeSnapshot.
func EncodeSnapshot(employees []domain.Employee) ([]byte, error) {
	if employees == nil {
		employees = []domain.Employee{}
	}
	return json.Marshal(snapshot{OrganizationData: &employees})
}
