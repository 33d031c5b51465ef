package model

import (
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Workspace holds the request state of one analyst session
type Workspace struct {
	Key                  types.SessionKey
	SearchData           Operation[*SearchResult]
	EntityNeighbors      Operation[[]*NeighborRecord]
	TopUtilizers         Operation[*Report]
	TopUtilizerNeighbors Operation[NeighborsByEntity]
}

// NewWorkspace creates an idle workspace
func NewWorkspace(key types.SessionKey) *Workspace {
	return &Workspace{Key: key}
}

// WorkspaceSnapshot is a copy of every operation of a workspace
type WorkspaceSnapshot struct {
	Key                  types.SessionKey                     `json:"key"`
	SearchData           OperationSnapshot[*SearchResult]     `json:"searchData"`
	EntityNeighbors      OperationSnapshot[[]*NeighborRecord] `json:"entityNeighbors"`
	TopUtilizers         OperationSnapshot[*ReportSummary]    `json:"topUtilizers"`
	TopUtilizerNeighbors OperationSnapshot[NeighborsByEntity] `json:"topUtilizerNeighbors"`
}

// Snapshot copies the workspace. The top utilizer value is reduced to its summary.
func (w *Workspace) Snapshot() WorkspaceSnapshot {
	tu := w.TopUtilizers.Snapshot()
	snap := WorkspaceSnapshot{
		Key:                  w.Key,
		SearchData:           w.SearchData.Snapshot(),
		EntityNeighbors:      w.EntityNeighbors.Snapshot(),
		TopUtilizerNeighbors: w.TopUtilizerNeighbors.Snapshot(),
		TopUtilizers: OperationSnapshot[*ReportSummary]{
			State:         tu.State,
			CorrelationID: tu.CorrelationID,
			Error:         tu.Error,
			UpdatedAt:     tu.UpdatedAt,
		},
	}
	if tu.Value != nil {
		summary := tu.Value.Summary()
		snap.TopUtilizers.Value = &summary
	}
	return snap
}
