package usecase

import (
	"context"
	"io"

	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// TopUtilizers defines the interface for running top utilizer rankings
type TopUtilizers interface {
	// Run ranks an entity set and stores the report
	Run(ctx context.Context, req *model.TopUtilizerRequest) (*model.Report, error)

	// Options derives the duration and date property choices of a selection
	Options(ctx context.Context, req *SearchOptionsRequest) (*SearchOptions, error)
}

// Explore defines the interface for browsing entity sets and entities
type Explore interface {
	SearchEntitySets(ctx context.Context, term string, page int, showAssociations, showAudit bool) (*model.EntitySetSearchResult, error)
	GetNeighborTypes(ctx context.Context, entitySetID types.EntitySetID) ([]model.NeighborType, error)
	SearchEntitySetData(ctx context.Context, entitySetID types.EntitySetID, constraints model.SearchConstraints) (*model.SearchResult, error)
	GetEntityNeighbors(ctx context.Context, entitySetID types.EntitySetID, entityKeyID types.EntityKeyID) ([]*model.NeighborRecord, error)
	GetTimeline(ctx context.Context, entitySetID types.EntitySetID, entityKeyID types.EntityKeyID) (*Timeline, error)
}

// Reports defines the interface for stored reports
type Reports interface {
	List(ctx context.Context) ([]*model.ReportSummary, error)
	Get(ctx context.Context, id types.ReportID) (*model.Report, error)
	Delete(ctx context.Context, id types.ReportID) error
	Dashboard(ctx context.Context, id types.ReportID) (*model.Dashboard, error)
	Resources(ctx context.Context, id types.ReportID, resourceType types.ResourceType, rates []model.CostRate) ([]model.EntityResources, error)
	ExportCSV(ctx context.Context, id types.ReportID, w io.Writer) error
}

// WorkspaceReader exposes the request state of the caller's session
type WorkspaceReader interface {
	Snapshot(ctx context.Context) model.WorkspaceSnapshot
}

var (
	_ TopUtilizers    = (*TopUtilizersUseCase)(nil)
	_ Explore         = (*ExploreUseCase)(nil)
	_ Reports         = (*ReportUseCase)(nil)
	_ WorkspaceReader = (*Workspaces)(nil)
)
