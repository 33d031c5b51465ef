package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository DataModelCache

import (
	"context"
	"time"

	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Repository defines the interface for report persistence
type Repository interface {
	PutReport(ctx context.Context, report *model.Report) error
	// GetReport returns model.ErrReportNotFound when the report does not exist
	GetReport(ctx context.Context, id types.ReportID) (*model.Report, error)
	// ListReports returns the owner's reports, newest first
	ListReports(ctx context.Context, owner types.SessionKey) ([]*model.ReportSummary, error)
	DeleteReport(ctx context.Context, id types.ReportID) error

	// Close closes the repository connection
	Close() error
}

// DataModelCache keeps the entity data model between upstream loads
type DataModelCache interface {
	// GetDataModel returns nil without error on a miss
	GetDataModel(ctx context.Context) (*model.DataModel, error)
	PutDataModel(ctx context.Context, dm *model.DataModel, ttl time.Duration) error
}
