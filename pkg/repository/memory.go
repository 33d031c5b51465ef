package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	reports map[types.ReportID]*model.Report
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		reports: make(map[types.ReportID]*model.Report),
	}
}

// PutReport saves a report to memory
func (m *Memory) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reportCopy := *report
	m.reports[report.ID] = &reportCopy
	return nil
}

// GetReport retrieves a report by ID
func (m *Memory) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	if id == "" {
		return nil, goerr.New("report ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	report, exists := m.reports[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrReportNotFound, "failed to get report", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	reportCopy := *report
	return &reportCopy, nil
}

// ListReports lists the owner's reports, newest first
func (m *Memory) ListReports(ctx context.Context, owner types.SessionKey) ([]*model.ReportSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reports []*model.Report
	for _, r := range m.reports {
		if r.Owner == owner {
			reports = append(reports, r)
		}
	}
	return summarize(reports), nil
}

// DeleteReport removes a report
func (m *Memory) DeleteReport(ctx context.Context, id types.ReportID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reports[id]; !exists {
		return goerr.Wrap(model.ErrReportNotFound, "failed to delete report", goerr.V("id", id))
	}
	delete(m.reports, id)
	return nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}

func summarize(reports []*model.Report) []*model.ReportSummary {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	result := make([]*model.ReportSummary, 0, len(reports))
	for _, r := range reports {
		s := r.Summary()
		result = append(result, &s)
	}
	return result
}

type cacheEntry struct {
	dm        *model.DataModel
	expiresAt time.Time
}

// MemoryCache keeps the data model in process
type MemoryCache struct {
	mu    sync.RWMutex
	entry *cacheEntry
	now   func() time.Time
}

var _ interfaces.DataModelCache = &MemoryCache{}

// NewMemoryCache creates an empty in-process data model cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{now: time.Now}
}

// GetDataModel returns the cached data model if it has not expired
func (c *MemoryCache) GetDataModel(ctx context.Context) (*model.DataModel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entry == nil || !c.now().Before(c.entry.expiresAt) {
		return nil, nil
	}
	return c.entry.dm, nil
}

// PutDataModel caches the data model for ttl
func (c *MemoryCache) PutDataModel(ctx context.Context, dm *model.DataModel, ttl time.Duration) error {
	if dm == nil {
		return goerr.New("data model is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &cacheEntry{dm: dm, expiresAt: c.now().Add(ttl)}
	return nil
}
