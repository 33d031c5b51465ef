package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"github.com/secmon-lab/holodeck/pkg/utils/async"
)

// Dispatcher runs a chained load after the caller has been answered
type Dispatcher func(ctx context.Context, handler func(ctx context.Context) error)

// TopUtilizersUseCase runs top utilizer rankings
type TopUtilizersUseCase struct {
	client     interfaces.LatticeClient
	repo       interfaces.Repository
	edm        *DataModelUseCase
	workspaces *Workspaces
	validate   *validator.Validate
	dispatch   Dispatcher
	now        func() time.Time
}

// TopUtilizersOption configures TopUtilizersUseCase
type TopUtilizersOption func(*TopUtilizersUseCase)

// WithDispatcher replaces the asynchronous dispatcher of the neighbor load
func WithDispatcher(d Dispatcher) TopUtilizersOption {
	return func(uc *TopUtilizersUseCase) {
		uc.dispatch = d
	}
}

// WithClock replaces the clock stamping reports
func WithClock(now func() time.Time) TopUtilizersOption {
	return func(uc *TopUtilizersUseCase) {
		uc.now = now
	}
}

// NewTopUtilizersUseCase creates a new TopUtilizersUseCase instance
func NewTopUtilizersUseCase(client interfaces.LatticeClient, repo interfaces.Repository, edm *DataModelUseCase, workspaces *Workspaces, opts ...TopUtilizersOption) *TopUtilizersUseCase {
	uc := &TopUtilizersUseCase{
		client:     client,
		repo:       repo,
		edm:        edm,
		workspaces: workspaces,
		validate:   validator.New(),
		dispatch:   async.Dispatch,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ValidateRequest checks the request payload and the date range invariants
func (uc *TopUtilizersUseCase) ValidateRequest(req *model.TopUtilizerRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return goerr.Wrap(err, "invalid top utilizer request", goerr.T(model.ErrTagValidation))
	}
	if err := model.ValidateDateRanges(req.DateRanges); err != nil {
		return err
	}
	return nil
}

// Run ranks the entity set, stores the report on success and starts loading the
// neighbors of the ranked entities in the background. Only the newest run of a
// session is recorded in its workspace.
func (uc *TopUtilizersUseCase) Run(ctx context.Context, req *model.TopUtilizerRequest) (*model.Report, error) {
	ws := uc.workspaces.For(ctx)
	id := ws.TopUtilizers.Request()
	defer ws.TopUtilizers.Settle(id)

	logger := ctxlog.From(ctx).With("correlationId", id, "entitySetId", req.EntitySetID)
	ctx = ctxlog.With(ctx, logger)

	report, err := uc.rank(ctx, ws.Key, req)
	if err != nil {
		if !ws.TopUtilizers.Fail(id, err) {
			logger.Info("stale top utilizer failure ignored", "error", err)
		}
		return nil, err
	}

	if !ws.TopUtilizers.Succeed(id, report) {
		logger.Info("stale top utilizer result ignored", "reportId", report.ID)
		return report, nil
	}

	uc.dispatch(ctx, func(ctx context.Context) error {
		return uc.loadNeighbors(ctx, ws, report)
	})
	return report, nil
}

func (uc *TopUtilizersUseCase) rank(ctx context.Context, owner types.SessionKey, req *model.TopUtilizerRequest) (*model.Report, error) {
	if err := uc.ValidateRequest(req); err != nil {
		return nil, err
	}

	dm, err := uc.edm.Load(ctx)
	if err != nil {
		return nil, err
	}

	query, index := model.BuildRankingQuery(req.EventFilters, req.Mode(), req.DateRanges, dm.EntityTypes)

	rows, err := uc.client.GetTopUtilizers(ctx, req.EntitySetID, req.NumResults, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get top utilizers")
	}

	report := &model.Report{
		ID:          types.NewReportID(),
		EntitySetID: req.EntitySetID,
		Owner:       owner,
		Request:     *req,
		Query:       query,
		PairIndex:   index,
		Rows:        rows,
		CreatedAt:   uc.now(),
	}

	ids := report.EntityKeyIDs()
	if len(ids) > 0 {
		entities, err := uc.client.GetEntitySetData(ctx, req.EntitySetID, ids)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get entity set data")
		}
		byID := make(map[types.EntityKeyID]model.Entity, len(entities))
		for _, e := range entities {
			byID[e.EntityKeyID()] = e
		}
		for _, row := range rows {
			if e, ok := byID[row.EntityKeyID()]; ok {
				row.Merge(e)
			}
		}
		report.Locations = model.LocationsByEntity(entities)
	}

	report.Breakdown = model.BuildCountBreakdown(index, rows)

	if err := uc.repo.PutReport(ctx, report); err != nil {
		return nil, goerr.Wrap(err, "failed to save report")
	}

	ctxlog.From(ctx).Info("top utilizers ranked",
		"reportId", report.ID,
		"numResults", len(rows),
		"countType", req.Mode().CountType(),
	)
	return report, nil
}

func (uc *TopUtilizersUseCase) loadNeighbors(ctx context.Context, ws *model.Workspace, report *model.Report) error {
	id := ws.TopUtilizerNeighbors.Request()
	defer ws.TopUtilizerNeighbors.Settle(id)

	neighbors, err := uc.client.SearchEntityNeighborsBulk(ctx, report.EntitySetID, report.EntityKeyIDs())
	if err != nil {
		ws.TopUtilizerNeighbors.Fail(id, err)
		return goerr.Wrap(err, "failed to load top utilizer neighbors", goerr.V("reportId", report.ID))
	}
	if !ws.TopUtilizerNeighbors.Succeed(id, neighbors) {
		ctxlog.From(ctx).Info("stale top utilizer neighbors ignored", "reportId", report.ID)
	}
	return nil
}

// SearchOptions is the form state derived from the current selection
type SearchOptions struct {
	DurationProperties map[model.EntityTypePair][]types.PropertyTypeID `json:"durationProperties"`
	DurationAvailable  bool                                            `json:"durationAvailable"`
	DateRanges         []DateRangeTab                                  `json:"dateRanges"`
	Viewing            int                                             `json:"viewing"`
	CanAddRange        bool                                            `json:"canAddRange"`
	DateProperties     []model.DatePropertyOption                      `json:"dateProperties"`
}

// DateRangeTab is one range of the form with its tab text
type DateRangeTab struct {
	Label string                `json:"label"`
	Range model.DateRangeFilter `json:"range"`
}

// SearchOptionsRequest is the current selection of the top utilizer form. Edits are
// applied in order after switching to the viewed range.
type SearchOptionsRequest struct {
	EventFilters []model.EventFilterSpec `json:"eventFilters"`
	DateRanges   []model.DateRangeFilter `json:"dateRanges"`
	Viewing      int                     `json:"viewing"`
	Edits        []model.DateRangeEdit   `json:"edits,omitempty" validate:"dive"`
}

// Options applies the form edits to the date ranges, then lists the duration
// properties of the selected pairs and the date property checkboxes of the viewed range
func (uc *TopUtilizersUseCase) Options(ctx context.Context, req *SearchOptionsRequest) (*SearchOptions, error) {
	dm, err := uc.edm.Load(ctx)
	if err != nil {
		return nil, err
	}

	set := model.NewDateRangeSet()
	if len(req.DateRanges) > 0 {
		set.Ranges = append([]model.DateRangeFilter(nil), req.DateRanges...)
	}
	if err := set.View(req.Viewing); err != nil {
		return nil, err
	}
	for i, edit := range req.Edits {
		if err := set.Apply(edit); err != nil {
			return nil, goerr.Wrap(err, "failed to edit date ranges",
				goerr.V("edit", i),
				goerr.V("action", edit.Action))
		}
	}

	tabs := make([]DateRangeTab, len(set.Ranges))
	for i := range set.Ranges {
		tabs[i] = DateRangeTab{Label: set.Ranges[i].Label(), Range: set.Ranges[i]}
	}

	props, available := model.AvailableDurationProperties(req.EventFilters, dm, model.DefaultDurationFQNs)
	return &SearchOptions{
		DurationProperties: props,
		DurationAvailable:  available,
		DateRanges:         tabs,
		Viewing:            set.Viewing,
		CanAddRange:        set.CanAddRange(),
		DateProperties:     set.Options(req.EventFilters, dm),
	}, nil
}
