package usecase

import (
	"context"

	"github.com/go-playground/validator"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize is the number of entity sets returned per catalog page
const DefaultPageSize = 24

// ExploreUseCase browses entity sets, their data and the neighbors of one entity
type ExploreUseCase struct {
	client     interfaces.LatticeClient
	edm        *DataModelUseCase
	workspaces *Workspaces
	validate   *validator.Validate
}

// NewExploreUseCase creates a new ExploreUseCase instance
func NewExploreUseCase(client interfaces.LatticeClient, edm *DataModelUseCase, workspaces *Workspaces) *ExploreUseCase {
	return &ExploreUseCase{
		client:     client,
		edm:        edm,
		workspaces: workspaces,
		validate:   validator.New(),
	}
}

// SearchEntitySets pages the entity set catalog. page starts at 1.
func (uc *ExploreUseCase) SearchEntitySets(ctx context.Context, term string, page int, showAssociations, showAudit bool) (*model.EntitySetSearchResult, error) {
	if page < 1 {
		page = 1
	}
	search := model.EntitySetSearch{
		SearchTerm:          term,
		Start:               (page - 1) * DefaultPageSize,
		MaxHits:             DefaultPageSize,
		ShowAssociations:    showAssociations,
		ShowAuditEntitySets: showAudit,
	}
	if search.SearchTerm == "" {
		search.SearchTerm = "*"
	}

	result, err := uc.client.SearchEntitySets(ctx, search)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search entity sets", goerr.V("term", term))
	}
	return result.Filter(showAssociations, showAudit), nil
}

// GetNeighborTypes lists the association/neighbor pairs an entity set takes part in
func (uc *ExploreUseCase) GetNeighborTypes(ctx context.Context, entitySetID types.EntitySetID) ([]model.NeighborType, error) {
	neighborTypes, err := uc.client.GetNeighborTypes(ctx, entitySetID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get neighbor types", goerr.V("entitySetId", entitySetID))
	}
	return neighborTypes, nil
}

// SearchEntitySetData runs a keyword search inside one entity set
func (uc *ExploreUseCase) SearchEntitySetData(ctx context.Context, entitySetID types.EntitySetID, constraints model.SearchConstraints) (*model.SearchResult, error) {
	if err := uc.validate.Struct(constraints); err != nil {
		return nil, goerr.Wrap(err, "invalid search constraints", goerr.T(model.ErrTagValidation))
	}

	ws := uc.workspaces.For(ctx)
	id := ws.SearchData.Request()
	defer ws.SearchData.Settle(id)

	result, err := uc.client.SearchEntitySetData(ctx, entitySetID, constraints)
	if err != nil {
		ws.SearchData.Fail(id, err)
		return nil, goerr.Wrap(err, "failed to search entity set data", goerr.V("entitySetId", entitySetID))
	}
	if !ws.SearchData.Succeed(id, result) {
		ctxlog.From(ctx).Info("stale search result ignored", "correlationId", id)
	}
	return result, nil
}

// GetEntityNeighbors loads the neighbor records of one entity
func (uc *ExploreUseCase) GetEntityNeighbors(ctx context.Context, entitySetID types.EntitySetID, entityKeyID types.EntityKeyID) ([]*model.NeighborRecord, error) {
	ws := uc.workspaces.For(ctx)
	id := ws.EntityNeighbors.Request()
	defer ws.EntityNeighbors.Settle(id)

	neighbors, err := uc.client.SearchEntityNeighbors(ctx, entitySetID, entityKeyID)
	if err != nil {
		ws.EntityNeighbors.Fail(id, err)
		return nil, goerr.Wrap(err, "failed to get entity neighbors",
			goerr.V("entitySetId", entitySetID),
			goerr.V("entityKeyId", entityKeyID))
	}
	if !ws.EntityNeighbors.Succeed(id, neighbors) {
		ctxlog.From(ctx).Info("stale neighbor result ignored", "correlationId", id)
	}
	return neighbors, nil
}

// Timeline is the dated history of one entity
type Timeline struct {
	Entries []model.NeighborDateEntry `json:"entries"`
	Rows    []model.TimelineRow       `json:"rows"`
}

// GetTimeline loads the neighbors of one entity and orders their dated values newest
// first
func (uc *ExploreUseCase) GetTimeline(ctx context.Context, entitySetID types.EntitySetID, entityKeyID types.EntityKeyID) (*Timeline, error) {
	var (
		dm        *model.DataModel
		neighbors []*model.NeighborRecord
	)

	eg, gCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		dm, err = uc.edm.Load(gCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		neighbors, err = uc.client.SearchEntityNeighbors(gCtx, entitySetID, entityKeyID)
		if err != nil {
			return goerr.Wrap(err, "failed to get entity neighbors",
				goerr.V("entitySetId", entitySetID),
				goerr.V("entityKeyId", entityKeyID))
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	entries := model.BuildTimeline(neighbors, dm.EntitySets, dm.EntityTypes, dm.PropertyTypes)
	return &Timeline{
		Entries: entries,
		Rows:    model.RenderTimeline(entries),
	}, nil
}
