package interfaces

//go:generate moq -out mocks/lattice_mock.go -pkg mocks . LatticeClient

import (
	"context"

	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// LatticeClient calls the data, search and analysis API. Every call forwards the
// caller's token found in the context.
type LatticeClient interface {
	GetTopUtilizers(ctx context.Context, entitySetID types.EntitySetID, numResults int, query *model.RankingQuery) ([]model.RankingRow, error)
	GetNeighborTypes(ctx context.Context, entitySetID types.EntitySetID) ([]model.NeighborType, error)
	GetEntitySetData(ctx context.Context, entitySetID types.EntitySetID, ids []types.EntityKeyID) ([]model.Entity, error)
	SearchEntityNeighbors(ctx context.Context, entitySetID types.EntitySetID, id types.EntityKeyID) ([]*model.NeighborRecord, error)
	SearchEntityNeighborsBulk(ctx context.Context, entitySetID types.EntitySetID, ids []types.EntityKeyID) (model.NeighborsByEntity, error)
	SearchEntitySetData(ctx context.Context, entitySetID types.EntitySetID, constraints model.SearchConstraints) (*model.SearchResult, error)
	SearchEntitySets(ctx context.Context, search model.EntitySetSearch) (*model.EntitySetSearchResult, error)

	GetEntityTypes(ctx context.Context) ([]*model.EntityType, error)
	GetPropertyTypes(ctx context.Context) ([]*model.PropertyType, error)
	GetEntitySets(ctx context.Context) ([]*model.EntitySet, error)
}
