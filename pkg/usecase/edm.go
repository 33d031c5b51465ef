package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultDataModelTTL is how long a loaded data model is reused
const DefaultDataModelTTL = 10 * time.Minute

// DataModelUseCase loads the entity data model, sharing one upstream load between concurrent
// callers and caching the result
type DataModelUseCase struct {
	client interfaces.LatticeClient
	cache  interfaces.DataModelCache
	ttl    time.Duration
	group  singleflight.Group
}

// NewDataModelUseCase creates a DataModelUseCase. A nil cache disables caching.
func NewDataModelUseCase(client interfaces.LatticeClient, cache interfaces.DataModelCache, ttl time.Duration) *DataModelUseCase {
	if ttl <= 0 {
		ttl = DefaultDataModelTTL
	}
	return &DataModelUseCase{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

// Load returns the cached data model or loads it from upstream
func (uc *DataModelUseCase) Load(ctx context.Context) (*model.DataModel, error) {
	if uc.cache != nil {
		dm, err := uc.cache.GetDataModel(ctx)
		if err != nil {
			ctxlog.From(ctx).Warn("failed to read data model cache", "error", err)
		} else if dm != nil {
			return dm, nil
		}
	}

	result, err, _ := uc.group.Do("edm", func() (any, error) {
		return uc.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.DataModel), nil
}

func (uc *DataModelUseCase) fetch(ctx context.Context) (*model.DataModel, error) {
	var (
		entityTypes   []*model.EntityType
		propertyTypes []*model.PropertyType
		entitySets    []*model.EntitySet
	)

	eg, gCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		entityTypes, err = uc.client.GetEntityTypes(gCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		propertyTypes, err = uc.client.GetPropertyTypes(gCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		entitySets, err = uc.client.GetEntitySets(gCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load data model")
	}

	dm := model.NewDataModel(entityTypes, propertyTypes, entitySets)
	ctxlog.From(ctx).Debug("data model loaded",
		"entityTypes", len(dm.EntityTypes),
		"propertyTypes", len(dm.PropertyTypes),
		"entitySets", len(dm.EntitySets),
	)

	if uc.cache != nil {
		if err := uc.cache.PutDataModel(ctx, dm, uc.ttl); err != nil {
			ctxlog.From(ctx).Warn("failed to write data model cache", "error", err)
		}
	}
	return dm, nil
}
