package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"github.com/secmon-lab/holodeck/pkg/repository"
)

func newTestDataModel() *model.DataModel {
	return model.NewDataModel(
		[]*model.EntityType{{ID: "A", Title: "Arrest", Properties: []types.PropertyTypeID{"p1"}}},
		[]*model.PropertyType{{ID: "p1", Type: model.FQN{Namespace: "ol", Name: "datetime"}, Datatype: "DateTimeOffset"}},
		[]*model.EntitySet{{ID: "arrests", Title: "Arrests", EntityTypeID: "A"}},
	)
}

func testCache(t *testing.T, cache interfaces.DataModelCache) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		dm, err := cache.GetDataModel(ctx)
		gt.NoError(t, err)
		gt.V(t, dm).Nil()
	})

	t.Run("put and get", func(t *testing.T) {
		gt.NoError(t, cache.PutDataModel(ctx, newTestDataModel(), time.Minute)).Required()

		dm, err := cache.GetDataModel(ctx)
		gt.NoError(t, err).Required()
		gt.V(t, dm).NotNil()
		gt.Equal(t, dm.EntityTypes["A"].Title, "Arrest")
		gt.True(t, dm.PropertyTypes["p1"].IsDate())
		gt.Equal(t, dm.EntitySets["arrests"].EntityTypeID, types.EntityTypeID("A"))
	})

	t.Run("nil model", func(t *testing.T) {
		gt.Error(t, cache.PutDataModel(ctx, nil, time.Minute))
	})
}

func TestMemoryCache(t *testing.T) {
	testCache(t, repository.NewMemoryCache())

	t.Run("expires", func(t *testing.T) {
		cache := repository.NewMemoryCache()
		ctx := context.Background()
		gt.NoError(t, cache.PutDataModel(ctx, newTestDataModel(), 0)).Required()
		dm, err := cache.GetDataModel(ctx)
		gt.NoError(t, err)
		gt.V(t, dm).Nil()
	})
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	cache, err := repository.NewRedisCache(ctx, "redis://"+mr.Addr())
	gt.NoError(t, err).Required()
	defer cache.Close()

	testCache(t, cache)

	t.Run("expires", func(t *testing.T) {
		gt.NoError(t, cache.PutDataModel(ctx, newTestDataModel(), time.Minute)).Required()
		mr.FastForward(2 * time.Minute)
		dm, err := cache.GetDataModel(ctx)
		gt.NoError(t, err)
		gt.V(t, dm).Nil()
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := repository.NewRedisCache(ctx, "not-a-url://")
		gt.Error(t, err)
	})
}
