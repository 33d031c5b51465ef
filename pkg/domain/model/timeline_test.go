package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

func timelineFixture() (map[types.EntitySetID]*model.EntitySet, map[types.EntityTypeID]*model.EntityType, map[types.PropertyTypeID]*model.PropertyType) {
	dm := testDataModel()
	entitySets := map[types.EntitySetID]*model.EntitySet{
		"arrests": {ID: "arrests", Title: "Arrests", EntityTypeID: "A"},
		"charges": {ID: "charges", Title: "Charges", EntityTypeID: "B"},
	}
	return entitySets, dm.EntityTypes, dm.PropertyTypes
}

func TestBuildTimeline(t *testing.T) {
	entitySets, entityTypes, propertyTypes := timelineFixture()

	neighbors := []*model.NeighborRecord{
		{
			AssociationEntitySet: model.EntitySetRef{ID: "arrests", Title: "Arrests"},
			AssociationDetails: model.Entity{
				"openlattice.@id": {"a1"},
				"ol.arrestdate":   {"2019-05-01T10:00:00Z", "garbage"},
				"ol.note":         {"2030-01-01"},
			},
			NeighborEntitySet: &model.EntitySetRef{ID: "charges", Title: "Charges"},
			NeighborDetails: model.Entity{
				"openlattice.@id": {"c1"},
				"ol.chargedate":   {"2020-02-03"},
			},
		},
		{
			AssociationEntitySet: model.EntitySetRef{ID: "arrests", Title: "Arrests"},
			AssociationDetails: model.Entity{
				"openlattice.@id": {"a2"},
				"ol.arrestdate":   {"2020-07-01"},
			},
		},
	}

	entries := model.BuildTimeline(neighbors, entitySets, entityTypes, propertyTypes)

	t.Run("unparseable and non date values are dropped", func(t *testing.T) {
		gt.Equal(t, len(entries), 3)
	})

	t.Run("newest first", func(t *testing.T) {
		for i := 1; i < len(entries); i++ {
			gt.False(t, entries[i].Date.After(entries[i-1].Date))
		}
		gt.Equal(t, entries[0].EntityKeyID, types.EntityKeyID("a2"))
		gt.Equal(t, entries[1].EntityKeyID, types.EntityKeyID("c1"))
		gt.Equal(t, entries[1].EntitySetID, types.EntitySetID("charges"))
		gt.Equal(t, entries[1].PropertyTypeFQN, "ol.chargedate")
		gt.Equal(t, entries[2].EntityKeyID, types.EntityKeyID("a1"))
	})

	t.Run("neighbor side needs an entity set", func(t *testing.T) {
		orphan := []*model.NeighborRecord{{
			AssociationEntitySet: model.EntitySetRef{ID: "arrests"},
			NeighborDetails:      model.Entity{"ol.chargedate": {"2020-02-03"}},
		}}
		gt.Equal(t, len(model.BuildTimeline(orphan, entitySets, entityTypes, propertyTypes)), 0)
	})

	t.Run("ties keep record order", func(t *testing.T) {
		same := []*model.NeighborRecord{
			{AssociationEntitySet: model.EntitySetRef{ID: "arrests"}, AssociationDetails: model.Entity{"openlattice.@id": {"first"}, "ol.arrestdate": {"2020-01-01"}}},
			{AssociationEntitySet: model.EntitySetRef{ID: "arrests"}, AssociationDetails: model.Entity{"openlattice.@id": {"second"}, "ol.arrestdate": {"2020-01-01"}}},
		}
		got := model.BuildTimeline(same, entitySets, entityTypes, propertyTypes)
		gt.Equal(t, got[0].EntityKeyID, types.EntityKeyID("first"))
		gt.Equal(t, got[1].EntityKeyID, types.EntityKeyID("second"))
	})
}

func TestRenderTimeline(t *testing.T) {
	entitySets, entityTypes, propertyTypes := timelineFixture()
	neighbors := []*model.NeighborRecord{
		{
			AssociationEntitySet: model.EntitySetRef{ID: "arrests"},
			AssociationDetails:   model.Entity{"ol.arrestdate": {"2020-07-01", "2020-03-09", "2018-12-25"}},
			NeighborEntitySet:    &model.EntitySetRef{ID: "charges", Title: "Charges"},
		},
	}

	rows := model.RenderTimeline(model.BuildTimeline(neighbors, entitySets, entityTypes, propertyTypes))
	gt.Equal(t, len(rows), 3)
	gt.Equal(t, rows[0].Year, "2020")
	gt.Equal(t, rows[0].Day, "July 1")
	gt.Equal(t, rows[0].Title, "Charges")
	gt.Equal(t, rows[1].Year, "")
	gt.Equal(t, rows[1].Day, "March 9")
	gt.Equal(t, rows[2].Year, "2018")
}
