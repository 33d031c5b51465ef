package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
)

func TestEntityTypePairJSON(t *testing.T) {
	pair := model.NewEntityTypePair("assoc", "neighbor")

	t.Run("object form", func(t *testing.T) {
		raw, err := json.Marshal(pair)
		gt.NoError(t, err).Required()
		gt.Equal(t, string(raw), `{"associationTypeId":"assoc","neighborTypeId":"neighbor"}`)

		var decoded model.EntityTypePair
		gt.NoError(t, json.Unmarshal(raw, &decoded)).Required()
		gt.Equal(t, decoded, pair)
	})

	t.Run("string form", func(t *testing.T) {
		var decoded model.EntityTypePair
		gt.NoError(t, json.Unmarshal([]byte(`"assoc|neighbor"`), &decoded)).Required()
		gt.Equal(t, decoded, pair)
	})

	t.Run("map key", func(t *testing.T) {
		raw, err := json.Marshal(map[model.EntityTypePair]int{pair: 1})
		gt.NoError(t, err).Required()
		gt.Equal(t, string(raw), `{"assoc|neighbor":1}`)
	})

	t.Run("invalid", func(t *testing.T) {
		var decoded model.EntityTypePair
		gt.Error(t, json.Unmarshal([]byte(`"no-separator"`), &decoded))
		gt.Error(t, json.Unmarshal([]byte(`"|neighbor"`), &decoded))
	})
}

func TestAvailableDurationProperties(t *testing.T) {
	dm := testDataModel()
	fqns := map[string]bool{"ol.durationdays": true}

	props, ok := model.AvailableDurationProperties(
		[]model.EventFilterSpec{{Pair: model.NewEntityTypePair("A", "B")}}, dm, fqns)
	gt.True(t, ok)
	gt.Equal(t, len(props[model.NewEntityTypePair("A", "B")]), 1)

	_, ok = model.AvailableDurationProperties(
		[]model.EventFilterSpec{
			{Pair: model.NewEntityTypePair("A", "B")},
			{Pair: model.NewEntityTypePair("A", "A")},
		}, dm, fqns)
	gt.False(t, ok)
}

func TestNewCountMode(t *testing.T) {
	gt.Equal(t, model.NewCountMode("", nil).CountType().String(), "EVENTS")

	mode := model.NewCountMode("DURATION", []model.DurationWeight{
		{Pair: model.NewEntityTypePair("A", "B"), PropertyTypeID: "days", Weight: 1},
	})
	duration, ok := mode.(model.DurationCount)
	gt.True(t, ok)
	w, found := duration.Weights.Get(model.NewEntityTypePair("A", "B"), "days")
	gt.True(t, found)
	gt.Equal(t, w, 1.0)
}
