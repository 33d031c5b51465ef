package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

func TestBuildCountBreakdown(t *testing.T) {
	ab := model.NewEntityTypePair("A", "B")
	cd := model.NewEntityTypePair("C", "D")

	t.Run("event mode end to end", func(t *testing.T) {
		specs := []model.EventFilterSpec{
			{Pair: ab, Weight: 1},
			{Pair: cd, Weight: 2},
		}
		_, index := model.BuildRankingQuery(specs, model.EventCount{}, nil, testEntityTypes())
		rows := []model.RankingRow{
			{"id": "x", "score": 5.0, "assoc_0_count": 3.0, "assoc_1_count": 1.0},
		}

		breakdown := model.BuildCountBreakdown(index, rows)
		x := breakdown["x"]
		gt.V(t, x).NotNil()
		gt.Equal(t, x.Score, 5.0)
		gt.Equal(t, x.Pairs[ab], model.PairCounts{model.CountKey: 3})
		gt.Equal(t, x.Pairs[cd], model.PairCounts{model.CountKey: 1})
	})

	t.Run("round trip of duration fields", func(t *testing.T) {
		weights := model.DurationWeights{}
		weights.Set(ab, "pa1", 1)
		weights.Set(ab, "pb1", 1)
		_, index := model.BuildRankingQuery(
			[]model.EventFilterSpec{{Pair: ab, Weight: 1}},
			model.DurationCount{Weights: weights}, nil, testEntityTypes())

		rows := []model.RankingRow{{
			"self_entity_key_id": "e1",
			"score":              12.0,
			"assoc_0_count":      4.0,
			"assoc_0_pa1":        7.5,
			"entity_0_pb1":       2.0,
		}}

		breakdown := model.BuildCountBreakdown(index, rows)
		gt.Equal(t, breakdown["e1"].Pairs[ab], model.PairCounts{
			model.CountKey: 4,
			"pa1":          7.5,
			"pb1":          2,
		})
	})

	t.Run("missing fields stay absent", func(t *testing.T) {
		_, index := model.BuildRankingQuery(
			[]model.EventFilterSpec{{Pair: ab, Weight: 1}, {Pair: cd, Weight: 1}},
			model.EventCount{}, nil, testEntityTypes())
		rows := []model.RankingRow{{"id": "y", "score": 2.0, "assoc_0_count": 2.0}}

		y := model.BuildCountBreakdown(index, rows)["y"]
		_, ok := y.Pairs[cd][model.CountKey]
		gt.False(t, ok)
		gt.Equal(t, y.Pair(cd).Count(), 0.0)
		gt.Equal(t, y.Pair(model.NewEntityTypePair("X", "Y")).Count(), 0.0)
	})

	t.Run("entity with no pairs has only score", func(t *testing.T) {
		rows := []model.RankingRow{{"openlattice.@id": []any{"z"}, "score": 1.0}}
		z := model.BuildCountBreakdown(nil, rows)["z"]
		gt.Equal(t, z.Score, 1.0)
		gt.Equal(t, len(z.Pairs), 0)
	})

	t.Run("rows without id are skipped", func(t *testing.T) {
		rows := []model.RankingRow{{"score": 1.0}}
		gt.Equal(t, len(model.BuildCountBreakdown(nil, rows)), 0)
	})

	t.Run("numbers decoded from json", func(t *testing.T) {
		var rows []model.RankingRow
		gt.NoError(t, json.Unmarshal([]byte(`[{"self_entity_key_id":"j","score":3,"assoc_0_count":[2]}]`), &rows)).Required()
		_, index := model.BuildRankingQuery([]model.EventFilterSpec{{Pair: ab, Weight: 1}}, model.EventCount{}, nil, testEntityTypes())

		j := model.BuildCountBreakdown(index, rows)[types.EntityKeyID("j")]
		gt.Equal(t, j.Score, 3.0)
		gt.Equal(t, j.Pair(ab).Count(), 2.0)
	})
}

func TestEntityBreakdownJSON(t *testing.T) {
	ab := model.NewEntityTypePair("A", "B")
	b := &model.EntityBreakdown{
		Score: 5,
		Pairs: map[model.EntityTypePair]model.PairCounts{ab: {model.CountKey: 3}},
	}

	raw, err := json.Marshal(b)
	gt.NoError(t, err).Required()
	gt.Equal(t, string(raw), `{"A|B":{"COUNT":3},"score":5}`)

	var decoded model.EntityBreakdown
	gt.NoError(t, json.Unmarshal(raw, &decoded)).Required()
	gt.Equal(t, decoded.Score, 5.0)
	gt.Equal(t, decoded.Pairs[ab], model.PairCounts{model.CountKey: 3})
}

func TestRankingRowMerge(t *testing.T) {
	row := model.RankingRow{"score": 4.0, "self_entity_key_id": "e1"}
	row.Merge(model.Entity{
		"openlattice.@id":    {"e1"},
		"score":              {"ignored"},
		"nc.PersonGivenName": {"Ada"},
	})

	gt.Equal(t, row.Score(), 4.0)
	gt.Equal(t, row["nc.PersonGivenName"], any([]any{"Ada"}))
	gt.Equal(t, row.EntityKeyID(), types.EntityKeyID("e1"))
}
