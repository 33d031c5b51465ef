package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// CountKey holds the event count inside a pair's breakdown
const CountKey = "COUNT"

// PairCounts maps a property id, or CountKey, to its aggregated value. Fields missing
// from the response are absent.
type PairCounts map[string]float64

// Get returns the value of key, 0 when absent
func (c PairCounts) Get(key string) float64 {
	return c[key]
}

// Count returns the event count, 0 when absent
func (c PairCounts) Count() float64 {
	return c[CountKey]
}

// EntityBreakdown is the score of one entity and its per-pair values
type EntityBreakdown struct {
	Score float64
	Pairs map[EntityTypePair]PairCounts
}

// Pair returns the values of a pair, empty when absent
func (b *EntityBreakdown) Pair(pair EntityTypePair) PairCounts {
	if c, ok := b.Pairs[pair]; ok {
		return c
	}
	return PairCounts{}
}

// MarshalJSON flattens the breakdown to {"score": n, "assocId|neighborId": {...}}
func (b *EntityBreakdown) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(b.Pairs)+1)
	m[FieldScore] = b.Score
	for pair, counts := range b.Pairs {
		m[pair.String()] = counts
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the flattened form
func (b *EntityBreakdown) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return goerr.Wrap(err, "failed to decode breakdown")
	}
	b.Pairs = make(map[EntityTypePair]PairCounts)
	for key, value := range raw {
		if key == FieldScore {
			if err := json.Unmarshal(value, &b.Score); err != nil {
				return goerr.Wrap(err, "failed to decode score")
			}
			continue
		}
		var pair EntityTypePair
		if err := pair.UnmarshalText([]byte(key)); err != nil {
			return err
		}
		var counts PairCounts
		if err := json.Unmarshal(value, &counts); err != nil {
			return goerr.Wrap(err, "failed to decode pair counts", goerr.V("pair", key))
		}
		b.Pairs[pair] = counts
	}
	return nil
}

// CountBreakdown maps each ranked entity to its breakdown
type CountBreakdown map[types.EntityKeyID]*EntityBreakdown

// BuildCountBreakdown decodes ranking rows with the index returned alongside the query.
// Rows without an entity id are skipped.
func BuildCountBreakdown(index PairIndex, rows []RankingRow) CountBreakdown {
	breakdown := make(CountBreakdown, len(rows))
	for _, row := range rows {
		id := row.EntityKeyID()
		if id == "" {
			continue
		}

		entity := &EntityBreakdown{
			Score: row.Score(),
			Pairs: make(map[EntityTypePair]PairCounts, len(index)),
		}
		for i := range index {
			slot := &index[i]
			counts := PairCounts{}
			if v, ok := row.Number(slot.CountField()); ok {
				counts[CountKey] = v
			}
			for _, pid := range slot.AssociationProperties {
				if v, ok := row.Number(slot.AssociationField(pid)); ok {
					counts[pid.String()] = v
				}
			}
			for _, pid := range slot.EntityProperties {
				if v, ok := row.Number(slot.EntityField(pid)); ok {
					counts[pid.String()] = v
				}
			}
			entity.Pairs[slot.Pair] = counts
		}
		breakdown[id] = entity
	}
	return breakdown
}
