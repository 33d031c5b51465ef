package model

import (
	"sort"
	"strconv"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

const (
	// AggregationTypeSum is the only aggregation the ranking service is asked for
	AggregationTypeSum = "SUM"

	// DateFilterClass tags range descriptors for the ranking service decoder
	DateFilterClass = "com.openlattice.analysis.requests.DateRangeFilter"
)

// RankingQuery is the request body of the ranking service
type RankingQuery struct {
	NeighborAggregations []NeighborAggregation `json:"neighborAggregations"`
}

// NeighborAggregation describes how one pair contributes to the score
type NeighborAggregation struct {
	AssociationTypeID       types.EntityTypeID                         `json:"associationTypeId"`
	NeighborTypeID          types.EntityTypeID                         `json:"neighborTypeId"`
	IsDst                   bool                                       `json:"isDst"`
	Weight                  float64                                    `json:"weight"`
	AssociationAggregations map[types.PropertyTypeID]Aggregation       `json:"associationAggregations"`
	EntitySetAggregations   map[types.PropertyTypeID]Aggregation       `json:"entitySetAggregations"`
	AssociationFilters      map[types.PropertyTypeID][]RangeDescriptor `json:"associationFilters,omitempty"`
	NeighborFilters         map[types.PropertyTypeID][]RangeDescriptor `json:"neighborFilters,omitempty"`
}

// Pair returns the pair the descriptor was built for
func (a *NeighborAggregation) Pair() EntityTypePair {
	return NewEntityTypePair(a.AssociationTypeID, a.NeighborTypeID)
}

// Aggregation is a weighted aggregation of one property
type Aggregation struct {
	Weight          float64 `json:"weight"`
	AggregationType string  `json:"aggregationType"`
}

// RangeDescriptor is an inclusive date bound on one property. Only the bounds that are
// set are serialized.
type RangeDescriptor struct {
	Class      string `json:"@class"`
	Lowerbound Date   `json:"lowerbound,omitempty"`
	Gte        bool   `json:"gte,omitempty"`
	Upperbound Date   `json:"upperbound,omitempty"`
	Lte        bool   `json:"lte,omitempty"`
}

// PairSlot ties a position in the ranking query to its pair and the property ids
// whose aggregated values appear in the response rows
type PairSlot struct {
	Index                 int                    `json:"index"`
	Pair                  EntityTypePair         `json:"pair"`
	AssociationProperties []types.PropertyTypeID `json:"associationProperties,omitempty"`
	EntityProperties      []types.PropertyTypeID `json:"entityProperties,omitempty"`
}

// CountField is the response field holding the event count of the slot
func (s *PairSlot) CountField() string {
	return "assoc_" + strconv.Itoa(s.Index) + "_count"
}

// AssociationField is the response field holding an aggregated association property
func (s *PairSlot) AssociationField(id types.PropertyTypeID) string {
	return "assoc_" + strconv.Itoa(s.Index) + "_" + id.String()
}

// EntityField is the response field holding an aggregated neighbor property
func (s *PairSlot) EntityField(id types.PropertyTypeID) string {
	return "entity_" + strconv.Itoa(s.Index) + "_" + id.String()
}

// PairIndex lists the slots of a ranking query in query order
type PairIndex []PairSlot

// Pairs returns the pairs in query order
func (x PairIndex) Pairs() []EntityTypePair {
	pairs := make([]EntityTypePair, len(x))
	for i, slot := range x {
		pairs[i] = slot.Pair
	}
	return pairs
}

// BuildRankingQuery turns the selected pairs into a ranking query. The returned
// PairIndex decodes the response rows of that query. Descriptor order matches specs.
func BuildRankingQuery(specs []EventFilterSpec, mode CountMode, ranges []DateRangeFilter, entityTypes map[types.EntityTypeID]*EntityType) (*RankingQuery, PairIndex) {
	if mode == nil {
		mode = EventCount{}
	}
	bounds := collectBounds(ranges)

	query := &RankingQuery{
		NeighborAggregations: make([]NeighborAggregation, 0, len(specs)),
	}
	index := make(PairIndex, 0, len(specs))

	for i, spec := range specs {
		pair := spec.Pair
		agg := NeighborAggregation{
			AssociationTypeID:       pair.AssociationTypeID,
			NeighborTypeID:          pair.NeighborTypeID,
			IsDst:                   spec.IsSource,
			AssociationAggregations: buildAggregations(mode, spec, pair.AssociationTypeID, entityTypes),
			EntitySetAggregations:   buildAggregations(mode, spec, pair.NeighborTypeID, entityTypes),
			AssociationFilters:      bounds.descriptors(pair.AssociationTypeID),
			NeighborFilters:         bounds.descriptors(pair.NeighborTypeID),
		}
		if _, ok := mode.(EventCount); ok {
			agg.Weight = spec.Weight
		}
		query.NeighborAggregations = append(query.NeighborAggregations, agg)

		index = append(index, PairSlot{
			Index:                 i,
			Pair:                  pair,
			AssociationProperties: sortedKeys(agg.AssociationAggregations),
			EntityProperties:      sortedKeys(agg.EntitySetAggregations),
		})
	}

	return query, index
}

func buildAggregations(mode CountMode, spec EventFilterSpec, entityTypeID types.EntityTypeID, entityTypes map[types.EntityTypeID]*EntityType) map[types.PropertyTypeID]Aggregation {
	result := make(map[types.PropertyTypeID]Aggregation)
	duration, ok := mode.(DurationCount)
	if !ok {
		return result
	}
	et, ok := entityTypes[entityTypeID]
	if !ok {
		return result
	}
	for _, pid := range et.Properties {
		w, ok := duration.Weights.Get(spec.Pair, pid)
		if !ok {
			continue
		}
		if weight := w * spec.Weight; weight != 0 {
			result[pid] = Aggregation{Weight: weight, AggregationType: AggregationTypeSum}
		}
	}
	return result
}

type dateBound struct {
	start Date
	end   Date
}

// boundMap is entity type -> property -> bounds in range order
type boundMap map[types.EntityTypeID]map[types.PropertyTypeID][]dateBound

func collectBounds(ranges []DateRangeFilter) boundMap {
	result := make(boundMap)
	for _, r := range ranges {
		if r.IsDraft() {
			continue
		}
		for _, key := range r.Properties {
			props, ok := result[key.EntityTypeID]
			if !ok {
				props = make(map[types.PropertyTypeID][]dateBound)
				result[key.EntityTypeID] = props
			}
			props[key.PropertyTypeID] = append(props[key.PropertyTypeID], dateBound{start: r.Start, end: r.End})
		}
	}
	return result
}

func (m boundMap) descriptors(entityTypeID types.EntityTypeID) map[types.PropertyTypeID][]RangeDescriptor {
	props, ok := m[entityTypeID]
	if !ok {
		return nil
	}
	result := make(map[types.PropertyTypeID][]RangeDescriptor)
	for pid, bounds := range props {
		for _, b := range bounds {
			d := RangeDescriptor{Class: DateFilterClass}
			if b.start.IsSet() {
				d.Lowerbound = b.start
				d.Gte = true
			}
			if b.end.IsSet() {
				d.Upperbound = b.end
				d.Lte = true
			}
			result[pid] = append(result[pid], d)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func sortedKeys(m map[types.PropertyTypeID]Aggregation) []types.PropertyTypeID {
	if len(m) == 0 {
		return nil
	}
	keys := make([]types.PropertyTypeID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
