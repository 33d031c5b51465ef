package model

import (
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// EventFilterSpec is one selected relationship slot of a top utilizer search
type EventFilterSpec struct {
	Pair EntityTypePair `json:"pair" yaml:"pair" validate:"required"`
	// IsSource tells which side of the association is the anchor entity
	IsSource bool `json:"isSource" yaml:"isSource"`
	// Weight multiplies the event count, or the duration weights in duration mode
	Weight float64 `json:"weight" yaml:"weight"`
}

// CountMode is either EventCount or DurationCount
type CountMode interface {
	CountType() types.CountType
	sealed()
}

// EventCount scores utilizers by weighted event counts
type EventCount struct{}

// CountType returns types.CountTypeEvents
func (EventCount) CountType() types.CountType { return types.CountTypeEvents }
func (EventCount) sealed()                    {}

// DurationCount scores utilizers by weighted sums of duration properties
type DurationCount struct {
	Weights DurationWeights
}

// CountType returns types.CountTypeDuration
func (DurationCount) CountType() types.CountType { return types.CountTypeDuration }
func (DurationCount) sealed()                    {}

// DurationWeights holds per-pair, per-property duration weights
type DurationWeights map[EntityTypePair]map[types.PropertyTypeID]float64

// Set records a weight, creating the pair entry as needed
func (w DurationWeights) Set(pair EntityTypePair, property types.PropertyTypeID, weight float64) {
	props, ok := w[pair]
	if !ok {
		props = make(map[types.PropertyTypeID]float64)
		w[pair] = props
	}
	props[property] = weight
}

// Get returns the weight and whether one was recorded
func (w DurationWeights) Get(pair EntityTypePair, property types.PropertyTypeID) (float64, bool) {
	props, ok := w[pair]
	if !ok {
		return 0, false
	}
	weight, ok := props[property]
	return weight, ok
}

// DurationWeight is the list form of one DurationWeights entry
type DurationWeight struct {
	Pair           EntityTypePair       `json:"pair" yaml:"pair"`
	PropertyTypeID types.PropertyTypeID `json:"propertyTypeId" yaml:"propertyTypeId" validate:"required"`
	Weight         float64              `json:"weight" yaml:"weight"`
}

// NewCountMode builds the variant matching countType
func NewCountMode(countType types.CountType, weights []DurationWeight) CountMode {
	if countType != types.CountTypeDuration {
		return EventCount{}
	}
	dw := make(DurationWeights)
	for _, w := range weights {
		dw.Set(w.Pair, w.PropertyTypeID, w.Weight)
	}
	return DurationCount{Weights: dw}
}

// AvailableDurationProperties lists, for every selected pair, the properties of the
// association and neighbor types that can carry a duration weight. Duration mode is
// only offered when every selected pair has at least one such property.
func AvailableDurationProperties(specs []EventFilterSpec, dm *DataModel, durationFQNs map[string]bool) (map[EntityTypePair][]types.PropertyTypeID, bool) {
	result := make(map[EntityTypePair][]types.PropertyTypeID)
	for _, spec := range specs {
		var props []types.PropertyTypeID
		for _, etID := range []types.EntityTypeID{spec.Pair.AssociationTypeID, spec.Pair.NeighborTypeID} {
			et, ok := dm.EntityTypes[etID]
			if !ok {
				continue
			}
			for _, pid := range et.Properties {
				if durationFQNs[dm.PropertyFQN(pid)] {
					props = append(props, pid)
				}
			}
		}
		if len(props) > 0 {
			result[spec.Pair] = props
		}
	}
	return result, len(result) > 0 && len(result) == len(specs)
}
