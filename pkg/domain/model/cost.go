package model

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Duration property FQNs offered for duration-weighted scoring
const (
	DurationDaysFQN        = "ol.durationdays"
	TimeServedDaysFQN      = "ol.timeserveddays"
	EMSMinutesPerPersonFQN = "ol.emsminutesperperson"
)

// DefaultDurationFQNs are the properties that can carry a duration weight
var DefaultDurationFQNs = map[string]bool{
	DurationDaysFQN:        true,
	TimeServedDaysFQN:      true,
	EMSMinutesPerPersonFQN: true,
}

// DefaultCostRates are the per-unit costs applied when no rate is configured
func DefaultCostRates() map[string]float64 {
	return map[string]float64{
		DurationDaysFQN:        99.45,
		TimeServedDaysFQN:      99.45,
		EMSMinutesPerPersonFQN: 8.33,
		"psa.ftaScale":         15.2,
		"psa.ncaScale":         42,
	}
}

// CostRate is the per-unit cost of one property of one pair
type CostRate struct {
	Pair           EntityTypePair       `json:"pair" yaml:"pair"`
	PropertyTypeID types.PropertyTypeID `json:"propertyTypeId" yaml:"propertyTypeId" validate:"required"`
	Rate           float64              `json:"rate" yaml:"rate" validate:"min=0"`
}

// CostRates resolves the cost of a property, preferring pair-specific rates over the
// defaults keyed by property FQN
type CostRates struct {
	Defaults  map[string]float64
	overrides map[EntityTypePair]map[types.PropertyTypeID]float64
}

// NewCostRates creates CostRates with the given defaults. Nil defaults use
// DefaultCostRates.
func NewCostRates(defaults map[string]float64) *CostRates {
	if defaults == nil {
		defaults = DefaultCostRates()
	}
	return &CostRates{
		Defaults:  defaults,
		overrides: make(map[EntityTypePair]map[types.PropertyTypeID]float64),
	}
}

// With returns a copy with the rates applied on top
func (c *CostRates) With(rates []CostRate) (*CostRates, error) {
	clone := NewCostRates(c.Defaults)
	for pair, props := range c.overrides {
		for pid, rate := range props {
			clone.set(pair, pid, rate)
		}
	}
	for _, r := range rates {
		if r.Rate < 0 {
			return nil, goerr.New("cost rate must not be negative",
				goerr.V("pair", r.Pair.String()),
				goerr.V("propertyTypeId", r.PropertyTypeID),
				goerr.V("rate", r.Rate),
				goerr.T(ErrTagValidation))
		}
		clone.set(r.Pair, r.PropertyTypeID, r.Rate)
	}
	return clone, nil
}

func (c *CostRates) set(pair EntityTypePair, pid types.PropertyTypeID, rate float64) {
	props, ok := c.overrides[pair]
	if !ok {
		props = make(map[types.PropertyTypeID]float64)
		c.overrides[pair] = props
	}
	props[pid] = rate
}

// Rate returns the cost of one unit of the property
func (c *CostRates) Rate(pair EntityTypePair, pid types.PropertyTypeID, dm *DataModel) float64 {
	if props, ok := c.overrides[pair]; ok {
		if rate, ok := props[pid]; ok {
			return rate
		}
	}
	if dm == nil {
		return 0
	}
	return c.Defaults[dm.PropertyFQN(pid)]
}

// EntityResources is the resource usage of one ranked entity
type EntityResources struct {
	EntityKeyID types.EntityKeyID          `json:"entityKeyId"`
	Score       float64                    `json:"score"`
	Values      map[EntityTypePair]float64 `json:"values"`
	Total       float64                    `json:"total"`
}

// ComputeResources measures each ranked entity per pair. EVENTS uses the event count,
// DURATION sums the aggregated property values and COST weighs them by rate.
func ComputeResources(report *Report, resourceType types.ResourceType, rates *CostRates, dm *DataModel) ([]EntityResources, error) {
	if !resourceType.IsValid() {
		return nil, goerr.New("unknown resource type",
			goerr.V("resourceType", resourceType),
			goerr.T(ErrTagValidation))
	}
	if rates == nil {
		rates = NewCostRates(nil)
	}

	result := make([]EntityResources, 0, len(report.Rows))
	for _, id := range report.EntityKeyIDs() {
		b, ok := report.Breakdown[id]
		if !ok {
			continue
		}
		res := EntityResources{
			EntityKeyID: id,
			Score:       b.Score,
			Values:      make(map[EntityTypePair]float64, len(report.PairIndex)),
		}
		for _, slot := range report.PairIndex {
			counts := b.Pair(slot.Pair)
			var v float64
			switch resourceType {
			case types.ResourceTypeEvents:
				v = counts.Count()
			case types.ResourceTypeDuration:
				for _, pid := range slotProperties(slot) {
					v += counts.Get(pid.String())
				}
			case types.ResourceTypeCost:
				for _, pid := range slotProperties(slot) {
					v += counts.Get(pid.String()) * rates.Rate(slot.Pair, pid, dm)
				}
			}
			res.Values[slot.Pair] += v
			res.Total += v
		}
		result = append(result, res)
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Total > result[j].Total })
	return result, nil
}

// slotProperties lists each property id of the slot once. The breakdown keeps one
// value per property id even when both sides of the pair declare it.
func slotProperties(slot PairSlot) []types.PropertyTypeID {
	seen := make(map[types.PropertyTypeID]bool, len(slot.AssociationProperties)+len(slot.EntityProperties))
	var props []types.PropertyTypeID
	for _, ids := range [][]types.PropertyTypeID{slot.AssociationProperties, slot.EntityProperties} {
		for _, pid := range ids {
			if !seen[pid] {
				seen[pid] = true
				props = append(props, pid)
			}
		}
	}
	return props
}
