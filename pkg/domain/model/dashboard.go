package model

import (
	"sort"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// HistogramBin counts the entities that had NumEvents events of a pair
type HistogramBin struct {
	NumEvents   float64 `json:"numEvents"`
	NumEntities int     `json:"numEntities"`
}

// PairSummary summarizes one pair across all ranked entities
type PairSummary struct {
	Pair            EntityTypePair `json:"pair"`
	EntitiesWithAny int            `json:"entitiesWithAny"`
	Histogram       []HistogramBin `json:"histogram"`
}

// ParetoPoint is one ranked entity on the pareto chart
type ParetoPoint struct {
	Rank                 int               `json:"rank"`
	EntityKeyID          types.EntityKeyID `json:"entityKeyId"`
	Count                float64           `json:"count"`
	IndividualPercentage float64           `json:"individualPercentage"`
	CumulativePercentage float64           `json:"cumulativePercentage"`
}

// Dashboard is the summary view of a report
type Dashboard struct {
	EntitiesWithAll int           `json:"entitiesWithAll"`
	Pairs           []PairSummary `json:"pairs"`
	Pareto          []ParetoPoint `json:"pareto"`
}

// BuildDashboard summarizes the breakdown of ranked entities given in rank order
func BuildDashboard(index PairIndex, ranked []types.EntityKeyID, breakdown CountBreakdown) *Dashboard {
	d := &Dashboard{
		Pairs:  make([]PairSummary, 0, len(index)),
		Pareto: make([]ParetoPoint, 0, len(ranked)),
	}

	for _, slot := range index {
		summary := PairSummary{Pair: slot.Pair}
		bins := make(map[float64]int)
		for _, id := range ranked {
			b, ok := breakdown[id]
			if !ok {
				continue
			}
			count := b.Pair(slot.Pair).Count()
			if count > 0 {
				summary.EntitiesWithAny++
			}
			bins[count]++
		}
		for n, c := range bins {
			summary.Histogram = append(summary.Histogram, HistogramBin{NumEvents: n, NumEntities: c})
		}
		sort.Slice(summary.Histogram, func(i, j int) bool {
			return summary.Histogram[i].NumEvents < summary.Histogram[j].NumEvents
		})
		d.Pairs = append(d.Pairs, summary)
	}

	var total float64
	for _, id := range ranked {
		b, ok := breakdown[id]
		if !ok {
			continue
		}
		hasAll := true
		for _, slot := range index {
			if b.Pair(slot.Pair).Count() == 0 {
				hasAll = false
				break
			}
		}
		if hasAll {
			d.EntitiesWithAll++
		}
		total += b.Score
	}

	var cumulative float64
	for _, id := range ranked {
		b, ok := breakdown[id]
		if !ok {
			continue
		}
		point := ParetoPoint{
			Rank:        len(d.Pareto) + 1,
			EntityKeyID: id,
			Count:       b.Score,
		}
		if total > 0 {
			cumulative += b.Score
			point.IndividualPercentage = b.Score * 100 / total
			point.CumulativePercentage = cumulative * 100 / total
		}
		d.Pareto = append(d.Pareto, point)
	}

	return d
}
