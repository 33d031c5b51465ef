package model

import (
	"time"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Report is the stored result of one top utilizer ranking
type Report struct {
	ID          types.ReportID                   `json:"id"`
	EntitySetID types.EntitySetID                `json:"entitySetId"`
	Owner       types.SessionKey                 `json:"owner"`
	Request     TopUtilizerRequest               `json:"request"`
	Query       *RankingQuery                    `json:"query"`
	PairIndex   PairIndex                        `json:"pairIndex"`
	Rows        []RankingRow                     `json:"rows"`
	Breakdown   CountBreakdown                   `json:"breakdown"`
	Locations   map[types.EntityKeyID][]Location `json:"locations,omitempty"`
	CreatedAt   time.Time                        `json:"createdAt"`
}

// ReportSummary is the list form of a report
type ReportSummary struct {
	ID          types.ReportID    `json:"id"`
	EntitySetID types.EntitySetID `json:"entitySetId"`
	NumResults  int               `json:"numResults"`
	CountType   types.CountType   `json:"countType"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Summary returns the list form
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		ID:          r.ID,
		EntitySetID: r.EntitySetID,
		NumResults:  len(r.Rows),
		CountType:   r.Request.Mode().CountType(),
		CreatedAt:   r.CreatedAt,
	}
}

// EntityKeyIDs lists the ranked entities in rank order
func (r *Report) EntityKeyIDs() []types.EntityKeyID {
	ids := make([]types.EntityKeyID, 0, len(r.Rows))
	for _, row := range r.Rows {
		if id := row.EntityKeyID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
