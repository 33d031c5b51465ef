package model

import (
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// SearchConstraints pages a keyword search inside one entity set
type SearchConstraints struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
	Start      int    `json:"start" validate:"min=0"`
	MaxHits    int    `json:"maxHits" validate:"min=1,max=10000"`
	Fuzzy      bool   `json:"fuzzy"`
}

// SearchResult is one page of entity search hits
type SearchResult struct {
	NumHits int64    `json:"numHits"`
	Hits    []Entity `json:"hits"`
}

// EntitySetSearch pages the entity set catalog
type EntitySetSearch struct {
	SearchTerm          string `json:"searchTerm"`
	Start               int    `json:"start"`
	MaxHits             int    `json:"maxHits"`
	ShowAssociations    bool   `json:"-"`
	ShowAuditEntitySets bool   `json:"-"`
}

// EntitySetHit is one entity set found by a catalog search
type EntitySetHit struct {
	EntitySet     EntitySet      `json:"entitySet"`
	PropertyTypes []PropertyType `json:"propertyTypes"`
}

// EntitySetSearchResult is one page of the entity set catalog
type EntitySetSearchResult struct {
	NumHits int64          `json:"numHits"`
	Hits    []EntitySetHit `json:"hits"`
}

// Filter drops association and audit entity sets unless asked for
func (r *EntitySetSearchResult) Filter(showAssociations, showAudit bool) *EntitySetSearchResult {
	filtered := &EntitySetSearchResult{NumHits: r.NumHits}
	for _, hit := range r.Hits {
		if hit.EntitySet.IsAssociation() && !showAssociations {
			continue
		}
		if hit.EntitySet.IsAudit() && !showAudit {
			continue
		}
		filtered.Hits = append(filtered.Hits, hit)
	}
	return filtered
}

// NeighborsByEntity maps each entity to its neighbor records
type NeighborsByEntity map[types.EntityKeyID][]*NeighborRecord
