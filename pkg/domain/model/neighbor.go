package model

import (
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Entity is one data record keyed by property FQN. Every property holds a list of values.
type Entity map[string][]any

// EntityKeyID returns the record's stable identifier, or "" when missing
func (e Entity) EntityKeyID() types.EntityKeyID {
	return types.EntityKeyID(firstString(e[FieldOpenLatticeID]))
}

// Strings returns the string values of a property
func (e Entity) Strings(fqn string) []string {
	var result []string
	for _, v := range e[fqn] {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// EntitySetRef is the short form of an entity set embedded in neighbor records
type EntitySetRef struct {
	ID           types.EntitySetID  `json:"id"`
	Name         string             `json:"name,omitempty"`
	Title        string             `json:"title"`
	EntityTypeID types.EntityTypeID `json:"entityTypeId,omitempty"`
}

// NeighborRecord is one association between an entity and a neighbor
type NeighborRecord struct {
	AssociationEntitySet EntitySetRef  `json:"associationEntitySet"`
	AssociationDetails   Entity        `json:"associationDetails"`
	NeighborEntitySet    *EntitySetRef `json:"neighborEntitySet,omitempty"`
	NeighborDetails      Entity        `json:"neighborDetails,omitempty"`
	NeighborID           string        `json:"neighborId,omitempty"`
}

// NeighborType is one association/neighbor combination observed around an entity set
type NeighborType struct {
	AssociationEntityType EntityType `json:"associationEntityType"`
	NeighborEntityType    EntityType `json:"neighborEntityType"`
	Src                   bool       `json:"src"`
}

// Pair returns the association/neighbor pair of the neighbor type
func (n *NeighborType) Pair() EntityTypePair {
	return NewEntityTypePair(n.AssociationEntityType.ID, n.NeighborEntityType.ID)
}
