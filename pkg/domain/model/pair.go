package model

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

const pairSeparator = "|"

// EntityTypePair identifies one relationship slot, e.g. "arrest -> charge".
// Equality is structural so it can be used as a map key.
type EntityTypePair struct {
	AssociationTypeID types.EntityTypeID `json:"associationTypeId" yaml:"associationTypeId" validate:"required"`
	NeighborTypeID    types.EntityTypeID `json:"neighborTypeId" yaml:"neighborTypeId" validate:"required"`
}

// NewEntityTypePair creates a pair
func NewEntityTypePair(assoc, neighbor types.EntityTypeID) EntityTypePair {
	return EntityTypePair{AssociationTypeID: assoc, NeighborTypeID: neighbor}
}

// String returns "associationTypeId|neighborTypeId"
func (p EntityTypePair) String() string {
	return p.AssociationTypeID.String() + pairSeparator + p.NeighborTypeID.String()
}

// MarshalText is used when the pair is a JSON object key
func (p EntityTypePair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses "associationTypeId|neighborTypeId"
func (p *EntityTypePair) UnmarshalText(text []byte) error {
	assoc, neighbor, ok := strings.Cut(string(text), pairSeparator)
	if !ok || assoc == "" || neighbor == "" {
		return goerr.New("invalid entity type pair", goerr.V("pair", string(text)))
	}
	p.AssociationTypeID = types.EntityTypeID(assoc)
	p.NeighborTypeID = types.EntityTypeID(neighbor)
	return nil
}

type pairJSON struct {
	AssociationTypeID types.EntityTypeID `json:"associationTypeId"`
	NeighborTypeID    types.EntityTypeID `json:"neighborTypeId"`
}

// MarshalJSON keeps the object form for pair values
func (p EntityTypePair) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairJSON(p))
}

// UnmarshalJSON accepts both the object form and the "a|b" string form
func (p *EntityTypePair) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return p.UnmarshalText([]byte(s))
	}
	var v pairJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return goerr.Wrap(err, "failed to decode entity type pair")
	}
	*p = EntityTypePair(v)
	return nil
}
