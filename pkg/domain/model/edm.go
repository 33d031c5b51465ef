package model

import (
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Datatypes the timeline and date range pickers treat as dates
var DateDatatypes = map[string]bool{
	"Date":           true,
	"DateTimeOffset": true,
}

// FQN is a namespaced type identifier
type FQN struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Name      string `json:"name" yaml:"name"`
}

// String returns "namespace.name"
func (f FQN) String() string {
	if f.Namespace == "" {
		return f.Name
	}
	return f.Namespace + "." + f.Name
}

// PropertyType describes one property of the data model
type PropertyType struct {
	ID       types.PropertyTypeID `json:"id" yaml:"id"`
	Type     FQN                  `json:"type" yaml:"type"`
	Title    string               `json:"title" yaml:"title"`
	Datatype string               `json:"datatype" yaml:"datatype"`
}

// IsDate reports whether the property holds dates
func (p *PropertyType) IsDate() bool {
	return DateDatatypes[p.Datatype]
}

// EntityType describes an entity or association type
type EntityType struct {
	ID         types.EntityTypeID     `json:"id" yaml:"id"`
	Type       FQN                    `json:"type" yaml:"type"`
	Title      string                 `json:"title" yaml:"title"`
	Category   string                 `json:"category,omitempty" yaml:"category,omitempty"`
	Properties []types.PropertyTypeID `json:"properties" yaml:"properties"`
}

// EntitySet is a named collection of entities of one type
type EntitySet struct {
	ID           types.EntitySetID  `json:"id" yaml:"id"`
	Name         string             `json:"name" yaml:"name"`
	Title        string             `json:"title" yaml:"title"`
	Description  string             `json:"description,omitempty" yaml:"description,omitempty"`
	EntityTypeID types.EntityTypeID `json:"entityTypeId" yaml:"entityTypeId"`
	Flags        []string           `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// IsAssociation reports whether the entity set holds association records
func (s *EntitySet) IsAssociation() bool {
	return s.hasFlag("ASSOCIATION")
}

// IsAudit reports whether the entity set is an audit log
func (s *EntitySet) IsAudit() bool {
	return s.hasFlag("AUDIT")
}

func (s *EntitySet) hasFlag(flag string) bool {
	for _, f := range s.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// DataModel is a snapshot of the entity data model indexed by id
type DataModel struct {
	EntityTypes   map[types.EntityTypeID]*EntityType     `json:"entityTypes"`
	PropertyTypes map[types.PropertyTypeID]*PropertyType `json:"propertyTypes"`
	EntitySets    map[types.EntitySetID]*EntitySet       `json:"entitySets"`
}

// NewDataModel indexes the given lists by id
func NewDataModel(entityTypes []*EntityType, propertyTypes []*PropertyType, entitySets []*EntitySet) *DataModel {
	dm := &DataModel{
		EntityTypes:   make(map[types.EntityTypeID]*EntityType, len(entityTypes)),
		PropertyTypes: make(map[types.PropertyTypeID]*PropertyType, len(propertyTypes)),
		EntitySets:    make(map[types.EntitySetID]*EntitySet, len(entitySets)),
	}
	for _, et := range entityTypes {
		dm.EntityTypes[et.ID] = et
	}
	for _, pt := range propertyTypes {
		dm.PropertyTypes[pt.ID] = pt
	}
	for _, es := range entitySets {
		dm.EntitySets[es.ID] = es
	}
	return dm
}

// PropertyFQN returns the FQN string of a property, or "" when unknown
func (dm *DataModel) PropertyFQN(id types.PropertyTypeID) string {
	if pt, ok := dm.PropertyTypes[id]; ok {
		return pt.Type.String()
	}
	return ""
}

// DateProperties lists the date-typed properties of an entity type in declaration order
func (dm *DataModel) DateProperties(entityTypeID types.EntityTypeID) []types.PropertyTypeID {
	et, ok := dm.EntityTypes[entityTypeID]
	if !ok {
		return nil
	}
	var result []types.PropertyTypeID
	for _, pid := range et.Properties {
		if pt, ok := dm.PropertyTypes[pid]; ok && pt.IsDate() {
			result = append(result, pid)
		}
	}
	return result
}
