package types

import (
	"github.com/google/uuid"
)

// EntitySetID identifies an entity set in the data model
type EntitySetID string

// String returns the string representation
func (id EntitySetID) String() string {
	return string(id)
}

// EntityTypeID identifies an entity type (also used for association types)
type EntityTypeID string

// String returns the string representation
func (id EntityTypeID) String() string {
	return string(id)
}

// PropertyTypeID identifies a property type
type PropertyTypeID string

// String returns the string representation
func (id PropertyTypeID) String() string {
	return string(id)
}

// EntityKeyID is the stable identifier of one data record
type EntityKeyID string

// String returns the string representation
func (id EntityKeyID) String() string {
	return string(id)
}

// CorrelationID distinguishes concurrent dispatches of the same operation
type CorrelationID string

// String returns the string representation
func (id CorrelationID) String() string {
	return string(id)
}

// NewCorrelationID creates a new time-ordered CorrelationID
func NewCorrelationID() CorrelationID {
	id, err := uuid.NewV7()
	if err != nil {
		return CorrelationID(uuid.New().String())
	}
	return CorrelationID(id.String())
}

// ReportID identifies a stored top utilizer report
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}

// SessionKey identifies the analyst session that owns a workspace
type SessionKey string

// String returns the string representation
func (k SessionKey) String() string {
	return string(k)
}

// AnonymousSession is used when the caller token carries no subject
const AnonymousSession SessionKey = "anonymous"
