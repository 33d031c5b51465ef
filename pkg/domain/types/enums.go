package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// CountType selects how a top utilizer score is computed
type CountType string

const (
	// CountTypeEvents weights the number of associated events
	CountTypeEvents CountType = "EVENTS"
	// CountTypeDuration weights summed duration properties
	CountTypeDuration CountType = "DURATION"
)

// String returns the string representation of the count type
func (c CountType) String() string {
	return string(c)
}

// IsValid checks if the count type is valid
func (c CountType) IsValid() bool {
	switch c {
	case CountTypeEvents, CountTypeDuration:
		return true
	default:
		return false
	}
}

// ParseCountType parses a count type, accepting any letter case.
// An empty string means events.
func ParseCountType(s string) (CountType, error) {
	if s == "" {
		return CountTypeEvents, nil
	}
	c := CountType(strings.ToUpper(s))
	if !c.IsValid() {
		return "", goerr.New("invalid count type", goerr.V("countType", s))
	}
	return c, nil
}

// ResourceType selects which resource is summarized per utilizer
type ResourceType string

const (
	ResourceTypeEvents   ResourceType = "EVENTS"
	ResourceTypeDuration ResourceType = "DURATION"
	ResourceTypeCost     ResourceType = "COST"
)

// String returns the string representation of the resource type
func (r ResourceType) String() string {
	return string(r)
}

// IsValid checks if the resource type is valid
func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceTypeEvents, ResourceTypeDuration, ResourceTypeCost:
		return true
	default:
		return false
	}
}

// RequestState is the phase of one externally initiated operation
type RequestState string

const (
	RequestStateIdle      RequestState = "idle"
	RequestStatePending   RequestState = "pending"
	RequestStateSucceeded RequestState = "succeeded"
	RequestStateFailed    RequestState = "failed"
)

// String returns the string representation of the request state
func (s RequestState) String() string {
	return string(s)
}

// IsTerminal reports whether the state is a completed outcome
func (s RequestState) IsTerminal() bool {
	return s == RequestStateSucceeded || s == RequestStateFailed
}
