package model

import (
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// MaxNumResults caps the size of one ranking
const MaxNumResults = 10000

// TopUtilizerRequest is everything needed to run one top utilizer ranking
type TopUtilizerRequest struct {
	EntitySetID     types.EntitySetID `json:"entitySetId" yaml:"entitySetId" validate:"required"`
	NumResults      int               `json:"numResults" yaml:"numResults" validate:"min=1,max=10000"`
	EventFilters    []EventFilterSpec `json:"eventFilters" yaml:"eventFilters" validate:"required,min=1,dive"`
	DateRanges      []DateRangeFilter `json:"dateRanges,omitempty" yaml:"dateRanges,omitempty" validate:"dive"`
	CountType       types.CountType   `json:"countType,omitempty" yaml:"countType,omitempty" validate:"omitempty,oneof=EVENTS DURATION"`
	DurationWeights []DurationWeight  `json:"durationWeights,omitempty" yaml:"durationWeights,omitempty" validate:"dive"`
}

// Mode returns the count mode variant of the request
func (r *TopUtilizerRequest) Mode() CountMode {
	return NewCountMode(r.CountType, r.DurationWeights)
}
