package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

func TestCountTypeValidation(t *testing.T) {
	tests := []struct {
		name     string
		value    types.CountType
		expected bool
	}{
		{"Valid EVENTS", types.CountTypeEvents, true},
		{"Valid DURATION", types.CountTypeDuration, true},
		{"Invalid empty", types.CountType(""), false},
		{"Invalid lowercase", types.CountType("events"), false},
		{"Invalid unknown", types.CountType("COST"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.value.IsValid(), tt.expected)
		})
	}
}

func TestParseCountType(t *testing.T) {
	t.Run("empty defaults to events", func(t *testing.T) {
		c, err := types.ParseCountType("")
		gt.NoError(t, err)
		gt.Equal(t, c, types.CountTypeEvents)
	})

	t.Run("lowercase is accepted", func(t *testing.T) {
		c, err := types.ParseCountType("duration")
		gt.NoError(t, err)
		gt.Equal(t, c, types.CountTypeDuration)
	})

	t.Run("unknown is rejected", func(t *testing.T) {
		_, err := types.ParseCountType("minutes")
		gt.Error(t, err)
	})
}

func TestResourceTypeValidation(t *testing.T) {
	gt.True(t, types.ResourceTypeEvents.IsValid())
	gt.True(t, types.ResourceTypeDuration.IsValid())
	gt.True(t, types.ResourceTypeCost.IsValid())
	gt.False(t, types.ResourceType("HOURS").IsValid())
}

func TestRequestStateIsTerminal(t *testing.T) {
	gt.False(t, types.RequestStateIdle.IsTerminal())
	gt.False(t, types.RequestStatePending.IsTerminal())
	gt.True(t, types.RequestStateSucceeded.IsTerminal())
	gt.True(t, types.RequestStateFailed.IsTerminal())
}

func TestNewCorrelationID(t *testing.T) {
	a := types.NewCorrelationID()
	b := types.NewCorrelationID()
	gt.NotEqual(t, a, b)
	gt.True(t, a.String() != "")
}
