package model

import (
	"encoding/json"
	"strconv"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Row field names used by the ranking service and the data API
const (
	FieldSelfEntityKeyID = "self_entity_key_id"
	FieldOpenLatticeID   = "openlattice.@id"
	FieldID              = "id"
	FieldScore           = "score"
)

// RankingRow is one flattened row of a ranking response
type RankingRow map[string]any

// EntityKeyID returns the stable identifier of the ranked entity, or "" when the row
// carries none
func (r RankingRow) EntityKeyID() types.EntityKeyID {
	for _, field := range []string{FieldSelfEntityKeyID, FieldOpenLatticeID, FieldID} {
		if s := firstString(r[field]); s != "" {
			return types.EntityKeyID(s)
		}
	}
	return ""
}

// Score returns the overall score, 0 when absent
func (r RankingRow) Score() float64 {
	v, _ := r.Number(FieldScore)
	return v
}

// Number reads a numeric field. Single-element lists, as returned by the data API, are
// unwrapped. Absent or non-numeric fields report false.
func (r RankingRow) Number(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	return toNumber(v)
}

// Merge copies the entity's properties into the row. Fields already on the row win.
func (r RankingRow) Merge(entity Entity) {
	for k, v := range entity {
		if _, ok := r[k]; !ok {
			r[k] = v
		}
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case []any:
		if len(n) == 0 {
			return 0, false
		}
		return toNumber(n[0])
	}
	return 0, false
}

func firstString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []string:
		if len(s) > 0 {
			return s[0]
		}
	case []any:
		if len(s) > 0 {
			if str, ok := s[0].(string); ok {
				return str
			}
		}
	}
	return ""
}
