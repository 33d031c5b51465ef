package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// NeighborDateEntry is one dated event found on a neighbor record
type NeighborDateEntry struct {
	EntitySetID     types.EntitySetID `json:"entitySetId"`
	EntityKeyID     types.EntityKeyID `json:"entityKeyId"`
	PropertyTypeFQN string            `json:"propertyTypeFqn"`
	Date            time.Time         `json:"date"`
	Neighbor        *NeighborRecord   `json:"neighbor"`
}

// BuildTimeline collects every parseable date value on the association and neighbor
// side of the records, newest first. Entries on the same instant keep record order.
func BuildTimeline(neighbors []*NeighborRecord, entitySets map[types.EntitySetID]*EntitySet, entityTypes map[types.EntityTypeID]*EntityType, propertyTypes map[types.PropertyTypeID]*PropertyType) []NeighborDateEntry {
	dateFQNs := datePropertiesByEntitySet(entitySets, entityTypes, propertyTypes)

	var entries []NeighborDateEntry
	for _, n := range neighbors {
		entries = appendDateEntries(entries, n.AssociationEntitySet.ID, n.AssociationDetails, n, dateFQNs)
		if n.NeighborEntitySet != nil && n.NeighborEntitySet.ID != "" {
			entries = appendDateEntries(entries, n.NeighborEntitySet.ID, n.NeighborDetails, n, dateFQNs)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

func datePropertiesByEntitySet(entitySets map[types.EntitySetID]*EntitySet, entityTypes map[types.EntityTypeID]*EntityType, propertyTypes map[types.PropertyTypeID]*PropertyType) map[types.EntitySetID][]string {
	result := make(map[types.EntitySetID][]string, len(entitySets))
	for id, es := range entitySets {
		et, ok := entityTypes[es.EntityTypeID]
		if !ok {
			continue
		}
		var fqns []string
		for _, pid := range et.Properties {
			if pt, ok := propertyTypes[pid]; ok && pt.IsDate() {
				fqns = append(fqns, pt.Type.String())
			}
		}
		result[id] = fqns
	}
	return result
}

func appendDateEntries(entries []NeighborDateEntry, entitySetID types.EntitySetID, entity Entity, neighbor *NeighborRecord, dateFQNs map[types.EntitySetID][]string) []NeighborDateEntry {
	if entity == nil {
		return entries
	}
	entityKeyID := entity.EntityKeyID()
	for _, fqn := range dateFQNs[entitySetID] {
		for _, value := range entity.Strings(fqn) {
			t, ok := ParseTime(value)
			if !ok {
				continue
			}
			entries = append(entries, NeighborDateEntry{
				EntitySetID:     entitySetID,
				EntityKeyID:     entityKeyID,
				PropertyTypeFQN: fqn,
				Date:            t,
				Neighbor:        neighbor,
			})
		}
	}
	return entries
}

// TimelineRow is one rendered timeline line
type TimelineRow struct {
	// Year is empty when the previous row has the same year
	Year        string            `json:"year"`
	Day         string            `json:"day"`
	Title       string            `json:"title"`
	EntitySetID types.EntitySetID `json:"entitySetId"`
	EntityKeyID types.EntityKeyID `json:"entityKeyId"`
}

// RenderTimeline formats ordered entries for display
func RenderTimeline(entries []NeighborDateEntry) []TimelineRow {
	rows := make([]TimelineRow, 0, len(entries))
	var lastYear string
	for _, e := range entries {
		year := e.Date.Format("2006")
		row := TimelineRow{
			Day:         e.Date.Format("January 2"),
			EntitySetID: e.EntitySetID,
			EntityKeyID: e.EntityKeyID,
		}
		if year != lastYear {
			row.Year = year
			lastYear = year
		}
		if e.Neighbor != nil && e.Neighbor.NeighborEntitySet != nil {
			row.Title = e.Neighbor.NeighborEntitySet.Title
		}
		rows = append(rows, row)
	}
	return rows
}
