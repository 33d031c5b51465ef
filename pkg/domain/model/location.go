package model

import (
	"strconv"
	"strings"

	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// LocationFQN holds "lat,lon" coordinates on entities
const LocationFQN = "ol.location"

// Location is a point on the map
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParseLocation parses "lat,lon". Either part failing to parse rejects the value.
func ParseLocation(value string) (Location, bool) {
	lat, lon, ok := strings.Cut(value, ",")
	if !ok {
		return Location{}, false
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Location{}, false
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Location{}, false
	}
	return Location{Latitude: latitude, Longitude: longitude}, true
}

// LocationsByEntity collects the parseable locations of each entity. Entities without
// any are left out.
func LocationsByEntity(entities []Entity) map[types.EntityKeyID][]Location {
	result := make(map[types.EntityKeyID][]Location)
	for _, e := range entities {
		id := e.EntityKeyID()
		if id == "" {
			continue
		}
		var locations []Location
		for _, v := range e.Strings(LocationFQN) {
			if loc, ok := ParseLocation(v); ok {
				locations = append(locations, loc)
			}
		}
		if len(locations) > 0 {
			result[id] = append(result[id], locations...)
		}
	}
	return result
}
