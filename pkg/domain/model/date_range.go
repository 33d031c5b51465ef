package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// DatePropertyKey identifies a date property on one entity type
type DatePropertyKey struct {
	EntityTypeID   types.EntityTypeID   `json:"entityTypeId" yaml:"entityTypeId" validate:"required"`
	PropertyTypeID types.PropertyTypeID `json:"propertyTypeId" yaml:"propertyTypeId" validate:"required"`
}

// DateRangeFilter restricts events to those whose selected date properties fall in
// [Start, End]. A range with neither bound is a draft and filters nothing.
type DateRangeFilter struct {
	Start      Date              `json:"start,omitempty" yaml:"start,omitempty"`
	End        Date              `json:"end,omitempty" yaml:"end,omitempty"`
	Properties []DatePropertyKey `json:"properties,omitempty" yaml:"properties,omitempty" validate:"dive"`
}

// IsDraft reports whether neither bound is set
func (r *DateRangeFilter) IsDraft() bool {
	return !r.Start.IsSet() && !r.End.IsSet()
}

// Has reports whether the property belongs to this range
func (r *DateRangeFilter) Has(key DatePropertyKey) bool {
	for _, p := range r.Properties {
		if p == key {
			return true
		}
	}
	return false
}

// Label is the tab text shown for the range
func (r *DateRangeFilter) Label() string {
	if r.Start.IsSet() && r.End.IsSet() {
		return r.Start.String() + " - " + r.End.String()
	}
	return "New date range"
}

func (r *DateRangeFilter) add(key DatePropertyKey) {
	if !r.Has(key) {
		r.Properties = append(r.Properties, key)
	}
}

func (r *DateRangeFilter) remove(key DatePropertyKey) {
	for i, p := range r.Properties {
		if p == key {
			r.Properties = append(r.Properties[:i:i], r.Properties[i+1:]...)
			return
		}
	}
}

// DateRangeSet is the editable list of date ranges with the one currently viewed
type DateRangeSet struct {
	Ranges  []DateRangeFilter `json:"ranges"`
	Viewing int               `json:"viewing"`
}

// NewDateRangeSet starts with a single draft range
func NewDateRangeSet() *DateRangeSet {
	return &DateRangeSet{Ranges: []DateRangeFilter{{}}}
}

// Current returns the range being edited
func (s *DateRangeSet) Current() *DateRangeFilter {
	return &s.Ranges[s.Viewing]
}

// View switches the range being edited
func (s *DateRangeSet) View(index int) error {
	if index < 0 || index >= len(s.Ranges) {
		return goerr.New("date range index out of bounds",
			goerr.V("index", index),
			goerr.V("size", len(s.Ranges)),
			goerr.T(ErrTagValidation))
	}
	s.Viewing = index
	return nil
}

// Reserved is the union of the properties of every range except index
func (s *DateRangeSet) Reserved(index int) map[DatePropertyKey]bool {
	reserved := make(map[DatePropertyKey]bool)
	for i, r := range s.Ranges {
		if i == index {
			continue
		}
		for _, p := range r.Properties {
			reserved[p] = true
		}
	}
	return reserved
}

// CanAddRange reports whether no draft range exists
func (s *DateRangeSet) CanAddRange() bool {
	for i := range s.Ranges {
		if s.Ranges[i].IsDraft() {
			return false
		}
	}
	return true
}

// AddRange appends a draft range and views it
func (s *DateRangeSet) AddRange() error {
	if !s.CanAddRange() {
		return ErrDraftRangeExists
	}
	s.Ranges = append(s.Ranges, DateRangeFilter{})
	s.Viewing = len(s.Ranges) - 1
	return nil
}

// SetStart sets the lower bound of the viewed range. Input that does not parse to a
// calendar date clears the bound.
func (s *DateRangeSet) SetStart(input string) {
	d, _ := ParseDate(input)
	s.Current().Start = d
}

// SetEnd sets the upper bound of the viewed range. Input that does not parse to a
// calendar date clears the bound.
func (s *DateRangeSet) SetEnd(input string) {
	d, _ := ParseDate(input)
	s.Current().End = d
}

// Toggle checks or unchecks a property in the viewed range. Checking a property held
// by another range, or checking into a range without bounds, is rejected.
func (s *DateRangeSet) Toggle(key DatePropertyKey, checked bool) error {
	current := s.Current()
	if !checked {
		current.remove(key)
		return nil
	}
	if current.IsDraft() {
		return goerr.New("date range has no bounds", goerr.T(ErrTagValidation))
	}
	if s.Reserved(s.Viewing)[key] {
		return goerr.Wrap(ErrPropertyReserved, "cannot toggle property",
			goerr.V("entityTypeId", key.EntityTypeID),
			goerr.V("propertyTypeId", key.PropertyTypeID))
	}
	current.add(key)
	return nil
}

// Date range edit actions
const (
	DateRangeAdd    = "add"
	DateRangeView   = "view"
	DateRangeStart  = "start"
	DateRangeEnd    = "end"
	DateRangeToggle = "toggle"
)

// DateRangeEdit is one interaction with the date range form
type DateRangeEdit struct {
	Action  string           `json:"action" validate:"required,oneof=add view start end toggle"`
	Index   int              `json:"index,omitempty"`
	Value   string           `json:"value,omitempty"`
	Key     *DatePropertyKey `json:"key,omitempty"`
	Checked bool             `json:"checked,omitempty"`
}

// Apply performs one edit on the set
func (s *DateRangeSet) Apply(edit DateRangeEdit) error {
	switch edit.Action {
	case DateRangeAdd:
		return s.AddRange()
	case DateRangeView:
		return s.View(edit.Index)
	case DateRangeStart:
		s.SetStart(edit.Value)
	case DateRangeEnd:
		s.SetEnd(edit.Value)
	case DateRangeToggle:
		if edit.Key == nil {
			return goerr.New("toggle needs a date property", goerr.T(ErrTagValidation))
		}
		return s.Toggle(*edit.Key, edit.Checked)
	default:
		return goerr.New("unknown date range edit",
			goerr.V("action", edit.Action),
			goerr.T(ErrTagValidation))
	}
	return nil
}

// DatePropertyOption is one checkbox of the viewed range
type DatePropertyOption struct {
	Key      DatePropertyKey `json:"key"`
	Label    string          `json:"label"`
	Checked  bool            `json:"checked"`
	Disabled bool            `json:"disabled"`
}

// Options lists the date properties of the selected pairs' entity types for the viewed
// range. Properties reserved by other ranges stay listed but disabled. A draft range
// has no options.
func (s *DateRangeSet) Options(specs []EventFilterSpec, dm *DataModel) []DatePropertyOption {
	current := s.Current()
	if current.IsDraft() {
		return nil
	}
	reserved := s.Reserved(s.Viewing)

	var (
		seen    = make(map[types.EntityTypeID]bool)
		ordered []types.EntityTypeID
	)
	for _, spec := range specs {
		for _, id := range []types.EntityTypeID{spec.Pair.AssociationTypeID, spec.Pair.NeighborTypeID} {
			if !seen[id] {
				seen[id] = true
				ordered = append(ordered, id)
			}
		}
	}

	var options []DatePropertyOption
	for _, etID := range ordered {
		for _, pid := range dm.DateProperties(etID) {
			key := DatePropertyKey{EntityTypeID: etID, PropertyTypeID: pid}
			options = append(options, DatePropertyOption{
				Key:      key,
				Label:    datePropertyLabel(dm, key),
				Checked:  current.Has(key),
				Disabled: reserved[key],
			})
		}
	}
	return options
}

func datePropertyLabel(dm *DataModel, key DatePropertyKey) string {
	var ptTitle, etTitle string
	if pt, ok := dm.PropertyTypes[key.PropertyTypeID]; ok {
		ptTitle = pt.Title
	}
	if et, ok := dm.EntityTypes[key.EntityTypeID]; ok {
		etTitle = et.Title
	}
	return ptTitle + " of " + etTitle
}

// ValidateDateRanges checks a submitted list of ranges: at most one draft, and no
// property shared between two ranges.
func ValidateDateRanges(ranges []DateRangeFilter) error {
	drafts := 0
	owner := make(map[DatePropertyKey]int)
	for i := range ranges {
		if ranges[i].IsDraft() {
			drafts++
			if drafts > 1 {
				return goerr.Wrap(ErrDraftRangeExists, "invalid date ranges", goerr.V("index", i))
			}
		}
		for _, p := range ranges[i].Properties {
			if j, ok := owner[p]; ok && j != i {
				return goerr.Wrap(ErrPropertyReserved, "invalid date ranges",
					goerr.V("entityTypeId", p.EntityTypeID),
					goerr.V("propertyTypeId", p.PropertyTypeID),
					goerr.V("first", j),
					goerr.V("second", i))
			}
			owner[p] = i
		}
	}
	return nil
}
