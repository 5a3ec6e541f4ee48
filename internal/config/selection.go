package config

import "strings"

// SelectAllKeyword selects every member of a set in configuration text.
const SelectAllKeyword = "all"

// SelectionKind tags a Selection.
type SelectionKind int

const (
	// SelectAll processes the full set.
	SelectAll SelectionKind = iota
	// SelectOne processes a single member.
	SelectOne
)

// Selection narrows a run to either the full set or exactly one member.
// The zero value selects all.
type Selection struct {
	kind  SelectionKind
	value string
}

// All returns a selection of the full set.
func All() Selection {
	return Selection{kind: SelectAll}
}

// One returns a selection of the single member v.
func One(v string) Selection {
	return Selection{kind: SelectOne, value: v}
}

// ParseSelection reads configuration text. Empty text and "all" select the
// full set; anything else selects that one value.
func ParseSelection(s string) Selection {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, SelectAllKeyword) {
		return All()
	}
	return One(s)
}

// Kind reports which variant s is.
func (s Selection) Kind() SelectionKind {
	return s.kind
}

// IsAll reports whether s selects the full set.
func (s Selection) IsAll() bool {
	return s.kind == SelectAll
}

// Value returns the selected member and true for SelectOne.
func (s Selection) Value() (string, bool) {
	if s.kind != SelectOne {
		return "", false
	}
	return s.value, true
}

// String renders s the way ParseSelection reads it.
func (s Selection) String() string {
	if s.kind == SelectOne {
		return s.value
	}
	return SelectAllKeyword
}
