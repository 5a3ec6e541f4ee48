package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCondition is wrapped by ParseCondition failures.
var ErrUnknownCondition = errors.New("unknown condition")

// Condition is the stimulation setting a recording was made under.
type Condition string

// Known conditions.
const (
	ConditionOff Condition = "off"
	Condition60  Condition = "60"
	Condition130 Condition = "130"
)

// vocabulary lists the known conditions in canonical order.
var vocabulary = []Condition{ConditionOff, Condition60, Condition130}

// KnownConditions returns every valid condition in canonical order.
func KnownConditions() []Condition {
	out := make([]Condition, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// ParseCondition maps s onto the condition vocabulary. Matching is
// case-insensitive for "off".
func ParseCondition(s string) (Condition, error) {
	s = strings.TrimSpace(s)
	for _, c := range vocabulary {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownCondition, s, joinConditions(vocabulary))
}

// IsValid reports whether c is part of the vocabulary.
func (c Condition) IsValid() bool {
	return conditionRank(c) >= 0
}

// StimulationHz returns the stimulation frequency, or false when the
// stimulator is off.
func (c Condition) StimulationHz() (int, bool) {
	if c == ConditionOff {
		return 0, false
	}
	hz, err := strconv.Atoi(string(c))
	if err != nil {
		return 0, false
	}
	return hz, true
}

func (c Condition) String() string {
	return string(c)
}

// conditionRank returns the canonical position of c, or -1.
func conditionRank(c Condition) int {
	for i, v := range vocabulary {
		if v == c {
			return i
		}
	}
	return -1
}

func joinConditions(cs []Condition) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
