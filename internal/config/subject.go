package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidSubjectID is wrapped by ParseSubjectID failures.
var ErrInvalidSubjectID = errors.New("invalid subject id")

// subjectPattern matches "<2-digit code>_<initials>_<DDMM>".
var subjectPattern = regexp.MustCompile(`^(\d{2})_([A-Z]+)_(\d{2})(\d{2})$`)

// SubjectID identifies a study participant, e.g. "50_FHH_2403".
type SubjectID string

// Subject is a parsed SubjectID.
type Subject struct {
	ID       SubjectID
	Code     string
	Initials string
	Day      int
	Month    int
}

// ParseSubjectID validates s and splits it into its parts.
// Surrounding whitespace is ignored.
func ParseSubjectID(s string) (Subject, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Subject{}, fmt.Errorf("%w: empty", ErrInvalidSubjectID)
	}

	m := subjectPattern.FindStringSubmatch(s)
	if m == nil {
		return Subject{}, fmt.Errorf("%w: %q does not match <code>_<initials>_<DDMM>", ErrInvalidSubjectID, s)
	}

	day, _ := strconv.Atoi(m[3])
	month, _ := strconv.Atoi(m[4])
	if day < 1 || day > 31 {
		return Subject{}, fmt.Errorf("%w: %q has day %02d out of range", ErrInvalidSubjectID, s, day)
	}
	if month < 1 || month > 12 {
		return Subject{}, fmt.Errorf("%w: %q has month %02d out of range", ErrInvalidSubjectID, s, month)
	}

	return Subject{
		ID:       SubjectID(s),
		Code:     m[1],
		Initials: m[2],
		Day:      day,
		Month:    month,
	}, nil
}

// Valid reports whether id is a well-formed subject identifier.
func (id SubjectID) Valid() bool {
	_, err := ParseSubjectID(string(id))
	return err == nil
}

func (id SubjectID) String() string {
	return string(id)
}
