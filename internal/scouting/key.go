package scouting

import (
	"fmt"
	"strconv"
	"strings"
)

// RecordKey is the composite identity of one scouting entry: one team in one
// match. Keys are carried as typed fields and compared exactly; the string
// form exists only for the external "M<match>T<team>" record format, so a
// team number can never accidentally match inside another team's key.
type RecordKey struct {
	Match int
	Team  int
}

// String renders the key in the external record format, e.g. "M11T5928".
func (k RecordKey) String() string {
	return fmt.Sprintf("M%dT%d", k.Match, k.Team)
}

// ParseRecordKey parses a composite key of the form "M<match>T<team>".
// Both components must be positive integers.
func ParseRecordKey(s string) (RecordKey, error) {
	if !strings.HasPrefix(s, "M") {
		return RecordKey{}, fmt.Errorf("record key %q: missing match marker", s)
	}
	rest := s[1:]
	sep := strings.IndexByte(rest, 'T')
	if sep < 0 {
		return RecordKey{}, fmt.Errorf("record key %q: missing team marker", s)
	}

	match, err := strconv.Atoi(rest[:sep])
	if err != nil {
		return RecordKey{}, fmt.Errorf("record key %q: bad match number: %w", s, err)
	}
	team, err := strconv.Atoi(rest[sep+1:])
	if err != nil {
		return RecordKey{}, fmt.Errorf("record key %q: bad team number: %w", s, err)
	}
	if match <= 0 || team <= 0 {
		return RecordKey{}, fmt.Errorf("record key %q: match and team must be positive", s)
	}
	return RecordKey{Match: match, Team: team}, nil
}
